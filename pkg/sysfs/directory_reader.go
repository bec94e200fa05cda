package sysfs

// AttributeEntry describes a single attribute file inside a sysfs
// directory. Attribute values are not captured as part of a snapshot;
// they can be read on demand through DirectoryReader.ReadFile().
type AttributeEntry struct {
	Name string
	Path string
}

// SymlinkEntry describes a single symbolic link inside a sysfs
// directory. TargetPath is the absolute path the link resolves to.
type SymlinkEntry struct {
	Name       string
	TargetPath string
}

// DirectorySnapshot is a one-level, point-in-time read of a sysfs
// directory: its attribute files, subdirectories and symbolic links, in
// the order the underlying directory listed them. Snapshots are
// immutable after creation and owned exclusively by the object that
// opened them.
type DirectorySnapshot struct {
	Path           string
	Name           string
	Attributes     []AttributeEntry
	Subdirectories []string
	Symlinks       []SymlinkEntry

	// Release is invoked exactly once by Close(). Readers that hold
	// on to kernel resources may set it; fakes use it to verify
	// that every snapshot handed out is closed again.
	Release func()
}

// Close releases the snapshot. It is a no-op on a nil snapshot and on
// repeated calls.
func (s *DirectorySnapshot) Close() {
	if s == nil {
		return
	}
	if release := s.Release; release != nil {
		s.Release = nil
		release()
	}
}

// Attribute returns the attribute entry literally named name, or nil
// when the directory has no such attribute file.
func (s *DirectorySnapshot) Attribute(name string) *AttributeEntry {
	if s == nil {
		return nil
	}
	for i := range s.Attributes {
		if s.Attributes[i].Name == name {
			return &s.Attributes[i]
		}
	}
	return nil
}

// DirectoryReader is the raw filesystem access layer underneath the
// sysfs object model. ReadDirectory() reads the immediate contents of a
// single directory; it does not recurse. ReadFile() returns the full
// contents of an attribute file.
//
// Implementations are expected to report failures as gRPC status
// errors, using codes.NotFound for paths that do not exist.
type DirectoryReader interface {
	ReadDirectory(directoryPath string) (*DirectorySnapshot, error)
	ReadFile(filePath string) ([]byte, error)
}
