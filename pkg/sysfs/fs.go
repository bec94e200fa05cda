package sysfs

import (
	"strings"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Well-known names within a sysfs mount.
const (
	classSubdirectory      = "class"
	busSubdirectory        = "bus"
	busDevicesSubdirectory = "devices"
	nameAttribute          = "name"
	deviceLinkName         = "device"
	driverLinkName         = "driver"
)

// FS provides access to the kernel's sysfs tree through an in-memory
// object model. Every Open*() call walks the filesystem once and
// returns an independent object graph; no caching or deduplication is
// performed across calls. The returned objects are never mutated after
// construction, so a graph may be shared read-only between goroutines.
// Closing a graph while it is still being dereferenced elsewhere is not
// safe.
type FS struct {
	directoryReader   DirectoryReader
	mountPathResolver MountPathResolver
	busNameResolver   BusNameResolver
}

// NewFS creates a sysfs object model on top of the provided
// collaborators.
func NewFS(directoryReader DirectoryReader, mountPathResolver MountPathResolver, busNameResolver BusNameResolver) *FS {
	return &FS{
		directoryReader:   directoryReader,
		mountPathResolver: mountPathResolver,
		busNameResolver:   busNameResolver,
	}
}

// ReadAttribute returns the current value of an attribute file.
func (fs *FS) ReadAttribute(attribute *AttributeEntry) ([]byte, error) {
	if attribute == nil {
		return nil, status.Error(codes.InvalidArgument, "No attribute provided")
	}
	data, err := fs.directoryReader.ReadFile(attribute.Path)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to read attribute %#v", attribute.Name)
	}
	return data, nil
}

// nameFromPath extracts the trailing path component. Trailing slashes
// are ignored, so "/sys/class/net/" yields "net".
func nameFromPath(p string) (string, error) {
	trimmed := strings.TrimRight(p, "/")
	name := trimmed
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		name = trimmed[i+1:]
	}
	if name == "" || name == "." || name == ".." {
		return "", status.Errorf(codes.InvalidArgument, "Path %#v does not contain a name component", p)
	}
	return name, nil
}
