package sysfs

import (
	"os"
	"path"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type localDirectoryReader struct{}

// NewLocalDirectoryReader creates a DirectoryReader that reads
// directories straight from the operating system. Relative symlink
// targets are resolved against the directory containing the link, so
// snapshots always carry absolute target paths.
func NewLocalDirectoryReader() DirectoryReader {
	return localDirectoryReader{}
}

func (localDirectoryReader) ReadDirectory(directoryPath string) (*DirectorySnapshot, error) {
	if directoryPath == "" {
		return nil, status.Error(codes.InvalidArgument, "No directory path provided")
	}
	name, err := nameFromPath(directoryPath)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(directoryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.Errorf(codes.NotFound, "Directory %#v does not exist", directoryPath)
		}
		return nil, util.StatusWrapfWithCode(err, codes.Internal, "Failed to list directory %#v", directoryPath)
	}
	snapshot := &DirectorySnapshot{
		Path: directoryPath,
		Name: name,
	}
	for _, entry := range entries {
		entryPath := path.Join(directoryPath, entry.Name())
		switch {
		case entry.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(entryPath)
			if err != nil {
				// Entry disappeared while walking.
				continue
			}
			if !path.IsAbs(target) {
				target = path.Join(directoryPath, target)
			}
			snapshot.Symlinks = append(snapshot.Symlinks, SymlinkEntry{
				Name:       entry.Name(),
				TargetPath: target,
			})
		case entry.IsDir():
			snapshot.Subdirectories = append(snapshot.Subdirectories, entryPath)
		case entry.Type().IsRegular():
			snapshot.Attributes = append(snapshot.Attributes, AttributeEntry{
				Name: entry.Name(),
				Path: entryPath,
			})
		}
	}
	return snapshot, nil
}

func (localDirectoryReader) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.Errorf(codes.NotFound, "File %#v does not exist", filePath)
		}
		return nil, util.StatusWrapfWithCode(err, codes.Internal, "Failed to read file %#v", filePath)
	}
	return data, nil
}
