package sysfs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysfsutils/go-sysfs/pkg/sysfs"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLocalDirectoryReaderReadDirectory(t *testing.T) {
	reader := sysfs.NewLocalDirectoryReader()

	t.Run("NoPath", func(t *testing.T) {
		_, err := reader.ReadDirectory("")
		require.Equal(t, err, status.Error(codes.InvalidArgument, "No directory path provided"))
	})

	t.Run("NonexistentDirectory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "gone")
		_, err := reader.ReadDirectory(missing)
		require.Equal(t, status.Code(err), codes.NotFound)
	})

	t.Run("EntryClassification", func(t *testing.T) {
		root := t.TempDir()
		base := filepath.Join(root, "eth0")
		require.NoError(t, os.Mkdir(base, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(base, "name"), []byte("eth0\n"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(base, "power"), 0o755))
		targetDirectory := filepath.Join(root, "dev")
		require.NoError(t, os.Mkdir(targetDirectory, 0o755))
		require.NoError(t, os.Symlink("../dev", filepath.Join(base, "device")))

		snapshot, err := reader.ReadDirectory(base)
		require.NoError(t, err)
		require.Equal(t, base, snapshot.Path)
		require.Equal(t, "eth0", snapshot.Name)
		require.Equal(t, []sysfs.AttributeEntry{
			{Name: "name", Path: filepath.Join(base, "name")},
		}, snapshot.Attributes)
		require.Equal(t, []string{filepath.Join(base, "power")}, snapshot.Subdirectories)
		// Relative symlink targets are resolved against the
		// directory containing the link.
		require.Equal(t, []sysfs.SymlinkEntry{
			{Name: "device", TargetPath: targetDirectory},
		}, snapshot.Symlinks)
		snapshot.Close()
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.Mkdir(base, 0o755))

		snapshot, err := reader.ReadDirectory(base)
		require.NoError(t, err)
		require.Empty(t, snapshot.Attributes)
		require.Empty(t, snapshot.Subdirectories)
		require.Empty(t, snapshot.Symlinks)
	})
}

func TestLocalDirectoryReaderReadFile(t *testing.T) {
	reader := sysfs.NewLocalDirectoryReader()

	t.Run("Success", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "mtu")
		require.NoError(t, os.WriteFile(filePath, []byte("1500\n"), 0o644))

		data, err := reader.ReadFile(filePath)
		require.NoError(t, err)
		require.Equal(t, []byte("1500\n"), data)
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		_, err := reader.ReadFile(filepath.Join(t.TempDir(), "gone"))
		require.Equal(t, status.Code(err), codes.NotFound)
	})
}
