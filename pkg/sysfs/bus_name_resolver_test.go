package sysfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysfsutils/go-sysfs/internal/mock"
	"github.com/sysfsutils/go-sysfs/pkg/sysfs"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/mock/gomock"
)

func TestBusDirectoryScanningResolver(t *testing.T) {
	ctrl := gomock.NewController(t)

	directoryReader := mock.NewMockDirectoryReader(ctrl)
	mountPathResolver := mock.NewMockMountPathResolver(ctrl)
	resolver := sysfs.NewBusDirectoryScanningResolver(directoryReader, mountPathResolver)

	t.Run("EmptyBusID", func(t *testing.T) {
		require.Empty(t, resolver.BusNameForID(""))
	})

	t.Run("NoMountPath", func(t *testing.T) {
		mountPathResolver.EXPECT().MountPath().Return("", status.Error(codes.NotFound, "sysfs is not mounted on this system"))

		require.Empty(t, resolver.BusNameForID("0000:00:19.0"))
	})

	t.Run("Match", func(t *testing.T) {
		// The id is registered on the second bus family; the
		// scan must keep going past the first and close every
		// snapshot it opened along the way.
		released := 0
		mountPathResolver.EXPECT().MountPath().Return("/sys", nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus").Return(&sysfs.DirectorySnapshot{
			Path:           "/sys/bus",
			Name:           "bus",
			Subdirectories: []string{"/sys/bus/pci", "/sys/bus/usb"},
			Release:        func() { released++ },
		}, nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus/pci/devices").Return(&sysfs.DirectorySnapshot{
			Path: "/sys/bus/pci/devices",
			Name: "devices",
			Symlinks: []sysfs.SymlinkEntry{
				{Name: "0000:00:19.0", TargetPath: "/sys/devices/pci0000:00/0000:00:19.0"},
			},
			Release: func() { released++ },
		}, nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus/usb/devices").Return(&sysfs.DirectorySnapshot{
			Path: "/sys/bus/usb/devices",
			Name: "devices",
			Symlinks: []sysfs.SymlinkEntry{
				{Name: "1-1.4", TargetPath: "/sys/devices/pci0000:00/0000:00:14.0/usb1/1-1/1-1.4"},
			},
			Release: func() { released++ },
		}, nil)

		require.Equal(t, "usb", resolver.BusNameForID("1-1.4"))
		require.Equal(t, 3, released)
	})

	t.Run("UnknownID", func(t *testing.T) {
		mountPathResolver.EXPECT().MountPath().Return("/sys", nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus").Return(&sysfs.DirectorySnapshot{
			Path:           "/sys/bus",
			Name:           "bus",
			Subdirectories: []string{"/sys/bus/pci"},
		}, nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus/pci/devices").Return(&sysfs.DirectorySnapshot{
			Path: "/sys/bus/pci/devices",
			Name: "devices",
		}, nil)

		require.Empty(t, resolver.BusNameForID("serial8250"))
	})

	t.Run("UnreadableFamilySkipped", func(t *testing.T) {
		mountPathResolver.EXPECT().MountPath().Return("/sys", nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus").Return(&sysfs.DirectorySnapshot{
			Path:           "/sys/bus",
			Name:           "bus",
			Subdirectories: []string{"/sys/bus/pci", "/sys/bus/usb"},
		}, nil)
		directoryReader.EXPECT().ReadDirectory("/sys/bus/pci/devices").Return(nil, status.Error(codes.Internal, "I/O error"))
		directoryReader.EXPECT().ReadDirectory("/sys/bus/usb/devices").Return(&sysfs.DirectorySnapshot{
			Path: "/sys/bus/usb/devices",
			Name: "devices",
			Symlinks: []sysfs.SymlinkEntry{
				{Name: "1-1.4", TargetPath: "/sys/devices/pci0000:00/0000:00:14.0/usb1/1-1/1-1.4"},
			},
		}, nil)

		require.Equal(t, "usb", resolver.BusNameForID("1-1.4"))
	})
}

func TestStaticBusNameResolver(t *testing.T) {
	resolver := sysfs.NewStaticBusNameResolver(map[string]string{
		"0000:00:19.0": "pci",
	})
	require.Equal(t, "pci", resolver.BusNameForID("0000:00:19.0"))
	require.Empty(t, resolver.BusNameForID("1-1.4"))
}
