package sysfs

import (
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/procfs"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MountPathResolver determines where the kernel's sysfs tree is mounted
// on this system. MountPath() fails with codes.NotFound when no sysfs
// mount exists.
type MountPathResolver interface {
	MountPath() (string, error)
}

type procfsMountPathResolver struct{}

// NewProcfsMountPathResolver creates a MountPathResolver that scans the
// calling process's mount table for a filesystem of type "sysfs".
func NewProcfsMountPathResolver() MountPathResolver {
	return procfsMountPathResolver{}
}

func (procfsMountPathResolver) MountPath() (string, error) {
	mounts, err := procfs.GetMounts()
	if err != nil {
		return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to read mount table")
	}
	for _, mount := range mounts {
		if mount.FSType == "sysfs" {
			return mount.MountPoint, nil
		}
	}
	return "", status.Error(codes.NotFound, "sysfs is not mounted on this system")
}

type staticMountPathResolver struct {
	mountPath string
}

// NewStaticMountPathResolver creates a MountPathResolver that always
// yields a fixed path. Useful when operating on a sysfs tree that was
// copied to a different location, or in tests.
func NewStaticMountPathResolver(mountPath string) MountPathResolver {
	return staticMountPathResolver{mountPath: mountPath}
}

func (r staticMountPathResolver) MountPath() (string, error) {
	return r.mountPath, nil
}
