package sysfs

import (
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Driver is the software module associated with a device. The device
// pointer is purely navigational; the device is owned by the
// ClassDevice that resolved it.
type Driver struct {
	Name string
	Path string

	snapshot *DirectorySnapshot
	device   *Device
}

// Device returns the device this driver is bound to, or nil when no
// class device resolution established one.
func (d *Driver) Device() *Device {
	if d == nil {
		return nil
	}
	return d.device
}

// Close releases the driver and its snapshot. The device back-reference
// is never followed. Close is a no-op on a nil driver and on repeated
// calls.
func (d *Driver) Close() {
	if d == nil {
		return
	}
	d.snapshot.Close()
	d.device = nil
}

// OpenDriver opens the driver directory at driverPath and returns a
// minimal driver object.
func (fs *FS) OpenDriver(driverPath string) (*Driver, error) {
	if driverPath == "" {
		return nil, status.Error(codes.InvalidArgument, "No driver path provided")
	}
	snapshot, err := fs.directoryReader.ReadDirectory(driverPath)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to read driver directory %#v", driverPath)
	}
	return &Driver{
		Name:     snapshot.Name,
		Path:     snapshot.Path,
		snapshot: snapshot,
	}, nil
}
