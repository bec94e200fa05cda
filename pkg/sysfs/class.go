package sysfs

import (
	"path"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClassDevice is one device instance as exposed under a class grouping
// (e.g. "eth0" under the "net" class). When the class device directory
// carries the well-known "device" and "driver" symlinks, the objects
// they resolve to are owned by the class device; the mutual pointers
// between those two objects are navigational only.
type ClassDevice struct {
	Name string
	Path string

	snapshot       *DirectorySnapshot
	subdirectories []*DirectorySnapshot
	device         *Device
	driver         *Driver
}

// Device returns the backing device reached through the "device"
// symlink, or nil when the link is absent or did not resolve.
func (cd *ClassDevice) Device() *Device {
	if cd == nil {
		return nil
	}
	return cd.device
}

// Driver returns the driver reached through the "driver" symlink, or
// nil when the link is absent or did not resolve.
func (cd *ClassDevice) Driver() *Driver {
	if cd == nil {
		return nil
	}
	return cd.driver
}

// Close releases the class device and everything it owns: its own
// snapshot, the eagerly read subdirectory snapshots, and the resolved
// device and driver. Close is a no-op on a nil class device and on
// repeated calls.
func (cd *ClassDevice) Close() {
	if cd == nil {
		return
	}
	cd.snapshot.Close()
	for _, subdirectory := range cd.subdirectories {
		subdirectory.Close()
	}
	cd.subdirectories = nil
	cd.device.Close()
	cd.device = nil
	cd.driver.Close()
	cd.driver = nil
}

// linkDeviceAndDriver establishes the mutual navigational pointers
// between the resolved device and driver. Called after either side is
// resolved, so the pair is linked as soon as the second side becomes
// available, regardless of which symlink was encountered first.
func (cd *ClassDevice) linkDeviceAndDriver() {
	if cd.device != nil && cd.driver != nil {
		cd.device.driver = cd.driver
		cd.driver.device = cd.device
	}
}

// OpenClassDevice opens the class device directory at classDevicePath.
//
// The directory's symlinks are scanned once for the well-known "device"
// and "driver" links. A link that is absent or fails to resolve is
// skipped; class device directories frequently lack one or the other,
// so this is the expected common case, not an error. Duplicate links of
// the same name are malformed input; the last one wins.
func (fs *FS) OpenClassDevice(classDevicePath string) (*ClassDevice, error) {
	if classDevicePath == "" {
		return nil, status.Error(codes.InvalidArgument, "No class device path provided")
	}
	name, err := nameFromPath(classDevicePath)
	if err != nil {
		return nil, util.StatusWrapf(err, "Invalid class device path %#v", classDevicePath)
	}
	snapshot, err := fs.directoryReader.ReadDirectory(classDevicePath)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to read class device directory %#v", classDevicePath)
	}
	classDevice := &ClassDevice{
		Name:     name,
		Path:     snapshot.Path,
		snapshot: snapshot,
	}
	for _, subdirectoryPath := range snapshot.Subdirectories {
		subdirectory, err := fs.directoryReader.ReadDirectory(subdirectoryPath)
		if err != nil {
			classDevice.Close()
			return nil, util.StatusWrapf(err, "Failed to read class device subdirectory %#v", subdirectoryPath)
		}
		classDevice.subdirectories = append(classDevice.subdirectories, subdirectory)
	}
	for _, symlink := range snapshot.Symlinks {
		switch symlink.Name {
		case deviceLinkName:
			if device, err := fs.OpenDevice(symlink.TargetPath); err == nil {
				classDevice.device.Close()
				classDevice.device = device
				classDevice.linkDeviceAndDriver()
			}
		case driverLinkName:
			if driver, err := fs.OpenDriver(symlink.TargetPath); err == nil {
				classDevice.driver.Close()
				classDevice.driver = driver
				classDevice.linkDeviceAndDriver()
			}
		}
	}
	return classDevice, nil
}

// Class is a named grouping of devices sharing a functional role, such
// as "net" or "block". It owns its directory snapshot and the class
// devices built from the class root's subdirectories.
type Class struct {
	Name string
	Path string

	snapshot *DirectorySnapshot
	devices  []*ClassDevice
}

// Devices returns the class devices that parsed successfully, in the
// order of the class root's subdirectories. It returns nil when none
// did; an empty collection is never allocated.
func (c *Class) Devices() []*ClassDevice {
	if c == nil {
		return nil
	}
	return c.devices
}

// Close releases the class, its snapshot and all of its class devices.
// Close is a no-op on a nil class and on repeated calls.
func (c *Class) Close() {
	if c == nil {
		return
	}
	c.snapshot.Close()
	for _, device := range c.devices {
		device.Close()
	}
	c.devices = nil
}

// OpenClass locates the root directory of the named class underneath
// the sysfs mount point and builds one class device per immediate
// subdirectory.
//
// Unlike OpenDeviceTree(), a class device that fails to parse is
// skipped: the class root's subdirectories are logically independent
// peers, and one broken entry must not hide the remaining devices of
// the class. Failure is reported only when the class root itself cannot
// be opened or the mount point cannot be determined.
func (fs *FS) OpenClass(className string) (*Class, error) {
	if className == "" {
		return nil, status.Error(codes.InvalidArgument, "No class name provided")
	}
	mountPath, err := fs.mountPathResolver.MountPath()
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to determine sysfs mount path")
	}
	classPath := path.Join(mountPath, classSubdirectory, className)
	snapshot, err := fs.directoryReader.ReadDirectory(classPath)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to read class directory %#v", classPath)
	}
	class := &Class{
		Name:     className,
		Path:     snapshot.Path,
		snapshot: snapshot,
	}
	for _, subdirectoryPath := range snapshot.Subdirectories {
		classDevice, err := fs.OpenClassDevice(subdirectoryPath)
		if err != nil {
			continue
		}
		class.devices = append(class.devices, classDevice)
	}
	return class, nil
}
