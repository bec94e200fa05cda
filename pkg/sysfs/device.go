package sysfs

import (
	"strings"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Device is a node in the hierarchical device topology, identified by
// its bus id and canonical path. A device owns its directory snapshot
// and its child devices. The driver pointer is purely navigational: the
// driver is owned by the ClassDevice that resolved it, never by the
// device.
type Device struct {
	BusID   string
	BusName string
	Name    string
	Path    string

	snapshot *DirectorySnapshot
	children []*Device
	driver   *Driver
}

// Children returns the owned child devices. It returns nil when the
// device has no children; an empty collection is never allocated.
func (d *Device) Children() []*Device {
	if d == nil {
		return nil
	}
	return d.children
}

// Driver returns the driver bound to this device, or nil when no class
// device resolution established one.
func (d *Device) Driver() *Driver {
	if d == nil {
		return nil
	}
	return d.driver
}

// Attribute returns the device's attribute entry literally named name,
// or nil when the device directory has no such attribute file.
func (d *Device) Attribute(name string) *AttributeEntry {
	if d == nil {
		return nil
	}
	return d.snapshot.Attribute(name)
}

// Attributes returns all attribute files of the device directory, in
// directory order.
func (d *Device) Attributes() []AttributeEntry {
	if d == nil {
		return nil
	}
	return d.snapshot.Attributes
}

// Close releases the device and everything it owns: children first,
// depth first, then the device's own snapshot. The driver
// back-reference is never followed, as the driver is owned elsewhere.
// Close is a no-op on a nil device and on repeated calls.
func (d *Device) Close() {
	if d == nil {
		return
	}
	for _, child := range d.children {
		child.Close()
	}
	d.children = nil
	d.snapshot.Close()
	d.driver = nil
}

// OpenDevice opens the device directory at devicePath and returns a
// single device node. Child directories are listed in the snapshot but
// not opened; use OpenDeviceTree() for that.
//
// The bus name is resolved on a best-effort basis: an unknown bus id
// simply leaves BusName empty. The same holds for the optional "name"
// attribute, whose single trailing newline is stripped when present.
func (fs *FS) OpenDevice(devicePath string) (*Device, error) {
	if devicePath == "" {
		return nil, status.Error(codes.InvalidArgument, "No device path provided")
	}
	snapshot, err := fs.directoryReader.ReadDirectory(devicePath)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to read device directory %#v", devicePath)
	}
	device := &Device{
		BusID:    snapshot.Name,
		BusName:  fs.busNameResolver.BusNameForID(snapshot.Name),
		Path:     snapshot.Path,
		snapshot: snapshot,
	}
	if attribute := snapshot.Attribute(nameAttribute); attribute != nil {
		// An unreadable name attribute is treated the same as an
		// absent one.
		if value, err := fs.directoryReader.ReadFile(attribute.Path); err == nil {
			device.Name = strings.TrimSuffix(string(value), "\n")
		}
	}
	return device, nil
}

// OpenDeviceTree opens the device directory at devicePath and
// recursively all of its subdirectories, returning the root of a
// parent-owns-children device tree.
//
// The build is all or nothing: a failure on any child invalidates
// confidence in the whole subtree snapshot (sysfs contents can change
// during a slow walk), so the partially built tree is closed and the
// error returned.
func (fs *FS) OpenDeviceTree(devicePath string) (*Device, error) {
	root, err := fs.OpenDevice(devicePath)
	if err != nil {
		return nil, err
	}
	for _, subdirectoryPath := range root.snapshot.Subdirectories {
		child, err := fs.OpenDeviceTree(subdirectoryPath)
		if err != nil {
			root.Close()
			return nil, err
		}
		root.children = append(root.children, child)
	}
	return root, nil
}
