package sysfs

import (
	"path"
)

// BusNameResolver resolves the bus family (e.g. "pci", "usb") that the
// device with a given bus id is registered on. Resolution is best
// effort: an unknown bus id yields the empty string, never an error.
type BusNameResolver interface {
	BusNameForID(busID string) string
}

type busDirectoryScanningResolver struct {
	directoryReader   DirectoryReader
	mountPathResolver MountPathResolver
}

// NewBusDirectoryScanningResolver creates a BusNameResolver that walks
// the "bus" directory of the sysfs mount. Every registered device
// appears under bus/<family>/devices as an entry named after its bus
// id, so the first family listing the id is the answer.
func NewBusDirectoryScanningResolver(directoryReader DirectoryReader, mountPathResolver MountPathResolver) BusNameResolver {
	return &busDirectoryScanningResolver{
		directoryReader:   directoryReader,
		mountPathResolver: mountPathResolver,
	}
}

func (r *busDirectoryScanningResolver) BusNameForID(busID string) string {
	if busID == "" {
		return ""
	}
	mountPath, err := r.mountPathResolver.MountPath()
	if err != nil {
		return ""
	}
	busSnapshot, err := r.directoryReader.ReadDirectory(path.Join(mountPath, busSubdirectory))
	if err != nil {
		return ""
	}
	defer busSnapshot.Close()
	for _, busPath := range busSnapshot.Subdirectories {
		devicesSnapshot, err := r.directoryReader.ReadDirectory(path.Join(busPath, busDevicesSubdirectory))
		if err != nil {
			continue
		}
		for _, symlink := range devicesSnapshot.Symlinks {
			if symlink.Name == busID {
				devicesSnapshot.Close()
				busName, err := nameFromPath(busPath)
				if err != nil {
					return ""
				}
				return busName
			}
		}
		devicesSnapshot.Close()
	}
	return ""
}

type staticBusNameResolver struct {
	busNamesByID map[string]string
}

// NewStaticBusNameResolver creates a BusNameResolver backed by a fixed
// mapping from bus id to bus family.
func NewStaticBusNameResolver(busNamesByID map[string]string) BusNameResolver {
	return staticBusNameResolver{busNamesByID: busNamesByID}
}

func (r staticBusNameResolver) BusNameForID(busID string) string {
	return r.busNamesByID[busID]
}
