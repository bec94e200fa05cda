package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/pflag"
	"github.com/sysfsutils/go-sysfs/pkg/sysfs"
)

// sysfs_lsclass lists the devices of a single sysfs class, together
// with the backing device and driver each class device is linked to.

func main() {
	var (
		mountPath      = pflag.String("mount-path", "", "Location of the sysfs mount point. Autodetected through the mount table when left empty.")
		showAttributes = pflag.BoolP("attributes", "a", false, "Also print the attribute values of every backing device.")
	)
	pflag.Parse()
	if pflag.NArg() != 1 {
		log.Fatal("Usage: sysfs_lsclass [flags] <class>")
	}

	directoryReader := sysfs.NewMetricsDirectoryReader(sysfs.NewLocalDirectoryReader())
	var mountPathResolver sysfs.MountPathResolver
	if *mountPath == "" {
		mountPathResolver = sysfs.NewProcfsMountPathResolver()
	} else {
		mountPathResolver = sysfs.NewStaticMountPathResolver(*mountPath)
	}
	fs := sysfs.NewFS(
		directoryReader,
		mountPathResolver,
		sysfs.NewBusDirectoryScanningResolver(directoryReader, mountPathResolver))

	class, err := fs.OpenClass(pflag.Arg(0))
	if err != nil {
		log.Fatal("Failed to open class: ", err)
	}
	defer class.Close()

	fmt.Printf("Class %s (%s):\n", class.Name, class.Path)
	for _, classDevice := range class.Devices() {
		fmt.Printf("  %s\n", classDevice.Name)
		if device := classDevice.Device(); device != nil {
			description := device.BusID
			if device.BusName != "" {
				description = device.BusName + " " + description
			}
			if device.Name != "" {
				description += " (" + device.Name + ")"
			}
			fmt.Printf("    device: %s\n", description)
			if *showAttributes {
				for _, attribute := range device.Attributes() {
					value, err := fs.ReadAttribute(&attribute)
					if err != nil {
						continue
					}
					fmt.Printf("      %s = %s\n", attribute.Name, strings.TrimSuffix(string(value), "\n"))
				}
			}
		}
		if driver := classDevice.Driver(); driver != nil {
			fmt.Printf("    driver: %s\n", driver.Name)
		}
	}
}
