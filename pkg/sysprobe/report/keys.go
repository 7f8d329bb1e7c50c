package report

import "strings"

// Canonical inclusion keys understood by the facade and the capability
// layers. Entities consult these constants rather than re-spelling key
// strings, so this list is the single source of truth for what a report can
// contain.
const (
	// Resolved by the facade without constructing any capability.
	KeyPlatform = "platform"

	// Operating system section and its owned groups.
	KeyOperatingSystem = "operatingSystem"
	KeyOSVersion       = "operatingSystem.version"
	KeyOSFileStores    = "operatingSystem.fileStores"
	KeyOSProcesses     = "operatingSystem.processes"

	// Hardware section and its owned groups.
	KeyHardware           = "hardware"
	KeyHWComputerSystem   = "hardware.computerSystem"
	KeyHWProcessor        = "hardware.processor"
	KeyHWMemory           = "hardware.memory"
	KeyHWDisks            = "hardware.disks"
	KeyHWNetworkInterface = "hardware.network"
	KeyHWSensors          = "hardware.sensors"
)

var allKeys = []string{
	KeyPlatform,
	KeyOperatingSystem,
	KeyOSVersion,
	KeyOSFileStores,
	KeyOSProcesses,
	KeyHardware,
	KeyHWComputerSystem,
	KeyHWProcessor,
	KeyHWMemory,
	KeyHWDisks,
	KeyHWNetworkInterface,
	KeyHWSensors,
}

// Keys returns every canonical inclusion key, top-level first. The slice is a
// copy and safe to reorder.
func Keys() []string {
	out := make([]string, len(allKeys))
	copy(out, allKeys)
	return out
}

// Full returns a config with every canonical key switched on.
func Full() Config {
	c := make(Config, len(allKeys))
	for _, key := range allKeys {
		c[key] = true
	}
	return c
}

// Expand returns key plus every canonical key nested beneath it, so a caller
// can switch on a whole section ("hardware") without spelling out each
// child. A key with no canonical children passes through unchanged; nested
// entities may still recognize it.
func Expand(key string) []string {
	var out []string
	for _, k := range allKeys {
		if k == key || strings.HasPrefix(k, key+".") {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		out = []string{key}
	}
	return out
}
