package sysprobe

import "runtime"

// Platform identifies one supported operating system family. The running
// process's platform is resolved once from runtime.GOOS at package
// initialization and never changes afterwards.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformWindows
	PlatformLinux
	PlatformMacOS
	PlatformSolaris
	PlatformFreeBSD
)

// The platform isn't going to change within a process, so resolve it once.
var currentPlatform = detectPlatform(runtime.GOOS)

// Detect returns the platform the current process runs on. Repeated calls
// always return the same value.
func Detect() Platform {
	return currentPlatform
}

// detectPlatform maps a GOOS value onto a Platform. Unrecognized values map
// to PlatformUnknown instead of failing; a process that never requests a
// capability never needs to care, and one that does gets
// ErrUnsupportedPlatform at that point.
func detectPlatform(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	case "solaris", "illumos":
		return PlatformSolaris
	case "freebsd":
		return PlatformFreeBSD
	default:
		return PlatformUnknown
	}
}

// String returns the GOOS-style lowercase name for the platform.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "darwin"
	case PlatformSolaris:
		return "solaris"
	case PlatformFreeBSD:
		return "freebsd"
	default:
		return "unknown"
	}
}
