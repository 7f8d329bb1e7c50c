//go:build !windows

package software

import "os"

// currentUserElevated reports whether the process runs as root.
func currentUserElevated() bool {
	return os.Geteuid() == 0
}
