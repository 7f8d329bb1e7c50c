//go:build windows

package software

import "golang.org/x/sys/windows"

// currentUserElevated reports whether the process token carries elevation.
func currentUserElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
