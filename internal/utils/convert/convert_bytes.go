package utils

import "fmt"

// Binary suffixes for humanized byte counts. uint64 tops out in the exabyte
// range, so the table never runs past EB.
var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// BytesToHumanReadable formats a byte count with 1024-based units, e.g.
// 1536 -> "1.5 KB". Counts below one KB print as whole bytes.
func BytesToHumanReadable(bytes uint64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}
