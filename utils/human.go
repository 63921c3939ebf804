package utils

import (
	"fmt"
)

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// HumanBytes converts bytes to human readable string the way pacman -Qi does:
// value is scaled down while it's 2048 or more
func HumanBytes(i int64) string {
	size := float64(i)
	unit := 0

	for (size >= 2048 || size <= -2048) && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", size, byteUnits[unit])
}
