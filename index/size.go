package index

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// FormatSize renders a byte count with binary unit prefixes and one decimal,
// e.g. 1536 -> "1.5KiB". Magnitudes of 1024^8 and above are given in YiB.
func FormatSize(n float64) string {
	for _, unit := range sizeUnits {
		if math.Abs(n) < 1024 {
			return fmt.Sprintf("%3.1f%sB", n, unit)
		}
		n /= 1024
	}
	return fmt.Sprintf("%.1f%sB", n, "Yi")
}
