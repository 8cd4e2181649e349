package osHealth

import (
	"math"
	"strconv"
)

const bytesPerGB = 1024 * 1024 * 1024

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BytesToGB converts bytes to binary gigabytes, rounded to two decimals.
func BytesToGB(b uint64) float64 {
	return Round2(float64(b) / bytesPerGB)
}

// Percent returns part/whole*100 rounded to two decimals. A zero whole yields 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(part / whole * 100)
}

// FormatValue prints a normalized value with no trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
