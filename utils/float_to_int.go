// SPDX-License-Identifier: EPL-2.0

package utils

// Float64ToInt16 saturates x to [-1,1] and scales it to 16-bit PCM.
func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	} else if x != x { // NaN
		return 0
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float64sToPCM16 converts src into dst as 16-bit values widened to int,
// the layout go-audio buffers expect. It returns the number of values
// converted, min(len(dst), len(src)).
func Float64sToPCM16(dst []int, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int(Float64ToInt16(src[i]))
	}
	return n
}
