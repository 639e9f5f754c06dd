// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383}, // 16383.5 truncated
		{name: "half negative", input: -0.5, want: -16383},
		{name: "quarter positive", input: 0.25, want: 8191}, // 8191.75 truncated
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: -math.MaxInt16},
		{name: "positive infinity", input: math.Inf(1), want: math.MaxInt16},
		{name: "negative infinity", input: math.Inf(-1), want: -math.MaxInt16},
		{name: "nan", input: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float64ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat64ToInt16Symmetry tests that conversion is symmetric
func TestFloat64ToInt16Symmetry(t *testing.T) {
	t.Parallel()

	for _, val := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0, 2.0} {
		pos := Float64ToInt16(val)
		neg := Float64ToInt16(-val)

		if pos != -neg {
			t.Errorf("Float64ToInt16 not symmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

// TestFloat64ToInt16Monotonic tests that function is monotonic
func TestFloat64ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float64ToInt16(-2.0)

	for f := -1.99; f <= 2.0; f += 0.01 {
		curr := Float64ToInt16(f)
		if curr < prev {
			t.Errorf("Float64ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat64sToPCM16(t *testing.T) {
	t.Parallel()

	src := []float64{0, 1, -1, 0.5, 3}

	t.Run("equal lengths", func(t *testing.T) {
		t.Parallel()

		dst := make([]int, len(src))
		n := Float64sToPCM16(dst, src)
		if n != len(src) {
			t.Fatalf("Float64sToPCM16() = %d, want %d", n, len(src))
		}

		want := []int{0, 32767, -32767, 16383, 32767}
		for i := range want {
			if dst[i] != want[i] {
				t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
			}
		}
	})

	t.Run("short dst", func(t *testing.T) {
		t.Parallel()

		dst := make([]int, 2)
		if n := Float64sToPCM16(dst, src); n != 2 {
			t.Errorf("Float64sToPCM16() = %d, want 2", n)
		}
	})

	t.Run("short src", func(t *testing.T) {
		t.Parallel()

		dst := []int{7, 7, 7, 7, 7, 7, 7}
		if n := Float64sToPCM16(dst, src); n != len(src) {
			t.Errorf("Float64sToPCM16() = %d, want %d", n, len(src))
		}
		if dst[len(src)] != 7 {
			t.Errorf("dst[%d] = %d, want untouched 7", len(src), dst[len(src)])
		}
	})
}

// TestFloat64sToPCM16_ZeroAllocs tests batch conversion allocations
func TestFloat64sToPCM16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := make([]float64, 2048)
	dst := make([]int, 2048)

	allocs := testing.AllocsPerRun(100, func() {
		Float64sToPCM16(dst, src)
	})

	if allocs > 0 {
		t.Errorf("Float64sToPCM16 allocated %v times, want 0", allocs)
	}
}

// BenchmarkFloat64sToPCM16 simulates converting one rendered block
func BenchmarkFloat64sToPCM16(b *testing.B) {
	src := make([]float64, 2048)
	dst := make([]int, 2048)

	for i := range src {
		src[i] = math.Sin(float64(i) * 0.1)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		Float64sToPCM16(dst, src)
	}
}
