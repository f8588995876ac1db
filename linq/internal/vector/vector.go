// Package vector holds the numeric reduction backend used by the unfiltered
// contiguous paths of Sum, Min, Max and MinMax. The loops run eight
// independent accumulators per iteration so the CPU can overlap the
// dependent adds/compares; the tail is folded in sequentially.
//
// Floating-point sums are reassociated and may differ from a sequential sum
// in the last bits.
package vector

import "github.com/lguimbarda/min-linq/linq/core"

const width = 8

// Sum returns the sum of s, or 0 for an empty slice.
func Sum[T core.Number](s []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	i := 0
	for ; i+width <= len(s); i += width {
		b := s[i : i+width : i+width]
		a0 += b[0]
		a1 += b[1]
		a2 += b[2]
		a3 += b[3]
		a4 += b[4]
		a5 += b[5]
		a6 += b[6]
		a7 += b[7]
	}
	sum := ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
	for ; i < len(s); i++ {
		sum += s[i]
	}
	return sum
}

// Min returns the smallest element of s and false if s is empty.
func Min[T core.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	if len(s) < width {
		m := s[0]
		for _, v := range s[1:] {
			if v < m {
				m = v
			}
		}
		return m, true
	}
	var acc [width]T
	copy(acc[:], s[:width])
	i := width
	for ; i+width <= len(s); i += width {
		b := s[i : i+width : i+width]
		for k := range acc {
			if b[k] < acc[k] {
				acc[k] = b[k]
			}
		}
	}
	m := acc[0]
	for _, v := range acc[1:] {
		if v < m {
			m = v
		}
	}
	for ; i < len(s); i++ {
		if s[i] < m {
			m = s[i]
		}
	}
	return m, true
}

// Max returns the largest element of s and false if s is empty.
func Max[T core.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	if len(s) < width {
		m := s[0]
		for _, v := range s[1:] {
			if v > m {
				m = v
			}
		}
		return m, true
	}
	var acc [width]T
	copy(acc[:], s[:width])
	i := width
	for ; i+width <= len(s); i += width {
		b := s[i : i+width : i+width]
		for k := range acc {
			if b[k] > acc[k] {
				acc[k] = b[k]
			}
		}
	}
	m := acc[0]
	for _, v := range acc[1:] {
		if v > m {
			m = v
		}
	}
	for ; i < len(s); i++ {
		if s[i] > m {
			m = s[i]
		}
	}
	return m, true
}

// MinMax returns both extremes of s in one pass, and false if s is empty.
func MinMax[T core.Ordered](s []T) (lo, hi T, ok bool) {
	if len(s) == 0 {
		return lo, hi, false
	}
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
