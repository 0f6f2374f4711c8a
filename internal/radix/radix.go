// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package radix converts digit strings between positional numeral systems.
package radix

// Convert interprets digits as a non-negative integer written in base src,
// most significant digit first, and returns the same value written in
// base dst. An empty input is treated as zero and yields a single zero digit.
// The output never carries leading zero digits, so converting back restores
// the input only up to any leading zeros it had.
//
// The algorithm is schoolbook long division: each sweep over the digit
// buffer divides the number by dst in place, and the sweep remainders, read
// in reverse order of production, form the output. The input slice is left
// untouched; the division consumes an owned copy.
//
// Both bases must be in the range [2, 256], and every digit must be less
// than src. The cost is quadratic in the digit count.
func Convert(digits []byte, src, dst int) []byte {
	if src < 2 || src > 256 || dst < 2 || dst > 256 {
		panic("radix: base out of range")
	}
	buf := make([]byte, len(digits))
	copy(buf, digits)

	var out []byte
	for {
		var rem int
		zero := true
		for i, d := range buf {
			v := rem*src + int(d)
			q := v / dst
			rem = v % dst
			buf[i] = byte(q)
			if q > 0 {
				zero = false
			}
		}
		out = append(out, byte(rem))
		if zero {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
