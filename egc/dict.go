// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package egc

import "github.com/dsnet/pack/internal/radix"

// The dictionary payload stores the rank-ordered symbol list as one large
// base-256 number built from a ternary digit stream. Serialization of the
// list [77 105 112] proceeds as:
//
//	delta:   [77 28 7]         mod-256 difference, accumulator starts at 0
//	shift:   [70 21 0]         subtract the minimum delta, here 7
//	extend:  [7 70 21 0]       the minimum itself leads the sequence
//	ternary: 2 111 2 1000110 2 10101 2
//	pack:    base 3 -> base 256
//
// Each element is rendered as the digit 2 (the group delimiter) followed by
// its minimal binary digits; a zero element contributes no binary digits at
// all, so a delimiter may well be the last ternary digit. The stream always
// begins with a delimiter, and since the delimiter is non-zero, the radix
// packing never sheds leading digits.
const dictDelim = 2

// dictSerialize encodes a non-empty rank-ordered symbol list.
func dictSerialize(syms []byte) []byte {
	deltas := make([]byte, len(syms))
	var prev byte
	for i, s := range syms {
		deltas[i] = s - prev
		prev = s
	}

	min := deltas[0]
	for _, d := range deltas[1:] {
		if d < min {
			min = d
		}
	}
	for i := range deltas {
		deltas[i] -= min
	}

	digits := make([]byte, 0, 9*(len(deltas)+1))
	digits = appendGroup(digits, min)
	for _, d := range deltas {
		digits = appendGroup(digits, d)
	}
	return radix.Convert(digits, 3, 256)
}

// appendGroup appends a delimiter and the minimal binary digits of v.
func appendGroup(digits []byte, v byte) []byte {
	digits = append(digits, dictDelim)
	for i := 7; i >= 0; i-- {
		if v>>uint(i) != 0 {
			digits = append(digits, v>>uint(i)&1)
		}
	}
	return digits
}

// dictDeserialize decodes a dictionary payload back into the rank-ordered
// symbol list. It panics with ErrCorrupt on malformed input.
func dictDeserialize(buf []byte) []byte {
	digits := radix.Convert(buf, 256, 3)
	if digits[0] != dictDelim {
		panic(ErrCorrupt)
	}

	// Split on the delimiters. The leading delimiter opens the first group,
	// and a trailing delimiter leaves a final empty group, which decodes as
	// the value zero.
	var vals []int
	for _, d := range digits {
		if d == dictDelim {
			vals = append(vals, 0)
			continue
		}
		v := &vals[len(vals)-1]
		*v = *v<<1 | int(d)
		if *v > 0xff {
			panic(ErrCorrupt)
		}
	}
	if len(vals) < 2 {
		panic(ErrCorrupt) // Minimum shift plus at least one symbol
	}

	min := byte(vals[0])
	syms := make([]byte, len(vals)-1)
	var acc byte
	for i, v := range vals[1:] {
		acc += byte(v) + min
		syms[i] = acc
	}
	return syms
}
