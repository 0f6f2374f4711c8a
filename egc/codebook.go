// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package egc

import "math/bits"

// Ranks are encoded with an Exponential-Golomb code. For rank r, let
// b = r+2 and let L be the bit length of b. The codeword is L-2 zero bits
// followed by the L bits of b. Since b always opens with a one bit, the
// zero run announces the codeword length unambiguously, which keeps the
// code prefix-free:
//
//	rank 0   <=>  10
//	rank 1   <=>  11
//	rank 2   <=>  0100
//	rank 5   <=>  0111
//	rank 6   <=>  001000
//	rank 255 <=>  0000000100000001
//
// Codewords are kept as one-byte-per-bit digit strings because the bit
// payload is later handed to the radix converter as a base-2 digit string.
//
// Both tables are built once at package init and never mutated afterwards,
// so concurrent encoders and decoders share them freely.
const (
	numCodes   = 256
	maxCodeLen = 16 // codeword length for rank 255
)

var (
	// codewords maps a rank to its codeword digits.
	codewords [numCodes][]byte

	// codeRanks maps a codeword, keyed as a raw digit string, to its rank.
	codeRanks map[string]int
)

func init() {
	codeRanks = make(map[string]int, numCodes)
	for r := 0; r < numCodes; r++ {
		b := uint(r + 2)
		n := bits.Len(b)
		code := make([]byte, 0, 2*n-2)
		for i := 0; i < n-2; i++ {
			code = append(code, 0)
		}
		for i := n - 1; i >= 0; i-- {
			code = append(code, byte(b>>uint(i))&1)
		}
		codewords[r] = code
		codeRanks[string(code)] = r
	}
}
