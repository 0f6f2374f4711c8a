// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package egc implements an adaptive Exponential-Golomb entropy codec for
// short byte sequences.
//
// The encoder remaps every input byte to its frequency rank, emits the
// rank's prefix-free Exponential-Golomb codeword into a bit stream, packs
// that stream into bytes by treating it as one large base-2 number, and
// appends a compact dictionary from which the decoder rebuilds the rank
// remapping. The whole result is a single self-contained frame:
//
//	offset 0:       negated dictionary length (mod 256)
//	offset 1:       leading zero bits shed by the bit packing
//	offset 2..N:    bit payload, base 2 repacked as base 256
//	offset N..end:  dictionary payload
//
// The codec favors inputs with skewed byte distributions. The base
// conversion used for packing is quadratic in the input length, so the
// codec is intended for buffers up to roughly 3000 bytes; larger buffers
// are better served by a stream compressor.
package egc

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "egc: " + string(e) }

var (
	ErrCorrupt      error = Error("frame is corrupted")
	ErrEmpty        error = Error("no input bytes")
	ErrDictOverflow error = Error("dictionary payload exceeds 255 bytes")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
