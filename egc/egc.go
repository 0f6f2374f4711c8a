// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package egc

import "github.com/dsnet/pack/internal/radix"

// Encode compresses input into a single self-contained frame. The input
// must not be empty, and its distinct byte values must serialize into a
// dictionary payload of at most 255 bytes; otherwise ErrEmpty or
// ErrDictOverflow is returned. Encoding is deterministic: equal inputs
// always produce byte-identical frames.
func Encode(input []byte) (frame []byte, err error) {
	defer errRecover(&err)
	if len(input) == 0 {
		return nil, ErrEmpty
	}

	ranks, syms := rankBytes(input)

	// Serialize the dictionary first so that oversized alphabets fail
	// before the quadratic bit packing runs.
	dictPayload := dictSerialize(syms)
	if len(dictPayload) > 0xff {
		return nil, ErrDictOverflow
	}

	digits := make([]byte, 0, 4*len(input))
	for _, b := range input {
		digits = append(digits, codewords[ranks[b]]...)
	}

	// Packing treats the bit stream as one base-2 number, which cannot
	// represent leading zero bits; their count is stored in the frame.
	// Every codeword contains a one bit, so the count is at most
	// maxCodeLen-9 and always fits a byte.
	var leadingZeros byte
	for _, d := range digits {
		if d != 0 {
			break
		}
		leadingZeros++
	}
	bitPayload := radix.Convert(digits, 2, 256)

	frame = make([]byte, 0, 2+len(bitPayload)+len(dictPayload))
	frame = append(frame, byte(-len(dictPayload)), leadingZeros)
	frame = append(frame, bitPayload...)
	frame = append(frame, dictPayload...)
	return frame, nil
}

// Decode reverses Encode. The frame must carry both length bytes, at least
// one bit-payload byte, and a non-empty dictionary; anything else fails
// with ErrCorrupt.
func Decode(frame []byte) (output []byte, err error) {
	defer errRecover(&err)
	if len(frame) < 3 {
		return nil, ErrCorrupt
	}
	dictLen := int(-frame[0])
	if dictLen == 0 || dictLen > len(frame)-3 {
		return nil, ErrCorrupt
	}
	leadingZeros := int(frame[1])

	bitPayload := frame[2 : len(frame)-dictLen]
	dictPayload := frame[len(frame)-dictLen:]
	syms := dictDeserialize(dictPayload)

	packed := radix.Convert(bitPayload, 256, 2)
	digits := make([]byte, leadingZeros, leadingZeros+len(packed))
	digits = append(digits, packed...)

	// Greedy prefix parse: grow the candidate codeword one bit at a time
	// until it matches. Prefix-freedom guarantees the first match is the
	// only one.
	for pos := 0; pos < len(digits); {
		n := 1
		for {
			if pos+n > len(digits) || n > maxCodeLen {
				panic(ErrCorrupt)
			}
			if r, ok := codeRanks[string(digits[pos:pos+n])]; ok {
				if r >= len(syms) {
					panic(ErrCorrupt)
				}
				output = append(output, syms[r])
				pos += n
				break
			}
			n++
		}
	}
	return output, nil
}
