// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package radix

import (
	"bytes"
	"testing"

	"github.com/dsnet/pack/internal/testutil"
)

func TestConvert(t *testing.T) {
	var vectors = []struct {
		input    []byte
		src, dst int
		output   []byte
	}{{
		input: []byte{}, src: 2, dst: 256,
		output: []byte{0},
	}, {
		input: []byte{0}, src: 2, dst: 256,
		output: []byte{0},
	}, {
		input: []byte{0, 0, 0}, src: 3, dst: 5,
		output: []byte{0},
	}, {
		input: []byte{1, 0, 1, 1}, src: 2, dst: 256,
		output: []byte{11},
	}, {
		input: []byte{11}, src: 256, dst: 2,
		output: []byte{1, 0, 1, 1},
	}, {
		input: []byte{0, 0, 1}, src: 2, dst: 256,
		output: []byte{1},
	}, {
		input: []byte{255, 255}, src: 256, dst: 10,
		output: []byte{6, 5, 5, 3, 5},
	}, {
		input: []byte{6, 5, 5, 3, 5}, src: 10, dst: 256,
		output: []byte{255, 255},
	}, {
		input: []byte{1, 0, 0}, src: 10, dst: 16,
		output: []byte{6, 4},
	}, {
		input: []byte{5, 0, 3}, src: 7, dst: 7,
		output: []byte{5, 0, 3},
	}, {
		input: []byte{2, 1, 1, 0, 0, 0, 0, 1, 2}, src: 3, dst: 256,
		output: []byte{62, 171},
	}}

	for i, v := range vectors {
		output := Convert(v.input, v.src, v.dst)
		if !bytes.Equal(output, v.output) {
			t.Errorf("test %d, output mismatch:\ngot  %v\nwant %v", i, output, v.output)
		}
	}
}

// The round trip through a foreign base must preserve the numeric value,
// which means it preserves the digits modulo leading zeros.
func TestConvertInverse(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 200; i++ {
		src := 2 + rand.Intn(255)
		dst := 2 + rand.Intn(255)
		digits := make([]byte, rand.Intn(64))
		for j := range digits {
			digits[j] = byte(rand.Intn(src))
		}

		got := Convert(Convert(digits, src, dst), dst, src)
		want := digits
		for len(want) > 0 && want[0] == 0 {
			want = want[1:]
		}
		if len(want) == 0 {
			want = []byte{0}
		}
		if !bytes.Equal(got, want) {
			t.Errorf("test %d, base %d->%d round trip mismatch:\ngot  %v\nwant %v", i, src, dst, got, want)
		}
	}
}

func TestConvertBadBase(t *testing.T) {
	for i, v := range []struct{ src, dst int }{
		{1, 256}, {2, 257}, {0, 10}, {10, 1},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("test %d, expected panic on bases %d->%d", i, v.src, v.dst)
				}
			}()
			Convert([]byte{1}, v.src, v.dst)
		}()
	}
}
