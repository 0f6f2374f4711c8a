// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package egc

import (
	"bytes"
	"testing"
)

func TestRankBytes(t *testing.T) {
	var vectors = []struct {
		input string
		syms  []byte // Values in rank order
	}{{
		input: "",
		syms:  nil,
	}, {
		input: "aaaaa",
		syms:  []byte("a"),
	}, {
		input: "abab",
		syms:  []byte("ab"), // Equal counts break ties by ascending value
	}, {
		input: "baba",
		syms:  []byte("ab"),
	}, {
		input: "Mississippi",
		syms:  []byte("ispM"), // i:4 s:4 p:2 M:1
	}, {
		input: "cccbba",
		syms:  []byte("cba"),
	}, {
		input: "\xff\x00\xff",
		syms:  []byte{0xff, 0x00},
	}}

	for i, v := range vectors {
		ranks, syms := rankBytes([]byte(v.input))
		if !bytes.Equal(syms, v.syms) {
			t.Errorf("test %d, symbol order mismatch:\ngot  %v\nwant %v", i, syms, v.syms)
		}
		for r, s := range syms {
			if ranks[s] != r {
				t.Errorf("test %d, rank mismatch for %q: got %d, want %d", i, s, ranks[s], r)
			}
		}
		var present int
		for val, r := range ranks {
			if r >= 0 {
				present++
				if int(syms[r]) != val {
					t.Errorf("test %d, rank table inconsistent at value %d", i, val)
				}
			}
		}
		if present != len(syms) {
			t.Errorf("test %d, rank count mismatch: got %d, want %d", i, present, len(syms))
		}
	}
}
