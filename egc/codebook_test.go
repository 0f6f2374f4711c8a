// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package egc

import (
	"strings"
	"testing"
)

func codewordString(r int) string {
	var sb strings.Builder
	for _, d := range codewords[r] {
		sb.WriteByte('0' + d)
	}
	return sb.String()
}

func TestCodewords(t *testing.T) {
	var vectors = []struct {
		rank int
		code string
	}{
		{rank: 0, code: "10"},
		{rank: 1, code: "11"},
		{rank: 2, code: "0100"},
		{rank: 3, code: "0101"},
		{rank: 4, code: "0110"},
		{rank: 5, code: "0111"},
		{rank: 6, code: "001000"},
		{rank: 7, code: "001001"},
		{rank: 13, code: "001111"},
		{rank: 14, code: "00010000"},
		{rank: 29, code: "00011111"},
		{rank: 30, code: "0000100000"},
		{rank: 254, code: "0000000100000000"},
		{rank: 255, code: "0000000100000001"},
	}

	for i, v := range vectors {
		if code := codewordString(v.rank); code != v.code {
			t.Errorf("test %d, codeword mismatch for rank %d: got %s, want %s", i, v.rank, code, v.code)
		}
	}
}

func TestCodewordsPrefixFree(t *testing.T) {
	for i := 0; i < numCodes; i++ {
		if len(codewords[i]) > maxCodeLen {
			t.Errorf("rank %d, codeword length %d exceeds maxCodeLen %d", i, len(codewords[i]), maxCodeLen)
		}
		for j := 0; j < numCodes; j++ {
			if i == j {
				continue
			}
			ci, cj := string(codewords[i]), string(codewords[j])
			if strings.HasPrefix(cj, ci) {
				t.Errorf("rank %d codeword is a prefix of rank %d codeword", i, j)
			}
		}
	}
}

func TestCodewordsInverse(t *testing.T) {
	if len(codeRanks) != numCodes {
		t.Fatalf("reverse table size mismatch: got %d, want %d", len(codeRanks), numCodes)
	}
	for r := 0; r < numCodes; r++ {
		if got, ok := codeRanks[string(codewords[r])]; !ok || got != r {
			t.Errorf("reverse lookup mismatch for rank %d: got %d, ok %v", r, got, ok)
		}
	}
}
