// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package egc

import "sort"

// rankBytes counts the occurrences of every byte value in input and assigns
// each value present a dense rank, with rank 0 given to the most frequent
// value. Ties are broken by ascending byte value. The returned table maps a
// byte value to its rank, with -1 marking values that never occur; syms
// lists the values present in rank order and is exactly what the dictionary
// payload must carry for the decoder to invert the remapping.
func rankBytes(input []byte) (ranks [256]int, syms []byte) {
	var counts [256]int
	for _, b := range input {
		counts[b]++
	}

	var order [256]int
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order[:], func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	for i := range ranks {
		ranks[i] = -1
	}
	for r, v := range order {
		if counts[v] == 0 {
			break // All remaining values are absent
		}
		ranks[v] = r
		syms = append(syms, byte(v))
	}
	return ranks, syms
}
