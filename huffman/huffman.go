// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a classic Huffman coded block format.
//
// A block is fully self-contained: a 32-bit symbol count, the code tree
// serialized in pre-order (a zero bit for an internal node, a one bit plus
// eight symbol bits for a leaf), and then one codeword per input byte.
// Unlike the adaptive codec in the egc package, the bit stream is packed
// byte by byte, so blocks of any practical size encode in linear time.
package huffman

import (
	"container/heap"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	ErrCorrupt  error = Error("encoded block is corrupted")
	ErrEmpty    error = Error("no input bytes")
	ErrTooLarge error = Error("block exceeds size limit")
)

// maxBlockLen bounds the symbol count of a single block. It keeps a corrupt
// count field from provoking giant allocations during decode.
const maxBlockLen = 1 << 24

type node struct {
	sym         byte
	count       int
	left, right *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].count < h[j].count }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(v interface{}) { *h = append(*h, v.(*node)) }
func (h *nodeHeap) Pop() (v interface{}) {
	v, *h = (*h)[len(*h)-1], (*h)[:len(*h)-1]
	return v
}

// buildTree builds the code tree for the given byte frequencies.
// At least one count must be non-zero. A single distinct symbol yields a
// tree of one leaf, whose codeword is empty; the symbol count alone drives
// reconstruction of such blocks.
func buildTree(counts *[256]int) *node {
	var h nodeHeap
	for v, cnt := range counts {
		if cnt > 0 {
			h = append(h, &node{sym: byte(v), count: cnt})
		}
	}
	heap.Init(&h)
	for h.Len() > 1 {
		n1 := heap.Pop(&h).(*node)
		n2 := heap.Pop(&h).(*node)
		heap.Push(&h, &node{count: n1.count + n2.count, left: n1, right: n2})
	}
	return h[0]
}

// fillCodes records the root-to-leaf path of every reachable symbol.
func fillCodes(codes *[256][]byte, n *node, path []byte) {
	if n.left == nil {
		codes[n.sym] = append([]byte(nil), path...)
		return
	}
	fillCodes(codes, n.left, append(path, 0))
	fillCodes(codes, n.right, append(path, 1))
}

// Write the tree in pre-order.
// This function panics if an error occurs.
func writeTree(bw bits.BitsWriter, n *node) {
	var err error
	if n.left == nil {
		if _, err = bw.WriteBits(1, 1); err == nil {
			_, err = bw.WriteBits(uint(n.sym), 8)
		}
	} else {
		if _, err = bw.WriteBits(0, 1); err == nil {
			writeTree(bw, n.left)
			writeTree(bw, n.right)
		}
	}
	if err != nil {
		panic(err)
	}
}

// Read a tree written by writeTree.
// This function panics if an error occurs.
func readTree(br bits.BitsReader, depth int) *node {
	errs.Assert(depth <= 256, ErrCorrupt)
	leaf, err := br.ReadBit()
	if err != nil {
		panic(ErrCorrupt)
	}
	if leaf {
		return &node{sym: byte(readBits(br, 8))}
	}
	left := readTree(br, depth+1)
	right := readTree(br, depth+1)
	return &node{left: left, right: right}
}

// Read multiple bits.
// This function panics if an error occurs.
func readBits(br bits.BitsReader, num int) uint {
	val, _, err := br.ReadBits(num)
	if err != nil {
		panic(ErrCorrupt)
	}
	return val
}

// Encode compresses input into a self-contained block.
// The input must be non-empty and no longer than the block size limit.
func Encode(input []byte) (block []byte, err error) {
	defer errs.Recover(&err)
	if len(input) == 0 {
		return nil, ErrEmpty
	}
	if len(input) > maxBlockLen {
		return nil, ErrTooLarge
	}

	var counts [256]int
	for _, b := range input {
		counts[b]++
	}
	var codes [256][]byte
	root := buildTree(&counts)
	fillCodes(&codes, root, nil)

	bb := bits.NewBuffer(nil)
	if _, err := bb.WriteBits(uint(len(input)), 32); err != nil {
		panic(err)
	}
	writeTree(bb, root)
	for _, b := range input {
		for _, d := range codes[b] {
			if _, err := bb.WriteBits(uint(d), 1); err != nil {
				panic(err)
			}
		}
	}
	return bb.Bytes(), nil
}

// Decode reverses Encode, failing with ErrCorrupt if the block's tree or
// bit stream is malformed or truncated.
func Decode(block []byte) (output []byte, err error) {
	defer errs.Recover(&err)

	bb := bits.NewBuffer(nil)
	bb.ResetBuffer(block)
	cnt := int(readBits(bb, 32))
	errs.Assert(cnt > 0 && cnt <= maxBlockLen, ErrCorrupt)
	root := readTree(bb, 0)

	output = make([]byte, 0, cnt)
	for i := 0; i < cnt; i++ {
		n := root
		for n.left != nil {
			bit, err := bb.ReadBit()
			if err != nil {
				panic(ErrCorrupt)
			}
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		output = append(output, n.sym)
	}
	return output, nil
}
