// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package archive implements a sequential-file archive container.
//
// An archive is a flat sequence of entries, each carrying a name, a
// compression kind, the original and compressed payload lengths, a
// modification time and a CRC-32 of the uncompressed payload, followed by a
// trailer holding the combined CRC of every payload in order. There is no
// central directory; readers consume entries front to back.
//
// Entry layout (all integers little-endian):
//
//	offset  0: magic "pk"       (2 bytes)
//	offset  2: compression kind (1 byte)
//	offset  3: mod time, Unix   (8 bytes)
//	offset 11: original length  (4 bytes)
//	offset 15: compressed length(4 bytes)
//	offset 19: name length      (2 bytes)
//	offset 21: name, then compressed payload, then payload CRC-32 (4 bytes)
//
// Trailer layout: magic "pe" (2 bytes), combined CRC-32 (4 bytes).
package archive

import "time"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "archive: " + string(e) }

var (
	ErrCorrupt error = Error("archive is corrupted")
	ErrClosed  error = Error("archive is closed")
)

// Kind identifies the compression codec applied to an entry's payload.
type Kind uint8

const (
	Store Kind = iota // No compression
	Flate             // DEFLATE stream
	GZip              // GZip stream
	Brotli            // Brotli stream
	XZ                // XZ stream
	EGC               // Adaptive Exp-Golomb frame, for short skewed payloads
	Huffman           // Classic Huffman coded block

	numKinds
)

var kindNames = [numKinds]string{"Store", "Flate", "GZip", "Brotli", "XZ", "EGC", "Huffman"}

func (k Kind) String() string {
	if k >= numKinds {
		return "Unknown"
	}
	return kindNames[k]
}

// An Entry describes a single archived file.
type Entry struct {
	Name           string
	Kind           Kind
	Size           int64 // Uncompressed payload length
	CompressedSize int64
	ModTime        time.Time
}

const (
	entryMagic = "pk"
	endMagic   = "pe"

	hdrLen     = 21
	trailerLen = 6
)
