// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package archive

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"time"

	hashutil "github.com/dsnet/golib/hashmerge"
)

// Reader consumes archive entries front to back.
type Reader struct {
	rd  io.Reader
	crc uint32 // Combined CRC-32 of all payloads read
	err error  // Persistent error
}

// NewReader creates a new Reader reading from rd.
func NewReader(rd io.Reader) *Reader {
	return &Reader{rd: rd}
}

// Next reads the next entry and returns its metadata and decompressed
// payload. After the last entry it verifies the trailer and returns io.EOF.
// Any malformed header, payload or checksum fails with ErrCorrupt, and the
// Reader refuses further reads afterwards.
func (ar *Reader) Next() (*Entry, []byte, error) {
	if ar.err != nil {
		return nil, nil, ar.err
	}
	ent, data, err := ar.next()
	if err != nil && err != io.EOF {
		ar.err = err
	}
	return ent, data, err
}

func (ar *Reader) next() (*Entry, []byte, error) {
	var magic [2]byte
	if _, err := io.ReadFull(ar.rd, magic[:]); err != nil {
		return nil, nil, ErrCorrupt // Missing trailer
	}

	switch string(magic[:]) {
	case endMagic:
		var sum [4]byte
		if _, err := io.ReadFull(ar.rd, sum[:]); err != nil {
			return nil, nil, ErrCorrupt
		}
		if binary.LittleEndian.Uint32(sum[:]) != ar.crc {
			return nil, nil, ErrCorrupt
		}
		return nil, nil, io.EOF
	case entryMagic:
		// Continue below.
	default:
		return nil, nil, ErrCorrupt
	}

	var hdr [hdrLen - 2]byte
	if _, err := io.ReadFull(ar.rd, hdr[:]); err != nil {
		return nil, nil, ErrCorrupt
	}
	kind := Kind(hdr[0])
	modTime := int64(binary.LittleEndian.Uint64(hdr[1:9]))
	origLen := int(binary.LittleEndian.Uint32(hdr[9:13]))
	compLen := int(binary.LittleEndian.Uint32(hdr[13:17]))
	nameLen := int(binary.LittleEndian.Uint16(hdr[17:19]))
	if kind >= numKinds {
		return nil, nil, ErrCorrupt
	}

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(ar.rd, name); err != nil {
		return nil, nil, ErrCorrupt
	}
	comp := make([]byte, compLen)
	if _, err := io.ReadFull(ar.rd, comp); err != nil {
		return nil, nil, ErrCorrupt
	}
	var sum [4]byte
	if _, err := io.ReadFull(ar.rd, sum[:]); err != nil {
		return nil, nil, ErrCorrupt
	}

	data, err := decompress(kind, comp)
	if err != nil {
		return nil, nil, err
	}
	if len(data) != origLen {
		return nil, nil, ErrCorrupt
	}
	crc := crc32.ChecksumIEEE(data)
	if crc != binary.LittleEndian.Uint32(sum[:]) {
		return nil, nil, ErrCorrupt
	}
	ar.crc = hashutil.CombineCRC32(crc32.IEEE, ar.crc, crc, int64(len(data)))

	ent := &Entry{
		Name:           string(name),
		Kind:           kind,
		Size:           int64(origLen),
		CompressedSize: int64(compLen),
		ModTime:        time.Unix(modTime, 0).UTC(),
	}
	return ent, data, nil
}
