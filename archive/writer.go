// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package archive

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"math"
	"time"

	hashutil "github.com/dsnet/golib/hashmerge"
)

// Writer appends entries to an archive stream.
type Writer struct {
	wr  io.Writer
	crc uint32 // Combined CRC-32 of all payloads written
	err error  // Persistent error
}

// NewWriter creates a new Writer writing to wr.
func NewWriter(wr io.Writer) *Writer {
	return &Writer{wr: wr}
}

// WriteEntry compresses data with the given kind and appends one entry.
// Codec failures (for example egc.ErrDictOverflow on an oversized alphabet)
// are returned without poisoning the Writer; errors from the underlying
// io.Writer are persistent.
func (aw *Writer) WriteEntry(name string, kind Kind, modTime time.Time, data []byte) error {
	if aw.err != nil {
		return aw.err
	}
	if kind >= numKinds {
		return Error("unknown compression kind")
	}
	if len(name) > math.MaxUint16 {
		return Error("entry name too long")
	}
	if int64(len(data)) > math.MaxUint32 {
		return Error("entry payload too large")
	}

	comp, err := compress(kind, data)
	if err != nil {
		return err
	}

	hdr := make([]byte, hdrLen, hdrLen+len(name))
	copy(hdr, entryMagic)
	hdr[2] = byte(kind)
	binary.LittleEndian.PutUint64(hdr[3:11], uint64(modTime.Unix()))
	binary.LittleEndian.PutUint32(hdr[11:15], uint32(len(data)))
	binary.LittleEndian.PutUint32(hdr[15:19], uint32(len(comp)))
	binary.LittleEndian.PutUint16(hdr[19:21], uint16(len(name)))
	hdr = append(hdr, name...)

	crc := crc32.ChecksumIEEE(data)
	var ftr [4]byte
	binary.LittleEndian.PutUint32(ftr[:], crc)

	for _, buf := range [][]byte{hdr, comp, ftr[:]} {
		if _, err := aw.wr.Write(buf); err != nil {
			aw.err = err
			return err
		}
	}
	aw.crc = hashutil.CombineCRC32(crc32.IEEE, aw.crc, crc, int64(len(data)))
	return nil
}

// Close writes the archive trailer. The Writer cannot be used afterwards.
func (aw *Writer) Close() error {
	if aw.err != nil {
		return aw.err
	}
	var tr [trailerLen]byte
	copy(tr[:], endMagic)
	binary.LittleEndian.PutUint32(tr[2:], aw.crc)
	if _, err := aw.wr.Write(tr[:]); err != nil {
		aw.err = err
		return err
	}
	aw.err = ErrClosed
	return nil
}
