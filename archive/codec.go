// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package archive

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/pack/egc"
	"github.com/dsnet/pack/huffman"
)

// compress runs data through the codec for the given kind.
// The stream codecs cannot fail on an in-memory buffer, but the block
// codecs reject inputs they cannot represent (see egc and huffman docs).
func compress(kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case Store:
		return data, nil
	case EGC:
		return egc.Encode(data)
	case Huffman:
		return huffman.Encode(data)
	}

	var buf bytes.Buffer
	var zw io.WriteCloser
	switch kind {
	case Flate:
		zw, _ = flate.NewWriter(&buf, flate.DefaultCompression)
	case GZip:
		zw = gzip.NewWriter(&buf)
	case Brotli:
		zw = brotli.NewWriter(&buf)
	case XZ:
		var err error
		if zw, err = xz.NewWriter(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, ErrCorrupt
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompress reverses compress for the given kind.
func decompress(kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case Store:
		return data, nil
	case EGC:
		return egc.Decode(data)
	case Huffman:
		return huffman.Decode(data)
	}

	var zr io.Reader
	switch kind {
	case Flate:
		zr = flate.NewReader(bytes.NewReader(data))
	case GZip:
		var err error
		if zr, err = gzip.NewReader(bytes.NewReader(data)); err != nil {
			return nil, ErrCorrupt
		}
	case Brotli:
		zr = brotli.NewReader(bytes.NewReader(data))
	case XZ:
		var err error
		if zr, err = xz.NewReader(bytes.NewReader(data)); err != nil {
			return nil, ErrCorrupt
		}
	default:
		return nil, ErrCorrupt
	}
	output, err := io.ReadAll(zr)
	if err != nil {
		return nil, ErrCorrupt
	}
	return output, nil
}
