/*******************************************************************************
*
* Copyright 2026 Nexus Mods
*
* This file is part of node-gamebryo-savegames.
*
* node-gamebryo-savegames is free software: you can redistribute it and/or
* modify it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or (at your
* option) any later version.
*
* node-gamebryo-savegames is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General
* Public License for more details.
*
* You should have received a copy of the GNU General Public License along with
* node-gamebryo-savegames. If not, see <http://www.gnu.org/licenses/>.
*
*******************************************************************************/

// Package decompress implements the two mid-stream decompression adapters
// the Gamebryo/Creation save formats use: raw zlib inflate and LZ4 block
// decompression, selected by the compressionFormat field a Skyrim Special
// Edition save records (the only parser here that installs one). Both are
// single-shot: the
// whole compressed region is decompressed into an owned buffer up front,
// never streamed.
package decompress

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Zlib inflates exactly compressedLen bytes read from r into a buffer of
// uncompressedLen bytes. A short or corrupt stream is reported as an error;
// it never panics.
func Zlib(r io.Reader, compressedLen, uncompressedLen int) ([]byte, error) {
	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, errors.Wrap(err, "zlib: reading compressed region")
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(err, "zlib: init")
	}
	defer zr.Close()

	out := make([]byte, uncompressedLen)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, errors.Wrap(err, "zlib: inflate")
	}
	return out, nil
}

// LZ4 decompresses exactly compressedLen bytes read from r into a buffer
// capped at uncompressedLen bytes, using LZ4's block format
// (decompress_safe semantics: the destination cap is never exceeded).
func LZ4(r io.Reader, compressedLen, uncompressedLen int) ([]byte, error) {
	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, errors.Wrap(err, "lz4: reading compressed region")
	}

	out := make([]byte, uncompressedLen)
	n, err := lz4.UncompressBlock(compressed, out)
	if err != nil {
		return nil, errors.Wrap(err, "lz4: decompress")
	}
	if n != uncompressedLen {
		return nil, errors.Errorf("lz4: expected %d uncompressed bytes, got %d", uncompressedLen, n)
	}
	return out, nil
}

// Format identifies the compressionFormat field read from the savegame:
// 1 selects Zlib, 2 selects LZ4. Any other value means "leave the stream
// alone" — callers should treat that as a no-op rather than an error at
// detection time.
type Format uint16

const (
	FormatNone Format = 0
	FormatZlib Format = 1
	FormatLZ4  Format = 2
)

// Decompress dispatches to the adapter matching format. handled is false
// for any format value other than zlib/LZ4, meaning the caller should leave
// the stream alone rather than treat it as an error.
func Decompress(format Format, r io.Reader, compressedLen, uncompressedLen int) (out []byte, handled bool, err error) {
	switch format {
	case FormatZlib:
		out, err = Zlib(r, compressedLen, uncompressedLen)
		return out, true, err
	case FormatLZ4:
		out, err = LZ4(r, compressedLen, uncompressedLen)
		return out, true, err
	default:
		return nil, false, nil
	}
}
