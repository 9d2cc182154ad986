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

package bytesource

import (
	"github.com/pkg/errors"

	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/decompress"
)

// ioReaderSource adapts a Source to io.Reader so the decompress package (an
// io.Reader consumer) can read the compressed region straight off it.
type ioReaderSource struct {
	src Source
}

func (r ioReaderSource) Read(buf []byte) (int, error) {
	return r.src.Read(buf)
}

// NewComposition consumes compressedLen bytes from inner at the inner
// source's current position, decompresses them with format into a buffer
// of uncompressedLen bytes, and returns a Source over that buffer. inner is
// not retained past construction. For a format other than zlib or LZ4 it
// reads nothing and returns inner itself.
func NewComposition(inner Source, format decompress.Format, compressedLen, uncompressedLen int) (Source, error) {
	out, handled, err := decompress.Decompress(format, ioReaderSource{inner}, compressedLen, uncompressedLen)
	if err != nil {
		return nil, errors.Wrap(err, "bytesource: decompression failed")
	}
	if !handled {
		// Unknown compression format: spec says leave the stream alone.
		return inner, nil
	}
	return NewMemorySource(out), nil
}
