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

// Package imaging decodes the raw, headerless pixel dumps embedded in
// savegame screenshots: either 3-byte RGB or 4-byte RGBA rows, always
// expanded to RGBA8 on output.
package imaging

import (
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/reader"
)

// Decode reads width*height pixels of declared bit depth (4 bytes/pixel if
// alpha, else 3) from r and returns them as RGBA8, expanding RGB input by
// appending an opaque alpha byte to each pixel. width and height must each
// be below reader.MaxDimension; violating that is reported as a
// DataInvalidError at the reader's current offset rather than allocating
// an attacker-controlled buffer.
func Decode(r *reader.Reader, width, height uint32, alpha bool) ([]byte, error) {
	if !dimensionsValid(width, height) {
		return nil, errs.NewDataInvalid(r.Tell(), "screenshot dimensions out of range")
	}
	return decodePixels(r, width, height, alpha)
}

// DecodeEmbedded reads a u32 width then a u32 height from r before decoding
// the pixel buffer, matching Oblivion/Skyrim-LE/Fallout-4's layout where the
// screenshot's dimensions are not known until this point in the stream. The
// out-of-range error, if any, is tagged with the offset of the width field
// itself, not the position after reading both fields.
func DecodeEmbedded(r *reader.Reader, alpha bool) (width, height uint32, data []byte, err error) {
	start := r.Tell()
	width, height, err = readDimensions(r)
	if err != nil {
		return 0, 0, nil, err
	}
	if !dimensionsValid(width, height) {
		return 0, 0, nil, errs.NewDataInvalid(start, "screenshot dimensions out of range")
	}
	data, err = decodePixels(r, width, height, alpha)
	if err != nil {
		return 0, 0, nil, err
	}
	return width, height, data, nil
}

// Skip advances r past width*height pixels of declared bit depth without
// allocating or decoding them, used in quick mode once the dimensions are
// already known to the caller.
func Skip(r *reader.Reader, width, height uint32, alpha bool) error {
	if !dimensionsValid(width, height) {
		return errs.NewDataInvalid(r.Tell(), "screenshot dimensions out of range")
	}
	return skipPixels(r, width, height, alpha)
}

// SkipEmbedded reads the width/height pair r carries inline, then skips the
// pixel buffer without decoding it — the quick-mode counterpart to
// DecodeEmbedded. Dimensions are still returned, though the format parsers
// report width/height as 0 in a quick-mode summary. The offset rule
// matches DecodeEmbedded: an out-of-range error is tagged at the width
// field, not after both fields have been read.
func SkipEmbedded(r *reader.Reader, alpha bool) (width, height uint32, err error) {
	start := r.Tell()
	width, height, err = readDimensions(r)
	if err != nil {
		return 0, 0, err
	}
	if !dimensionsValid(width, height) {
		return 0, 0, errs.NewDataInvalid(start, "screenshot dimensions out of range")
	}
	if err := skipPixels(r, width, height, alpha); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func readDimensions(r *reader.Reader) (uint32, uint32, error) {
	width, err := r.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	height, err := r.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func dimensionsValid(width, height uint32) bool {
	return width < reader.MaxDimension && height < reader.MaxDimension
}

func decodePixels(r *reader.Reader, width, height uint32, alpha bool) ([]byte, error) {
	bpp := bytesPerPixel(alpha)
	pixelCount := int(width) * int(height)
	raw := make([]byte, pixelCount*bpp)
	// The screenshot is one bulk blob, not a sequence of individually
	// marked fields, so it is read with no trailing marker check even when
	// field markers are active for the rest of the record.
	if err := r.ReadBulk(raw); err != nil {
		return nil, err
	}
	if alpha {
		return raw, nil
	}

	out := make([]byte, pixelCount*4)
	for i := 0; i < pixelCount; i++ {
		copy(out[i*4:i*4+3], raw[i*3:i*3+3])
		out[i*4+3] = 0xFF
	}
	return out, nil
}

func skipPixels(r *reader.Reader, width, height uint32, alpha bool) error {
	n := int(width) * int(height) * bytesPerPixel(alpha)
	return r.SkipBytes(n)
}

func bytesPerPixel(alpha bool) int {
	if alpha {
		return 4
	}
	return 3
}
