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

// Package reader implements the stateful, little-endian framed cursor that
// every per-format parser drives: typed scalar reads, the two savegame
// string conventions (length-prefixed wstring and NUL-terminated
// bzstring), an optional per-field '|' terminator, bounded skip, and the
// mid-stream compression swap.
package reader

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/bytesource"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/decompress"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/textenc"
)

// MaxPluginName and MaxDimension are hard caps on untrusted length fields,
// guarding against malicious or corrupt headers.
const (
	MaxPluginName = 256
	MaxDimension  = 2000
)

// Reader is the per-parse cursor. BzString, HasFieldMarkers and Codepage
// are plain owned state that each format's parser configures before (and,
// for FO3's disambiguation step, partway through) driving the read.
type Reader struct {
	src             bytesource.Source
	BzString        bool
	HasFieldMarkers bool
	Codepage        textenc.Codepage
}

// New wraps src as a Reader with the given default codepage and both mode
// flags off; each format's parser sets the flags it needs before reading.
func New(src bytesource.Source, cp textenc.Codepage) *Reader {
	return &Reader{src: src, Codepage: cp}
}

// Tell reports the current offset, used to tag errors with a position.
func (r *Reader) Tell() int64 {
	off, _ := r.src.Tell()
	return off
}

// SeekTo repositions the cursor to an absolute offset from the start of the
// active source, used by Fallout 3/New Vegas's disambiguation rewind.
func (r *Reader) SeekTo(offset int64) error {
	_, err := r.src.Seek(offset, bytesource.WhenceStart)
	return err
}

// Source returns the reader's current active byte source: the original
// source until a compression swap has happened, the decompressed one after.
func (r *Reader) Source() bytesource.Source {
	return r.src
}

// fail clears the sticky EOF flag and seeks to the stream's end before
// returning a TruncationError, leaving the cursor addressable: a clear
// followed by a seek to the end still reports the stream's length.
func (r *Reader) fail(n int) error {
	offset := r.Tell()
	r.src.Clear()
	_, _ = r.src.Seek(0, bytesource.WhenceEnd)
	return errs.NewTruncation(offset, n)
}

func (r *Reader) ioReader() io.Reader {
	return readerFunc(r.src.Read)
}

type readerFunc func(buf []byte) (int, error)

func (f readerFunc) Read(buf []byte) (int, error) { return f(buf) }

// ReadRaw reads exactly len(buf) bytes from the active source, then, if
// field markers are active, consumes and checks the trailing '|'. Used by
// the scalar reads below, each of which is its own individually-marked
// field.
func (r *Reader) ReadRaw(buf []byte) error {
	if err := r.readInto(buf); err != nil {
		return err
	}
	return r.marker()
}

// ReadBulk reads exactly len(buf) bytes from the active source with no
// trailing field-marker check, for a single multi-byte payload written as
// one bulk blob rather than one field per value — the screenshot pixel
// buffer is the only such payload in these formats.
func (r *Reader) ReadBulk(buf []byte) error {
	return r.readInto(buf)
}

func (r *Reader) readInto(buf []byte) error {
	if _, err := io.ReadFull(r.ioReader(), buf); err != nil {
		return r.fail(len(buf))
	}
	return nil
}

// readExact reads exactly n bytes with no marker handling, used for
// length prefixes and raw payloads that manage their own marker timing.
func (r *Reader) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.readInto(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// SkipBytes advances the cursor by n bytes without inspecting them,
// failing with a TruncationError if that runs past the end of the stream.
func (r *Reader) SkipBytes(n int) error {
	if n == 0 {
		return nil
	}
	cur := r.Tell()
	end, err := r.src.Seek(0, bytesource.WhenceEnd)
	if err == nil && cur+int64(n) > end {
		_, _ = r.src.Seek(cur, bytesource.WhenceStart)
		return r.fail(n)
	}
	if _, err := r.src.Seek(cur+int64(n), bytesource.WhenceStart); err != nil {
		return r.fail(n)
	}
	return nil
}

func (r *Reader) marker() error {
	if !r.HasFieldMarkers {
		return nil
	}
	b, err := r.readExact(1)
	if err != nil {
		return err
	}
	if b[0] != '|' {
		return errs.NewDataInvalid(r.Tell()-1, "missing field marker")
	}
	return nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	var b [1]byte
	if err := r.ReadRaw(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	var b [2]byte
	if err := r.ReadRaw(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadU32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	var b [4]byte
	if err := r.ReadRaw(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadU64 reads a little-endian unsigned 64-bit integer.
func (r *Reader) ReadU64() (uint64, error) {
	var b [8]byte
	if err := r.ReadRaw(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadI32 reads a little-endian signed 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadF32 reads a little-endian IEEE-754 32-bit float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadString reads one string under the reader's current BzString/
// HasFieldMarkers/Codepage configuration: a u8-length NUL-terminated
// bzstring, or a u16-length wstring. A zero-length string skips both the
// payload and the field marker, matching source behavior.
func (r *Reader) ReadString() (string, error) {
	return r.readStringBounded(0)
}

// ReadPluginName is ReadString with the MaxPluginName bound applied to the
// length prefix, used for every format's plugin list entries (the one kind
// of string this format family bounds).
func (r *Reader) ReadPluginName() (string, error) {
	return r.readStringBounded(MaxPluginName)
}

// readStringBounded implements the shared wstring/bzstring decode path. A
// bound of 0 means unbounded; any positive bound rejects an over-long
// length prefix as a DataInvalidError before it is used to size a read.
func (r *Reader) readStringBounded(bound int) (string, error) {
	var length int
	if r.BzString {
		b, err := r.readExact(1)
		if err != nil {
			return "", err
		}
		length = int(b[0])
	} else {
		b, err := r.readExact(2)
		if err != nil {
			return "", err
		}
		length = int(binary.LittleEndian.Uint16(b))
	}
	if bound > 0 && length > bound {
		return "", errs.NewDataInvalid(r.Tell(), "plugin name too long")
	}
	if length == 0 {
		return "", nil
	}

	payload, err := r.readExact(length)
	if err != nil {
		return "", err
	}
	if r.BzString {
		payload = payload[:len(payload)-1] // drop the trailing NUL
	}
	if err := r.marker(); err != nil {
		return "", err
	}
	return textenc.Decode(r.Codepage, payload)
}

// Header seeks to the start of the stream, reads len(magic) bytes and
// reports whether they match it exactly.
func (r *Reader) Header(magic string) (bool, error) {
	if _, err := r.src.Seek(0, bytesource.WhenceStart); err != nil {
		return false, err
	}
	buf := make([]byte, len(magic))
	if _, err := io.ReadFull(r.ioReader(), buf); err != nil {
		return false, nil
	}
	return string(buf) == magic, nil
}

// SetCompression installs a decompression adapter over the reader's
// current source. format 1 selects zlib, 2 selects LZ4; any other value
// leaves the stream unchanged, so later reads go on over the still-compressed
// bytes with no check that they make sense.
func (r *Reader) SetCompression(format uint16, compressedLen, uncompressedLen uint32) error {
	src, err := bytesource.NewComposition(r.src, decompress.Format(format), int(compressedLen), int(uncompressedLen))
	if err != nil {
		return errs.NewDataInvalid(r.Tell(), err.Error())
	}
	r.src = src
	return nil
}
