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

package format

import (
	"bytes"
	"encoding/binary"
	"math"
)

// fixtureBuilder assembles a little-endian byte stream by hand, matching
// each format's on-disk layout field by field.
type fixtureBuilder struct {
	buf bytes.Buffer
}

func (b *fixtureBuilder) magic(s string) *fixtureBuilder {
	b.buf.WriteString(s)
	return b
}

func (b *fixtureBuilder) u8(v uint8) *fixtureBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *fixtureBuilder) u16(v uint16) *fixtureBuilder {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	b.buf.Write(buf[:])
	return b
}

func (b *fixtureBuilder) u32(v uint32) *fixtureBuilder {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.buf.Write(buf[:])
	return b
}

func (b *fixtureBuilder) u64(v uint64) *fixtureBuilder {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	b.buf.Write(buf[:])
	return b
}

func (b *fixtureBuilder) i32(v int32) *fixtureBuilder {
	return b.u32(uint32(v))
}

func (b *fixtureBuilder) f32(v float32) *fixtureBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *fixtureBuilder) raw(bs []byte) *fixtureBuilder {
	b.buf.Write(bs)
	return b
}

func (b *fixtureBuilder) zeros(n int) *fixtureBuilder {
	b.buf.Write(make([]byte, n))
	return b
}

// wstring writes a u16-length-prefixed string with no terminator, the
// Skyrim/Fallout 3/Fallout 4 convention.
func (b *fixtureBuilder) wstring(s string) *fixtureBuilder {
	b.u16(uint16(len(s)))
	b.buf.WriteString(s)
	return b
}

// bzstring writes a u8-length-prefixed, NUL-terminated string, the
// Oblivion convention. The length includes the trailing NUL.
func (b *fixtureBuilder) bzstring(s string) *fixtureBuilder {
	b.u8(uint8(len(s) + 1))
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
	return b
}

// marker writes a single trailing '|' field terminator, used once
// has_field_markers is active (Fallout 3/New Vegas).
func (b *fixtureBuilder) marker() *fixtureBuilder {
	b.buf.WriteByte('|')
	return b
}

// winSystemTime writes the 16-byte {year,month,dow,day,hour,min,sec,msec}
// record.
func (b *fixtureBuilder) winSystemTime(year, month, dow, day, hour, min, sec, msec uint16) *fixtureBuilder {
	return b.u16(year).u16(month).u16(dow).u16(day).u16(hour).u16(min).u16(sec).u16(msec)
}

func (b *fixtureBuilder) bytes() []byte {
	return b.buf.Bytes()
}
