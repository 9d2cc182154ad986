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

package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/bytesource"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/textenc"
)

func newTestReader(data []byte) *Reader {
	return New(bytesource.NewMemorySource(data), textenc.UTF8OrLatin1)
}

func TestReadStringWstring(t *testing.T) {
	// u16 length prefix, no terminator, no marker byte.
	data := []byte{5, 0, 'H', 'e', 'l', 'l', 'o'}
	r := newTestReader(data)
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)
	assert.Equal(t, int64(len(data)), r.Tell())
}

func TestReadStringBzstring(t *testing.T) {
	// u8 length prefix including the trailing NUL, which is stripped.
	data := []byte{4, 'H', 'i', '!', 0}
	r := newTestReader(data)
	r.BzString = true
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "Hi!", s)
}

func TestReadStringEmpty(t *testing.T) {
	data := []byte{0, 0}
	r := newTestReader(data)
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, int64(2), r.Tell())
}

func TestReadStringWithFieldMarker(t *testing.T) {
	data := []byte{3, 0, 'F', 'o', 'o', '|'}
	r := newTestReader(data)
	r.HasFieldMarkers = true
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "Foo", s)
	assert.Equal(t, int64(len(data)), r.Tell())
}

func TestReadStringMissingFieldMarker(t *testing.T) {
	data := []byte{3, 0, 'F', 'o', 'o', 'X'}
	r := newTestReader(data)
	r.HasFieldMarkers = true
	_, err := r.ReadString()
	require.Error(t, err)
	dataErr, ok := err.(*errs.DataInvalidError)
	require.True(t, ok, "expected *errs.DataInvalidError, got %T", err)
	assert.Equal(t, int64(5), dataErr.Offset)
}

func TestReadPluginNameTooLong(t *testing.T) {
	data := []byte{0x01, 0x01} // u16 length = 257, over MaxPluginName
	r := newTestReader(data)
	_, err := r.ReadPluginName()
	require.Error(t, err)
	_, ok := err.(*errs.DataInvalidError)
	assert.True(t, ok, "expected *errs.DataInvalidError, got %T", err)
}

func TestReadTruncation(t *testing.T) {
	r := newTestReader([]byte{1, 2})
	_, err := r.ReadU32()
	require.Error(t, err)
	truncErr, ok := err.(*errs.TruncationError)
	require.True(t, ok, "expected *errs.TruncationError, got %T", err)
	assert.Equal(t, 4, truncErr.N)
}

func TestHeaderMatchAndMismatch(t *testing.T) {
	r := newTestReader([]byte("TES4SAVEGAME"))
	ok, err := r.Header("TES4SAVEGAME")
	require.NoError(t, err)
	assert.True(t, ok)

	r2 := newTestReader([]byte("TESV_SAVEGAME"))
	ok, err = r2.Header("TES4SAVEGAME")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScalarReads(t *testing.T) {
	r := newTestReader([]byte{
		0x2A,                   // u8 = 42
		0x34, 0x12,             // u16 = 0x1234
		0x78, 0x56, 0x34, 0x12, // u32 = 0x12345678
	})
	u8, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), u8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)
}

func TestSkipBytesPastEndFails(t *testing.T) {
	r := newTestReader([]byte{1, 2, 3})
	err := r.SkipBytes(10)
	require.Error(t, err)
	_, ok := err.(*errs.TruncationError)
	assert.True(t, ok, "expected *errs.TruncationError, got %T", err)
}

func TestSeekTo(t *testing.T) {
	r := newTestReader([]byte{1, 2, 3, 4, 5})
	_, err := r.ReadU32()
	require.NoError(t, err)
	require.NoError(t, r.SeekTo(1))
	assert.Equal(t, int64(1), r.Tell())
	b, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), b)
}
