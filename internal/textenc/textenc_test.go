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

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"
)

// TestDetermineEncoding checks that a majority-Cyrillic filename stem
// selects Cyrillic, and anything else falls back to UTF8OrLatin1.
func TestDetermineEncoding(t *testing.T) {
	cases := []struct {
		path string
		want Codepage
	}{
		{"Иван-01.ess", Cyrillic},
		{"Save 7.ess", UTF8OrLatin1},
		{"0123-456.ess", UTF8OrLatin1}, // empty after filtering digits/punctuation
		{"/home/user/saves/Иван-01.ess", Cyrillic},
		{`C:\Saves\Save 7.ess`, UTF8OrLatin1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetermineEncoding(c.path), "path=%q", c.path)
	}
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(UTF8OrLatin1, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestDecodeValidUTF8(t *testing.T) {
	s, err := Decode(UTF8OrLatin1, []byte("Whiterun"))
	require.NoError(t, err)
	assert.Equal(t, "Whiterun", s)
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// 0x8E is not valid standalone UTF-8; CP850 decodes it to an accented
	// Latin letter rather than failing.
	raw := []byte{0x8E}
	s, err := Decode(UTF8OrLatin1, raw)
	require.NoError(t, err)
	assert.NotEmpty(t, s)
}

func TestDecodeForcedCyrillic(t *testing.T) {
	enc := charmap.Windows1251
	raw, err := enc.NewEncoder().Bytes([]byte("Иван"))
	require.NoError(t, err)

	s, err := Decode(Cyrillic, raw)
	require.NoError(t, err)
	assert.Equal(t, "Иван", s)
}
