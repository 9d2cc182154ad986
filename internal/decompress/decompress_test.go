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

package decompress

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZlibRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, thirty two times")
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, err := Zlib(bytes.NewReader(compressed.Bytes()), compressed.Len(), len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestZlibTruncatedInput(t *testing.T) {
	_, err := Zlib(bytes.NewReader([]byte{1, 2}), 10, 100)
	assert.Error(t, err)
}

func TestLZ4RoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, thirty two times")
	compressed := make([]byte, len(payload)*2)
	n, err := lz4.CompressBlock(payload, compressed, nil)
	require.NoError(t, err)
	require.NotZero(t, n)
	compressed = compressed[:n]

	out, err := LZ4(bytes.NewReader(compressed), len(compressed), len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestDecompressDispatch(t *testing.T) {
	payload := []byte("hello savegame")
	var zlibCompressed bytes.Buffer
	zw := zlib.NewWriter(&zlibCompressed)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, handled, err := Decompress(FormatZlib, bytes.NewReader(zlibCompressed.Bytes()), zlibCompressed.Len(), len(payload))
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, payload, out)

	out, handled, err = Decompress(FormatNone, bytes.NewReader([]byte{1, 2, 3}), 3, 3)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Nil(t, out)
}
