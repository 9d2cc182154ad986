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

// Package textenc resolves the codepage a savegame's strings were written
// in, and decodes raw bytes read off the wire into UTF-8. Two independent
// decisions feed into this: a filename heuristic that picks Cyrillic for
// Russian-language save names, and the per-string decode policy that
// heuristic selects for the whole parse (UTF-8-or-Latin-1, or forced
// Cyrillic).
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Codepage is the decode policy selected for a parse.
type Codepage int

const (
	// UTF8OrLatin1 tries strict UTF-8 first and falls back to CP850 on any
	// invalid byte sequence. This is the default for all four formats.
	UTF8OrLatin1 Codepage = iota
	// Cyrillic forces Windows-1251 decoding, selected when the save's
	// filename stem is majority Cyrillic.
	Cyrillic
)

// DetermineEncoding picks a save's string codepage from its filename: take
// the basename without its last 4 characters (the extension), drop digits,
// '-', '.' and ' ', and if what's left is non-empty and more than half its
// runes fall in U+0400..U+052F, select Cyrillic.
func DetermineEncoding(path string) Codepage {
	base := path
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		base = path[idx+1:]
	}
	stem := trimLastN(base, 4)

	var filtered []rune
	for _, r := range stem {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' || r == ' ' {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return UTF8OrLatin1
	}

	cyrillicCount := 0
	for _, r := range filtered {
		if r >= 0x0400 && r <= 0x052F {
			cyrillicCount++
		}
	}
	if float64(cyrillicCount)/float64(len(filtered)) > 0.5 {
		return Cyrillic
	}
	return UTF8OrLatin1
}

// trimLastN drops the last n code points from s without splitting a
// multi-byte rune, matching the "strip the last 4 characters as extension"
// rule on a UTF-8-decoded stem.
func trimLastN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return ""
	}
	return string(runes[:len(runes)-n])
}

// Decode turns raw into a UTF-8 string per the given codepage policy. An
// empty input decodes to an empty string without touching any codec.
func Decode(cp Codepage, raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	switch cp {
	case Cyrillic:
		return decodeCharmap(charmap.Windows1251, raw)
	default:
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		return decodeCharmap(charmap.CodePage850, raw)
	}
}

func decodeCharmap(enc *charmap.Charmap, raw []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
