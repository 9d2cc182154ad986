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

// Package format implements the magic-string dispatcher and the four
// per-game savegame parsers it routes to. Each parser drives a
// reader.Reader configured with that format's string/marker conventions
// and produces a model.Summary.
package format

import (
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/reader"
)

// Kind identifies which of the four supported games a stream belongs to.
type Kind int

const (
	Unknown Kind = iota
	Oblivion
	Skyrim
	Fallout3
	Fallout4
)

type magicEntry struct {
	magic string
	kind  Kind
}

// magics is probed in this fixed order; the first match wins.
var magics = []magicEntry{
	{"TES4SAVEGAME", Oblivion},
	{"TESV_SAVEGAME", Skyrim},
	{"FO3SAVEGAME", Fallout3},
	{"FO4_SAVEGAME", Fallout4},
}

// Detect probes r's active source for each known magic string in turn,
// leaving the cursor positioned right after the matching magic (every
// per-format parser's offsets are relative to that point). No match
// returns an InvalidHeaderError.
func Detect(r *reader.Reader) (Kind, error) {
	for _, m := range magics {
		ok, err := r.Header(m.magic)
		if err != nil {
			return Unknown, err
		}
		if ok {
			return m.kind, nil
		}
	}
	return Unknown, &errs.InvalidHeaderError{}
}
