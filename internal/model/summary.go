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

// Package model holds the game-agnostic savegame summary that every
// per-format parser produces, independent of the public package so that
// internal/format can construct one without importing the top-level
// package (which imports internal/format).
package model

// Summary is the single output entity of a parse: a game-agnostic view of
// a savegame's character, location, playtime, plugin list and optional
// screenshot.
type Summary struct {
	// FileName is the original path supplied by the caller, unexamined.
	FileName string
	// CharacterName is the player character's name, possibly empty.
	CharacterName string
	// CharacterLevel is the character's level at save time.
	CharacterLevel uint16
	// Location is the in-game place name recorded at save time.
	Location string
	// SaveNumber is the save slot or sequence identifier.
	SaveNumber uint32
	// PlayTime is the engine's in-game playtime string: a synthesized
	// "D days, H hours" for Oblivion, or the engine's own ASCII rendering
	// for Skyrim/FO3/FO4.
	PlayTime string
	// CreationTime is the real-world save creation time, in seconds since
	// the Unix epoch, truncated to 32 bits.
	CreationTime uint32
	// Plugins is the ordered, duplicate-preserving list of active plugin
	// filenames.
	Plugins []string
	// ScreenshotWidth and ScreenshotHeight are both 0 in quick mode.
	ScreenshotWidth  uint32
	ScreenshotHeight uint32
	// Screenshot is width*height*4 bytes of RGBA8, or empty in quick mode.
	Screenshot []byte
}

// GetScreenshot copies min(len(dest), len(s.Screenshot)) bytes of decoded
// RGBA8 pixel data into dest and returns the number of bytes copied.
func (s *Summary) GetScreenshot(dest []byte) int {
	return copy(dest, s.Screenshot)
}
