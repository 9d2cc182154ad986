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
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/imaging"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/model"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/reader"
)

// ParseOblivion implements the TES4SAVEGAME layout. r must be freshly
// positioned right after the magic string.
func ParseOblivion(r *reader.Reader, quick bool) (*model.Summary, error) {
	r.BzString = true
	r.HasFieldMarkers = false

	if err := r.SkipBytes(2); err != nil { // major, minor
		return nil, err
	}
	if err := r.SkipBytes(16); err != nil { // exe mtime WINSYSTEMTIME
		return nil, err
	}
	if err := r.SkipBytes(8); err != nil { // header version, header size
		return nil, err
	}

	saveNumber, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	characterName, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	characterLevel, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	location, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	gameDays, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	if err := r.SkipBytes(4); err != nil { // game ticks
		return nil, err
	}
	playTime := synthesizePlaytime(gameDays)

	creationTime, err := winSystemTimeToUnix(r)
	if err != nil {
		return nil, err
	}

	if err := r.SkipBytes(4); err != nil { // screenshot byte size, untrusted
		return nil, err
	}

	var width, height uint32
	var pixels []byte
	if quick {
		width, height, err = imaging.SkipEmbedded(r, false)
	} else {
		width, height, pixels, err = imaging.DecodeEmbedded(r, false)
	}
	if err != nil {
		return nil, err
	}

	plugins, err := readPluginCountU8List(r)
	if err != nil {
		return nil, err
	}

	reportedWidth, reportedHeight := reportedDimensions(width, height, quick)
	return &model.Summary{
		CharacterName:    characterName,
		CharacterLevel:   characterLevel,
		Location:         location,
		SaveNumber:       saveNumber,
		PlayTime:         playTime,
		CreationTime:     creationTime,
		Plugins:          plugins,
		ScreenshotWidth:  reportedWidth,
		ScreenshotHeight: reportedHeight,
		Screenshot:       pixels,
	}, nil
}
