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

// fallout4FormVersionLightPlugins is the form_version floor at or above
// which a Fallout 4 save carries a separate light-plugin list.
const fallout4FormVersionLightPlugins = 0x44

// ParseFallout4 implements the FO4_SAVEGAME layout. r must be freshly
// positioned right after the magic string.
func ParseFallout4(r *reader.Reader, quick bool) (*model.Summary, error) {
	r.BzString = false
	r.HasFieldMarkers = false

	if err := r.SkipBytes(8); err != nil { // header size, header version
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
	levelRaw, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	characterLevel := uint16(levelRaw)
	location, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	playTime, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadString(); err != nil { // race, discarded
		return nil, err
	}
	if err := r.SkipBytes(2 + 4 + 4); err != nil { // gender, 2x experience f32
		return nil, err
	}

	ticks, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	creationTime := filetimeToUnix(ticks)

	var width, height uint32
	var pixels []byte
	if quick {
		width, height, err = imaging.SkipEmbedded(r, true)
	} else {
		width, height, pixels, err = imaging.DecodeEmbedded(r, true)
	}
	if err != nil {
		return nil, err
	}

	formVersion, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadString(); err != nil { // game_version, discarded
		return nil, err
	}
	if err := r.SkipBytes(4); err != nil { // plugin-info size
		return nil, err
	}
	plugins, err := readPluginCountU8List(r)
	if err != nil {
		return nil, err
	}
	if formVersion >= fallout4FormVersionLightPlugins {
		lightPlugins, err := readPluginCountU16List(r)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, lightPlugins...)
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
