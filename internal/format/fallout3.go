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
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/imaging"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/model"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/reader"
)

// fieldMarker is the byte that terminates every field once has_field_markers
// is active.
const fieldMarker = 0x7C

// newVegasDisambiguationCount is the byte count (terminator included) that
// identifies a New Vegas save's extra 4-byte field ahead of the delimiter
// probe; on that count the cursor rewinds so the field is re-read as part
// of the normal structured fields. Any other count is a plain Fallout 3
// save and the probed bytes stay consumed.
const newVegasDisambiguationCount = 5

// ParseFallout3 implements the FO3SAVEGAME layout shared by Fallout 3 and
// New Vegas, including the New Vegas field-size disambiguation probe. r
// must be freshly positioned right after the magic string.
func ParseFallout3(r *reader.Reader, quick bool) (*model.Summary, error) {
	r.BzString = false
	r.HasFieldMarkers = false

	if err := r.SkipBytes(4); err != nil { // header size
		return nil, err
	}
	if _, err := r.ReadU32(); err != nil { // version, always 0x30
		return nil, err
	}
	if err := r.SkipBytes(1); err != nil { // delimiter
		return nil, err
	}

	if err := probeDisambiguation(r); err != nil {
		return nil, err
	}
	r.HasFieldMarkers = true

	width, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := r.ReadU32()
	if err != nil {
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
	if _, err := r.ReadString(); err != nil { // discarded
		return nil, err
	}
	levelRaw, err := r.ReadI32()
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

	var pixels []byte
	if quick {
		err = imaging.Skip(r, width, height, false)
	} else {
		pixels, err = imaging.Decode(r, width, height, false)
	}
	if err != nil {
		return nil, err
	}

	if err := r.SkipBytes(5); err != nil { // unknown byte + plugin data size
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
		Plugins:          plugins,
		ScreenshotWidth:  reportedWidth,
		ScreenshotHeight: reportedHeight,
		Screenshot:       pixels,
	}, nil
}

// probeDisambiguation reads bytes one at a time from the current offset
// until it finds the field marker, counting the terminator. A count of
// newVegasDisambiguationCount means this save has New Vegas's extra 4-byte
// field here, and the probe rewinds to the saved offset so that field is
// re-read as part of the normal structured fields that follow (spec
// §4.6.3); any other count (plain Fallout 3) leaves the probed bytes
// consumed and continues from here.
func probeDisambiguation(r *reader.Reader) error {
	start := r.Tell()
	count := 0
	for {
		b, err := r.ReadU8()
		if err != nil {
			return err
		}
		count++
		if b == fieldMarker {
			break
		}
		if count > newVegasDisambiguationCount {
			return errs.NewDataInvalid(start, "fallout 3/new vegas disambiguation probe ran past expected bound")
		}
	}
	if count == newVegasDisambiguationCount {
		return r.SeekTo(start)
	}
	return nil
}
