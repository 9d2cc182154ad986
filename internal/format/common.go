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
	"fmt"
	"math"
	"time"

	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/reader"
)

// filetimeEpochOffset is the number of seconds between the FILETIME epoch
// (1601-01-01T00:00:00Z) and the Unix epoch.
const filetimeEpochOffset = 11_644_473_600

// filetimeToUnix converts a FILETIME tick count (100ns ticks since
// 1601-01-01Z) to seconds since the Unix epoch, truncated to uint32. A
// result that would be negative (a FILETIME before 1970) clamps to 0
// rather than wrapping.
func filetimeToUnix(ticks uint64) uint32 {
	sec := int64(ticks/10_000_000) - filetimeEpochOffset
	if sec < 0 {
		return 0
	}
	return uint32(sec)
}

// readWinSystemTime reads the 16-byte WINSYSTEMTIME record (eight u16
// fields: year, month, dow, day, hour, min, sec, msec) and returns it as a
// broken-down local time, matching the engine's mktime-based recording:
// the local-time interpretation is preserved rather than reinterpreted as
// UTC.
func readWinSystemTime(r *reader.Reader) (time.Time, error) {
	fields := make([]uint16, 8)
	for i := range fields {
		v, err := r.ReadU16()
		if err != nil {
			return time.Time{}, err
		}
		fields[i] = v
	}
	year, month, _ /* dow */, day, hour, min, sec, msec := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6], fields[7]
	return time.Date(int(year), time.Month(month), int(day), int(hour), int(min), int(sec), int(msec)*int(time.Millisecond), time.Local), nil
}

// winSystemTimeToUnix derives creation_time from a WINSYSTEMTIME record,
// truncated to uint32.
func winSystemTimeToUnix(r *reader.Reader) (uint32, error) {
	t, err := readWinSystemTime(r)
	if err != nil {
		return 0, err
	}
	sec := t.Unix()
	if sec < 0 {
		return 0, nil
	}
	return uint32(sec), nil
}

// synthesizePlaytime builds Oblivion's "D days, H hours" string from a
// fractional day count, truncating both components.
func synthesizePlaytime(gameDays float32) string {
	days := math.Floor(float64(gameDays))
	hours := math.Trunc((float64(gameDays) - days) * 24)
	return fmt.Sprintf("%d days, %d hours", int64(days), int64(hours))
}

// reportedDimensions zeroes width/height for the returned Summary in quick
// mode: the navigation read still needs the real values to skip the right
// number of pixel bytes, but a quick parse reports no screenshot at all.
func reportedDimensions(width, height uint32, quick bool) (uint32, uint32) {
	if quick {
		return 0, 0
	}
	return width, height
}

// readPluginCountU8List reads a u8 plugin count followed by that many
// bounded plugin names under the reader's current string convention.
func readPluginCountU8List(r *reader.Reader) ([]string, error) {
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return readPluginNames(r, int(count))
}

// readPluginCountU16List reads a u16 plugin count followed by that many
// bounded plugin names under the reader's current string convention.
func readPluginCountU16List(r *reader.Reader) ([]string, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	return readPluginNames(r, int(count))
}

func readPluginNames(r *reader.Reader, count int) ([]string, error) {
	plugins := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name, err := r.ReadPluginName()
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, name)
	}
	return plugins, nil
}
