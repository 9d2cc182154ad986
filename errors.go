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

package savegame

import "github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"

// IOError is returned when the savegame file itself could not be opened at
// the OS level. It carries enough of the originating syscall to
// let a caller surface a familiar "file not found" / "permission denied"
// style message.
type IOError = errs.IOError

// InvalidHeaderError means the file's magic string did not match any of
// the four known formats.
type InvalidHeaderError = errs.InvalidHeaderError

// DataInvalidError is a semantic inconsistency found mid-parse: an
// out-of-range dimension, a missing field marker, an over-long plugin
// name, a decompression failure. Offset is the byte position in the
// active stream at which the problem was detected.
type DataInvalidError = errs.DataInvalidError

// TruncationError means a read, skip or seek ran past the end of the
// active stream. The message format matches the tool this library
// reimplements, so downstream callers that pattern-match on it keep
// working.
type TruncationError = errs.TruncationError
