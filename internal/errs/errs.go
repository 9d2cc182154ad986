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

// Package errs defines the error kinds shared by the byte-source,
// framed-reader and format packages, so that a truncation or data-invalid
// error raised deep inside a per-format parser surfaces to the public API
// with its original shape intact (no internal package import is needed by
// callers: the top-level package type-aliases these).
package errs

import "fmt"

// IOError wraps an OS-level failure opening the savegame file.
type IOError struct {
	Syscall string
	Path    string
	Errno   int
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: errno %d", e.Syscall, e.Path, e.Errno)
}

// InvalidHeaderError means no known magic string matched.
type InvalidHeaderError struct{}

func (e *InvalidHeaderError) Error() string {
	return "invalid file header"
}

// DataInvalidError is a semantic inconsistency detected mid-parse, tagged
// with the byte offset at which it was found.
type DataInvalidError struct {
	Offset int64
	Msg    string
}

func (e *DataInvalidError) Error() string {
	return fmt.Sprintf("data invalid at offset %d: %s", e.Offset, e.Msg)
}

// TruncationError means a read, skip or seek ran past the end of the
// active stream. The message format is part of the public contract: tools
// built against the original library pattern-match on this exact shape.
type TruncationError struct {
	Offset int64
	N      int
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("unexpected end of file at %q (read of %q bytes)", fmt.Sprint(e.Offset), fmt.Sprint(e.N))
}

// NewTruncation builds a TruncationError for a read/skip of n bytes
// detected at offset.
func NewTruncation(offset int64, n int) error {
	return &TruncationError{Offset: offset, N: n}
}

// NewDataInvalid builds a DataInvalidError at the given offset.
func NewDataInvalid(offset int64, msg string) error {
	return &DataInvalidError{Offset: offset, Msg: msg}
}
