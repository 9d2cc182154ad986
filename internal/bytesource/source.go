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

// Package bytesource provides the seekable byte-source abstraction that the
// framed reader reads through. A parse starts on a file-backed source and
// may, mid-stream, have that source replaced by a Composition that
// transparently decompresses the remainder of the record into memory.
package bytesource

import (
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"

	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/errs"
)

// Whence mirrors io.Seeker's constants so callers don't need to import io
// just to call Seek.
const (
	WhenceStart   = io.SeekStart
	WhenceCurrent = io.SeekCurrent
	WhenceEnd     = io.SeekEnd
)

// Source is a seekable, readable byte stream with a sticky end-of-stream
// flag that Clear resets. After a failing Read, the cursor must still be
// addressable: Clear followed by Seek(0, end) reports the stream's length.
type Source interface {
	Read(buf []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Tell() (int64, error)
	Clear()
}

// FileSource is a Source backed by an *os.File opened in binary mode.
type FileSource struct {
	f     *os.File
	path  string
	atEOF bool
}

// OpenFile opens path for reading and wraps it as a Source. On failure the
// error is an *errs.IOError carrying the syscall name, path and OS errno.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errs.IOError{Syscall: "open", Path: path, Errno: errno(err)}
	}
	return &FileSource{f: f, path: path}, nil
}

func errno(err error) int {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		if errnoErr, ok := pathErr.Err.(syscall.Errno); ok {
			return int(errnoErr)
		}
	}
	return 0
}

func (s *FileSource) Read(buf []byte) (int, error) {
	if s.atEOF {
		return 0, io.EOF
	}
	n, err := io.ReadFull(s.f, buf)
	if err != nil {
		s.atEOF = true
	}
	return n, err
}

func (s *FileSource) Seek(offset int64, whence int) (int64, error) {
	return s.f.Seek(offset, whence)
}

func (s *FileSource) Tell() (int64, error) {
	return s.f.Seek(0, io.SeekCurrent)
}

func (s *FileSource) Clear() {
	s.atEOF = false
}

// Close releases the underlying file handle.
func (s *FileSource) Close() error {
	return s.f.Close()
}

// Path returns the file path this source was opened from.
func (s *FileSource) Path() string {
	return s.path
}

// MemorySource is a Source backed by an owned, contiguous in-memory buffer,
// typically the output of a decompression adapter.
type MemorySource struct {
	buf    []byte
	cursor int64
	atEOF  bool
}

// NewMemorySource wraps buf (taken by reference, not copied) as a Source.
func NewMemorySource(buf []byte) *MemorySource {
	return &MemorySource{buf: buf}
}

func (s *MemorySource) Read(buf []byte) (int, error) {
	if s.atEOF {
		return 0, io.EOF
	}
	if s.cursor >= int64(len(s.buf)) {
		s.atEOF = true
		return 0, io.EOF
	}
	n := copy(buf, s.buf[s.cursor:])
	s.cursor += int64(n)
	if n < len(buf) {
		s.atEOF = true
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func (s *MemorySource) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.cursor
	case io.SeekEnd:
		base = int64(len(s.buf))
	default:
		return 0, errors.Errorf("bytesource: invalid whence %d", whence)
	}
	pos := base + offset
	if pos < 0 {
		return 0, errors.Errorf("bytesource: negative seek position %d", pos)
	}
	s.cursor = pos
	return pos, nil
}

func (s *MemorySource) Tell() (int64, error) {
	return s.cursor, nil
}

func (s *MemorySource) Clear() {
	s.atEOF = false
}
