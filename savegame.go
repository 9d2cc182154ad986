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

// Package savegame parses savegame files produced by Oblivion, Skyrim
// (original and Special Edition), Fallout 3/New Vegas and Fallout 4, and
// extracts a game-agnostic Summary: character name, level, location, save
// slot, playtime, creation time, active plugin list, and an optional
// embedded screenshot decoded to RGBA8.
package savegame

import (
	"os"

	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/bytesource"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/format"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/reader"
	"github.com/Nexus-Mods/node-gamebryo-savegames/internal/textenc"
)

// Parse reads path and extracts its Summary. In quick mode, every field is
// still populated except the screenshot: pixel data is skipped rather than
// decoded and the screenshot width/height are reported as 0, but plugin
// lists and all other metadata are read in full.
func Parse(path string, quick bool) (*Summary, error) {
	src, err := bytesource.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	cp := textenc.DetermineEncoding(path)
	r := reader.New(src, cp)

	kind, err := format.Detect(r)
	if err != nil {
		return nil, err
	}

	var summary *Summary
	switch kind {
	case format.Oblivion:
		summary, err = format.ParseOblivion(r, quick)
	case format.Skyrim:
		summary, err = format.ParseSkyrim(r, quick)
	case format.Fallout3:
		summary, err = format.ParseFallout3(r, quick)
	case format.Fallout4:
		summary, err = format.ParseFallout4(r, quick)
	}
	if err != nil {
		return nil, err
	}

	summary.FileName = path
	applyCreationTimeFallback(summary, path)

	log.WithField("path", path).WithField("quick", quick).Debug("parsed savegame")
	return summary, nil
}

// ParseAsync runs Parse on a new goroutine and delivers the result to
// completion exactly once, from that goroutine. There is no cancellation:
// once started, a parse runs to completion or to an error.
func ParseAsync(path string, quick bool, completion func(error, *Summary)) {
	go func() {
		summary, err := Parse(path, quick)
		completion(err, summary)
	}()
}

// applyCreationTimeFallback falls back to the file's mtime if the embedded
// creation time came back zero. A stat failure is swallowed, leaving
// CreationTime at 0.
func applyCreationTimeFallback(summary *Summary, path string) {
	if summary.CreationTime != 0 {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	summary.CreationTime = uint32(info.ModTime().Unix())
}
