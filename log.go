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

import "github.com/sirupsen/logrus"

// log is the package-wide logger. It is silent by default (logrus's
// default level is Info, and every call site here logs at Debug) so that
// embedding this library never produces unsolicited output; callers that
// want parse tracing can raise logrus's level themselves, since this is a
// shared *logrus.Logger instance rather than a private one.
var log = logrus.StandardLogger().WithField("component", "gamebryo-savegames")
