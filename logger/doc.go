// This file is part of Padbridge.
//
// Padbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padbridge.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Entries are added
// with a tag and a detail string, for example:
//
//	logger.Logf(logger.Allow, "listener", "bound to %s", addr)
//
// Identical consecutive entries are collapsed into a single entry with a
// repeat count. This keeps the log readable when a socket keeps returning
// the same error.
//
// The Permission argument allows the caller to decide whether logging is
// appropriate at the point of the call. The Allow value should be used when
// there is no reason to restrict logging.
//
// The central log is safe to use from any goroutine.
package logger
