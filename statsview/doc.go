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

// Package statsview is an optional package that is built only when the
// statsview build tag is present.
//
// It provides a HTTP server running locally offering runtime statistics, using
// "github.com/go-echarts/statsview". After launch the statistics are viewable
// at:
//
//	localhost:12500/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12500/debug/pprof/
//
// Without the build tag, Available() returns false and Launch() does nothing.
package statsview
