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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and stop the test
// immediately. Use a Demand function when the remainder of the test makes no
// sense if the condition fails, for example when a listener could not be
// started.
//
// It is worth describing how success and failure values are interpreted
// because it is not obvious. A bool is a success if it is true. An error is a
// success if it is nil. An untyped nil is also considered a success. This is
// because of how errors usually work (nil to indicate no error).
//
// All functions accept optional tags which are prepended to the failure
// message. This is useful when the check is performed in a loop.
//
// The CompareWriter type implements the io.Writer interface and can be used
// to capture output, for example the output of the logger package.
package test
