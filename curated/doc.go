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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that produce errors which the caller may want to
// react to export the pattern as a const string. For example, the listener
// package exports the BindFailure pattern:
//
//	err := l.Start()
//	if curated.Is(err, listener.BindFailure) {
//		// the port is unavailable
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is useful when the error has been wrapped by a caller
// further up the stack.
//
// The Error() implementation normalises the error chain. Specifically, it
// removes adjacent duplicate parts of the message. We think of chains as
// being composed of parts separated by the sub-string ": ". For example:
//
//	bridge: listener: listener: bind :5000: address already in use
//
// is normalised to:
//
//	bridge: listener: bind :5000: address already in use
//
// Curated errors also implement Unwrap() so that the standard library errors.Is()
// and errors.As() functions can see through to any non-curated error that was
// given as a placeholder value.
package curated
