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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/padbridge/test"
	"github.com/jetsetilly/padbridge/version"
)

func TestVersionMode(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, tw), exitOK)
	test.ExpectEquality(t, tw.String(), version.String()+"\n")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "HEADLESS"))
}

func TestBadArguments(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, tw), exitParse)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"inject", "extra"}, tw), exitMode)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "too many arguments"))
}

func TestHeadlessMode(t *testing.T) {
	// resources are created in the current directory
	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".padbridge", 0o700))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"headless", "-fps", "100", "-duration", "1"}, tw), exitOK)

	// a profile that does not exist is an error
	tw.Clear()
	missing := filepath.Join(dir, "missing.toml")
	test.ExpectEquality(t, launch([]string{"headless", "-profile", missing, "-duration", "1"}, tw), exitMode)
}
