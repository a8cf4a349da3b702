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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. getBasePath() should be used rather than
// this value directly.
const baseResourcePath = ".padbridge"

// ResourcePath returns the resource string prepended with the base resource
// path. The first argument is a directory below the base path and can be
// empty. The second argument is the name of the resource and can also be
// empty, in which case the path returned is the path of the directory.
//
// The directory is created if necessary. The resource itself is not created.
func ResourcePath(subPth string, file string) (string, error) {
	pth := filepath.Join(getBasePath(), subPth)

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

// getBasePath returns baseResourcePath if it exists in the current directory,
// otherwise it is the user's config directory with the leading period removed
// from baseResourcePath.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cnf, baseResourcePath[1:])
}
