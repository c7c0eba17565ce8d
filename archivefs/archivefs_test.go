// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/archivefs"
	"github.com/jetsetilly/gopher64/test"
)

// create the test directory:
//
//	testdir/
//		testarchive.zip
//			archivedir/
//				archivedir2/archivefile4
//				archivefile3
//			archivefile1
//			archivefile2
//		testfile
func makeTestDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testdir")
	test.DemandSuccess(t, os.Mkdir(dir, 0o700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o600))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, n := range []string{
		"archivefile1",
		"archivefile2",
		"archivedir/archivefile3",
		"archivedir/archivedir2/archivefile4",
	} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = fmt.Fprintf(w, "%s contents\n", filepath.Base(n))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := makeTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	var path string
	var entries []archivefs.Node
	var err error

	// non-existant file
	path = filepath.Join(dir, "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// entries in a directory. archives are listed with the directories
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[0].IsArchive)

	// a real file in directory
	path = filepath.Join(dir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// calling List() when path is set to a file type (ie not a direcotry) the
	// list returned should be of the containing directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")

	// a real archive
	path = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// directory in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivedir")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir2 archivefile3]")

	// file in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// non-existant file in a real archive
	err = afs.Set(filepath.Join(dir, "testarchive.zip", "foo"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, !afs.InArchive())
}

func TestArchivefsReadFile(t *testing.T) {
	dir := makeTestDir(t)

	d, err := archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivedir", "archivedir2", "archivefile4"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile4 contents\n")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")

	// directories cannot be read
	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip"))
	test.ExpectFailure(t, err)
}

func TestArchivefsOpen(t *testing.T) {
	dir := makeTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	test.DemandSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivefile1")))
	r, sz, err := afs.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 22)

	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")
}
