// This file is part of mpltweaker.
//
// mpltweaker is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mpltweaker is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mpltweaker.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mpltweaker/modalflag"
	"github.com/jetsetilly/mpltweaker/test"
)

// runs the test in a temporary directory that contains a resource directory.
// the working directory is restored when the test completes
func tempWorkingDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".mpltweaker"), 0o700))

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

// prepare modes as launch() does, with the mode already selected
func newModes(t *testing.T, output *bytes.Buffer, args ...string) *modalflag.Modes {
	t.Helper()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "EXPORT", "PREVIEW", "STYLES", "DUMP", "PERFORMANCE", "VERSION")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	return md
}

func TestStyles(t *testing.T) {
	tempWorkingDir(t)

	var out bytes.Buffer
	md := newModes(t, &out, "STYLES")
	test.ExpectEquality(t, md.Mode(), "STYLES")
	test.ExpectSuccess(t, styles(md, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandSuccess(t, len(lines) > 1)
	test.ExpectEquality(t, lines[0], "default")
	test.ExpectSuccess(t, strings.Contains(out.String(), "\nggplot\n"))
}

func TestExportStdout(t *testing.T) {
	tempWorkingDir(t)

	var out bytes.Buffer
	md := newModes(t, &out, "EXPORT")
	test.ExpectSuccess(t, export(md, &out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "\nfigure.dpi: 100.0000\n"))

	out.Reset()
	md = newModes(t, &out, "EXPORT", "-style", "dark_background")
	test.ExpectSuccess(t, export(md, &out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "axes.facecolor"))
}

func TestExportFile(t *testing.T) {
	dir := tempWorkingDir(t)

	var out bytes.Buffer
	md := newModes(t, &out, "EXPORT", "-file",
		"-prefs", "export.downloaddir::"+dir+"; export.stylename::testing")
	test.ExpectSuccess(t, export(md, &out))

	pth := filepath.Join(dir, "testing.mplstyle")
	test.ExpectSuccess(t, strings.Contains(out.String(), pth))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "figure.dpi"))

	// the override was used so nothing is reported as unused
	test.ExpectSuccess(t, !strings.Contains(out.String(), "unused prefs"))
}

func TestUnknownStyle(t *testing.T) {
	tempWorkingDir(t)

	var out bytes.Buffer
	md := newModes(t, &out, "PREVIEW", "-style", "no such style")
	test.ExpectFailure(t, render(md, &out))
}

func TestPreview(t *testing.T) {
	dir := tempWorkingDir(t)
	pth := filepath.Join(dir, "fig.png")

	var out bytes.Buffer
	md := newModes(t, &out, "PREVIEW", "-width", "200", "-height", "150", pth)
	test.ExpectSuccess(t, render(md, &out))

	fi, err := os.Stat(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "figure written to "+pth))
}

func TestDump(t *testing.T) {
	tempWorkingDir(t)

	var out bytes.Buffer
	md := newModes(t, &out, "DUMP", "-section", "lines")
	test.ExpectSuccess(t, dump(md, &out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "digraph"))

	out.Reset()
	md = newModes(t, &out, "DUMP", "-section", "no such section")
	test.ExpectFailure(t, dump(md, &out))
}

func TestPerformance(t *testing.T) {
	tempWorkingDir(t)

	var out bytes.Buffer
	md := newModes(t, &out, "PERFORMANCE", "-duration", "1ns")
	test.ExpectSuccess(t, perform(md, &out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "renders in"))

	out.Reset()
	md = newModes(t, &out, "PERFORMANCE", "-profile", "disk")
	test.ExpectFailure(t, perform(md, &out))
}
