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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mpltweaker/gui"
	"github.com/jetsetilly/mpltweaker/gui/sdlimgui"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/modalflag"
	"github.com/jetsetilly/mpltweaker/panel"
	"github.com/jetsetilly/mpltweaker/paths"
	"github.com/jetsetilly/mpltweaker/performance"
	"github.com/jetsetilly/mpltweaker/prefs"
	"github.com/jetsetilly/mpltweaker/preview"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/statsview"
	"github.com/jetsetilly/mpltweaker/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer in an interface is not equal to nil
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "EXPORT", "PREVIEW", "STYLES", "DUMP", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "EXPORT":
		err = export(md, os.Stdout)

	case "PREVIEW":
		err = render(md, os.Stdout)

	case "STYLES":
		err = styles(md, os.Stdout)

	case "DUMP":
		err = dump(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the flags common to every mode
type commonFlags struct {
	style *string
	log   *bool
	prefs *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		style: md.AddString("style", "", "named style to apply to the default parameters"),
		log:   md.AddBool("log", false, "echo log to stdout"),
		prefs: md.AddString("prefs", "", "preference overrides (key::value; key::value)"),
	}
}

// apply the common flags. the returned function should be called on
// completion of the mode
func (cf commonFlags) apply(output io.Writer) func() {
	if *cf.log {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *cf.prefs == "" {
		return func() {}
	}

	prefs.PushCommandLineStack(*cf.prefs)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused prefs: %s\n", unused)
		}
	}
}

// loadPreferences from the default location
func loadPreferences() (*panel.Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return panel.NewPreferences(pth)
}

// newHeadlessPanel creates a panel that is not connected to a GUI. The named
// style is applied if it is not empty.
func newHeadlessPanel(store rcparams.Styler, style string) (*panel.Panel, error) {
	pnlPrefs, err := loadPreferences()
	if err != nil {
		return nil, err
	}

	pnl := panel.NewPanel(store, pnlPrefs, panel.SystemFonts(), func() {})
	if style != "" {
		pnl.ResetToNamedStyle(style)
	}

	return pnl, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	common := addCommonFlags(md)
	sysFonts := md.AddBool("sysfonts", true, "use system fonts in the preview figure")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	exportOnQuit := md.AddBool("export", false, "export the style file when the gui is closed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer common.apply(os.Stdout)()

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available with this build")
		}
	}

	pnlPrefs, err := loadPreferences()
	if err != nil {
		return err
	}

	store := rcparams.NewParams()
	opts := preview.Options{UseSystemFonts: *sysFonts}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui(store, pnlPrefs, opts)
	}

	// wait for creator result
	var img *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		img = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		return err
	}

	var scr gui.GUI = img

	if *common.style != "" {
		err = scr.SetFeature(gui.ReqApplyStyle, *common.style)
		if err != nil {
			return err
		}
	}

	// ctrl-c asks the gui to quit so that preferences are saved
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	select {
	case <-intChan:
		scr.SetFeatureNoError(gui.ReqQuit)
		<-img.Done()
	case <-img.Done():
	}

	// the gui is still serviced until the quit request is sent to main
	if *exportOnQuit {
		return scr.SetFeature(gui.ReqExport)
	}

	return nil
}

func export(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Writes the style file to stdout unless -file or -clipboard is specified.")

	common := addCommonFlags(md)
	toFile := md.AddBool("file", false, "write the style file to the export location in the preferences")
	toClipboard := md.AddBool("clipboard", false, "copy the style file to the clipboard")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer common.apply(output)()

	pnl, err := newHeadlessPanel(rcparams.NewParams(), *common.style)
	if err != nil {
		return err
	}

	if *toFile {
		_, pth, err := pnl.ExportToFile()
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "style written to %s\n", pth)
	}

	if *toClipboard {
		err = clipboard.WriteAll(pnl.ExportStyleText())
		if err != nil {
			return err
		}
		fmt.Fprintln(output, "style copied to clipboard")
	}

	if !*toFile && !*toClipboard {
		io.WriteString(output, pnl.ExportStyleText())
	}

	return nil
}

func render(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Renders the preview figure to a PNG file. The filename is the first argument.")

	common := addCommonFlags(md)
	dpi := md.AddInt("dpi", 0, "override the figure.dpi parameter")
	width := md.AddInt("width", 0, "fit the figure to the width in pixels")
	height := md.AddInt("height", 0, "fit the figure to the height in pixels")
	sysFonts := md.AddBool("sysfonts", false, "use system fonts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer common.apply(output)()

	store := rcparams.NewParams()
	if *common.style != "" {
		err = store.Use(*common.style)
		if err != nil {
			return err
		}
	}
	if *dpi > 0 {
		store.Set("figure.dpi", rcparams.Float(float64(*dpi)))
	}

	pth := md.GetArg(0)
	if pth == "" {
		pth = paths.UniqueFilename("figure", *common.style, time.Now()) + ".png"
	}

	res, err := preview.Render(context.Background(), store, preview.Options{UseSystemFonts: *sysFonts})
	if err != nil {
		return err
	}

	img := res.Image
	if *width > 0 || *height > 0 {
		w, h := *width, *height
		if w <= 0 {
			w = img.Bounds().Dx()
		}
		if h <= 0 {
			h = img.Bounds().Dy()
		}
		img = preview.Fit(img, w, h)
	}

	err = preview.Save(img, pth)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "figure written to %s (%dx%d in %v)\n", pth,
		img.Bounds().Dx(), img.Bounds().Dy(), res.Elapsed.Round(time.Millisecond))

	return nil
}

func styles(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, "default")
	for _, s := range rcparams.NewParams().Styles() {
		fmt.Fprintln(output, s)
	}

	return nil
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Writes a Graphviz description of the parameter sections.")

	common := addCommonFlags(md)
	section := md.AddString("section", "", "dump only the named section")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer common.apply(output)()

	pnl, err := newHeadlessPanel(rcparams.NewParams(), *common.style)
	if err != nil {
		return err
	}

	if *section == "" {
		memviz.Map(output, pnl.Sections())
		return nil
	}

	for _, s := range pnl.Sections() {
		if strings.EqualFold(s.Name(), *section) {
			memviz.Map(output, s)
			return nil
		}
	}

	return fmt.Errorf("no section named %s", *section)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Renders the preview figure repeatedly for the duration.")

	common := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profile for performance check: cpu, mem, trace, all (comma separated)")
	sysFonts := md.AddBool("sysfonts", false, "use system fonts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer common.apply(output)()

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	store := rcparams.NewParams()
	if *common.style != "" {
		err = store.Use(*common.style)
		if err != nil {
			return err
		}
	}

	_, err = performance.Check(output, prf, store, preview.Options{UseSystemFonts: *sysFonts}, *duration)
	return err
}
