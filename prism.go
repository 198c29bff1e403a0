// This file is part of Prism.
//
// Prism is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Prism is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Prism.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/gui/sdlsurface"
	"github.com/jetsetilly/prism/hologram"
	"github.com/jetsetilly/prism/logger"
	"github.com/jetsetilly/prism/media"
	"github.com/jetsetilly/prism/modalflag"
	"github.com/jetsetilly/prism/paths"
	"github.com/jetsetilly/prism/performance"
	"github.com/jetsetilly/prism/playmode"
	"github.com/jetsetilly/prism/session"
	"github.com/jetsetilly/prism/statsview"
	"github.com/jetsetilly/prism/terminal"
	"github.com/jetsetilly/prism/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the playmode package
	// provides its own handler.
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
// There is no Create() function. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to occur on the main thread.
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

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var current GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if current != nil {
				current.Destroy(os.Stderr)
			}

			current, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer in an interface is not a nil interface
				current = nil
			} else {
				sync.creation <- current
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if current != nil {
					current.Destroy(os.Stderr)
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
			// Service() paces the loop when there is a gui
			if current != nil {
				current.Service()
			} else {
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "COMPOSE", "VERSION")
	md.AdditionalHelp("keys during play: " + playmode.Help)

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
	case "PLAY":
		err = play(md, sync)

	case "COMPOSE":
		err = compose(md)

	case "VERSION":
		fmt.Println(version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// rig flags are shared by both modes
type rigFlags struct {
	center *float64
	span   *int
	bias   *int
}

func addRigFlags(md *modalflag.Modes) rigFlags {
	return rigFlags{
		center: md.AddFloat64("rigcenter", hologram.DefaultRig.CenterMM, "side of the central square of the rig in millimetres"),
		span:   md.AddInt("rigspan", hologram.DefaultRig.HorizontalSpan, "extra horizontal span for the top and bottom quadrants"),
		bias:   md.AddInt("rigbias", hologram.DefaultRig.SideBias, "horizontal offset of the left and right quadrants"),
	}
}

func (r rigFlags) rig() hologram.Rig {
	return hologram.Rig{
		CenterMM:       *r.center,
		HorizontalSpan: *r.span,
		SideBias:       *r.bias,
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	autosize := md.AddBool("autosize", true, "use the physical size reported by the display")
	diagonal := md.AddFloat64("diagonal", 32, "diagonal of the display in inches (used when -autosize=false)")
	debug := md.AddBool("debug", false, "draw alignment guides under the hologram")
	display := md.AddInt("display", -1, "screen index for the display window (negative for the second screen if available)")
	fullscreen := md.AddBool("fullscreen", false, "open the display window fullscreen")
	useTerm := md.AddBool("term", true, "read keys from the terminal")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "none", "run through profiler: cpu, mem, trace, all (comma separated)")
	rig := addRigFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not included in this build")
		}
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var path string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		path = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	events := make(chan gui.Event, 32)

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlsurface.NewSDL(sdlsurface.Config{
			Screen:     *display,
			Fullscreen: *fullscreen,
			Events:     events,
		})
	}

	// wait for creator result
	var scr *sdlsurface.SDL
	select {
	case g := <-sync.creation:
		scr = g.(*sdlsurface.SDL)
	case err := <-sync.creationError:
		return err
	}

	sess, err := session.NewSession(session.Config{
		Display: scr.Display(),
		Preview: scr.Preview(),
		Rig:     rig.rig(),
	})
	if err != nil {
		return err
	}

	err = sess.Resize(hologram.Sizing{Auto: *autosize, DiagonalInches: *diagonal})
	if err != nil {
		return err
	}
	err = sess.Debug.Set(*debug)
	if err != nil {
		return err
	}

	if path != "" {
		if err := sess.Open(path); err != nil {
			return err
		}
	}

	var inputs <-chan terminal.Input
	if *useTerm {
		term, err := terminal.Open(terminal.Config{
			PromptKey: 'o',
			Prompt:    "open: ",
		})
		if err != nil {
			// carry on without the terminal. the windows still accept keys
			logger.Log(logger.Allow, "prism", err)
		} else {
			defer term.Close()
			inputs = term.Inputs()
		}
	}

	// playmode handles ctrl-c itself so that playback stops before the
	// windows are destroyed
	sync.state <- stateRequest{req: reqNoIntSig}

	return performance.RunProfiler(prof, "play", func() error {
		return playmode.Play(playmode.Config{
			Session: sess,
			Events:  events,
			Inputs:  inputs,
		})
	})
}

func compose(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 1920, "width of the display in pixels")
	height := md.AddInt("height", 1080, "height of the display in pixels")
	diagonal := md.AddFloat64("diagonal", 32, "diagonal of the display in inches")
	dpi := md.AddFloat64("dpi", 0, "dots per inch of the display. overrides -diagonal when set")
	debug := md.AddBool("debug", false, "draw alignment guides under the hologram")
	output := md.AddString("o", "", "output png file. defaults to a unique name")
	rig := addRigFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("image file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	path := md.GetArg(0)
	if media.Classify(path) != media.Image {
		return fmt.Errorf("%s is not a recognised image file", path)
	}

	img, err := media.LoadImage(path)
	if err != nil {
		return err
	}

	params := hologram.Params{
		Width:  *width,
		Height: *height,
		Sizing: hologram.Sizing{DiagonalInches: *diagonal},
		Rig:    rig.rig(),
		Debug:  *debug,
	}
	if *dpi > 0 {
		params.Sizing.Auto = true
		params.Physical = hologram.Physical{
			WidthMM:  float64(*width) / *dpi * hologram.MMPerInch,
			HeightMM: float64(*height) / *dpi * hologram.MMPerInch,
			DPI:      *dpi,
		}
	}

	out, err := hologram.Compose(img, params)
	if err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		fn = paths.UniqueFilename("hologram", base+".png")
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}

	err = png.Encode(f, out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Printf("hologram written to %s\n", fn)

	return nil
}
