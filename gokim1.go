// This file is part of GoKIM1.
//
// GoKIM1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoKIM1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoKIM1.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/govern"
	"github.com/gokim1/gokim1/gui"
	"github.com/gokim1/gokim1/gui/sdlkim"
	"github.com/gokim1/gokim1/hardware"
	"github.com/gokim1/gokim1/hardware/memory/memorymap"
	"github.com/gokim1/gokim1/hardware/preferences"
	"github.com/gokim1/gokim1/logger"
	"github.com/gokim1/gokim1/modalflag"
	"github.com/gokim1/gokim1/paths"
	"github.com/gokim1/gokim1/performance"
	"github.com/gokim1/gokim1/statsview"
	"github.com/gokim1/gokim1/tape"
	"github.com/gokim1/gokim1/terminal"
	"github.com/gokim1/gokim1/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error

	// closed by the main thread when the user has asked to quit. the
	// emulation should end and launch() should send reqQuit
	quit     chan struct{}
	quitOnce sync.Once
}

func (ms *mainSync) requestQuit() {
	ms.quitOnce.Do(func() {
		close(ms.quit)
	})
}

// #mainthread
func main() {
	ms := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
		quit:          make(chan struct{}),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc the first interrupt asks the emulation to end. a second
	// interrupt ends the program immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	interrupted := false

	go launch(ms, os.Args[1:], os.Stdout)

	done := false
	var scr gui.GUI
	for !done {
		// wait for something to happen if there is no gui to service
		if scr == nil {
			select {
			case <-intChan:
				if interrupted {
					done = true
				}
				interrupted = true
				ms.requestQuit()
			case creator := <-ms.creator:
				scr = create(ms, creator)
			case state := <-ms.state:
				done, exitVal = handleState(state, exitVal)
			}
			continue
		}

		select {
		case <-intChan:
			if interrupted {
				done = true
			}
			interrupted = true
			ms.requestQuit()
		case creator := <-ms.creator:
			scr.Destroy()
			scr = create(ms, creator)
		case state := <-ms.state:
			done, exitVal = handleState(state, exitVal)
		default:
			if !scr.Service() {
				ms.requestQuit()
			}
		}
	}

	if scr != nil {
		scr.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// create the gui on the main thread and pass the result to launch().
func create(ms *mainSync, creator func() (gui.GUI, error)) gui.GUI {
	scr, err := creator()
	if err != nil {
		ms.creationError <- err
		return nil
	}
	ms.creation <- scr
	return scr
}

func handleState(state stateRequest, exitVal int) (bool, int) {
	switch state.req {
	case reqQuit:
		if state.args != nil {
			if v, ok := state.args.(int); ok {
				exitVal = v
			} else {
				panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
			}
		}
		return true, exitVal
	}
	return false, exitVal
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(ms *mainSync, args []string, output io.Writer) {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TAPE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		ms.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		ms.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, ms, output)
	case "TAPE":
		err = tapeMode(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = versionMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		ms.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	ms.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, ms *mainSync, output io.Writer) error {
	md.NewMode()

	kvos := md.AddString("kvos", "", "ROM image to load at the top of memory")
	tapeFile := md.AddString("tape", "", "wav or mp3 file to play through the cassette interface")
	record := md.AddString("record", "", "record the cassette interface to a wav file (or to a new file in a directory)")
	videoMode := md.AddString("video", "", "video window decoding: SIMPLIFIED, CYCLEACCURATE")
	useTerm := md.AddBool("term", false, "use the terminal instead of a window")
	sst := md.AddBool("sst", false, "start with the SST switch on")
	scale := md.AddFloat64("scale", 2.0, "window scaling")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	memviz := md.AddString("memviz", "", "write a graph of the final machine state to a DOT file (or to a new file in a directory)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("monitor ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *tapeFile != "" && *record != "" {
		return fmt.Errorf("cannot play and record a tape at the same time")
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
		fmt.Fprint(output, memorymap.Summary())
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(output, 1000)
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	if *videoMode != "" {
		if err := prefs.Video.Set(*videoMode); err != nil {
			return err
		}
	}

	kim, err := hardware.NewKIM1(prefs, nil)
	if err != nil {
		return err
	}

	if err := kim.LoadMonitor(md.GetArg(0)); err != nil {
		return err
	}
	if *kvos != "" {
		if err := kim.LoadHighROM(*kvos); err != nil {
			return err
		}
	}

	kim.PowerOn()
	kim.Keypad.SetSST(*sst)

	if *tapeFile != "" {
		tp, err := tape.Load(*tapeFile)
		if err != nil {
			return err
		}
		if err := kim.Deck.Insert(tp.Samples, tp.Rate); err != nil {
			return err
		}
		if err := kim.Deck.Play(); err != nil {
			return err
		}
	}

	if *record != "" {
		ww := tape.NewWavWriter(outputFilename(*record, "tape", md.GetArg(0), "wav"))
		kim.Deck.AttachRecorder(ww)
		if err := kim.Deck.Record(); err != nil {
			return err
		}
		defer func() {
			if err := ww.Close(); err != nil {
				logger.Log(logger.Allow, "gokim1", err)
			}
		}()
	}

	if *useTerm {
		err = runTerminal(kim, ms, output)
	} else {
		err = runGUI(kim, ms, float32(*scale))
	}
	if err != nil {
		return err
	}

	if *memviz != "" {
		f, err := os.Create(outputFilename(*memviz, "memviz", md.GetArg(0), "dot"))
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		kim.Snapshot().Dump(f)
	}

	return nil
}

// outputFilename returns the filename to write to. If the name is an existing
// directory then a new file in that directory is named after the monitor ROM
// and the current time.
func outputFilename(name string, prepend string, monitor string, ext string) string {
	if fi, err := os.Stat(name); err == nil && fi.IsDir() {
		label := strings.TrimSuffix(filepath.Base(monitor), filepath.Ext(monitor))
		return filepath.Join(name, paths.UniqueFilename(prepend, label, ext))
	}
	return name
}

// continueCheck ends the emulation when the quit channel is closed.
func continueCheck(quit ...<-chan struct{}) func() (govern.State, error) {
	return func() (govern.State, error) {
		for _, q := range quit {
			select {
			case <-q:
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	}
}

func runGUI(kim *hardware.KIM1, ms *mainSync, scale float32) error {
	ms.creator <- func() (gui.GUI, error) {
		scr, err := sdlkim.NewSdlKIM(kim, scale)
		if err != nil {
			return nil, err
		}
		if err := scr.SetFeature(gui.ReqSetVisibility, true); err != nil {
			scr.Destroy()
			return nil, err
		}
		if err := scr.SetFeature(gui.ReqState, govern.Running); err != nil {
			scr.Destroy()
			return nil, err
		}
		return scr, nil
	}

	select {
	case <-ms.creation:
	case err := <-ms.creationError:
		return err
	}

	return kim.Run(continueCheck(ms.quit))
}

func runTerminal(kim *hardware.KIM1, ms *mainSync, output io.Writer) error {
	trm, err := terminal.NewTerminal(kim, output)
	if err != nil {
		return err
	}
	defer trm.CleanUp()

	// closed when the terminal session ends
	done := make(chan struct{})

	runErr := make(chan error, 1)
	go func() {
		runErr <- kim.Run(continueCheck(ms.quit, done))
	}()

	err = trm.Service(ms.quit)
	close(done)

	if rerr := <-runErr; rerr != nil {
		return rerr
	}
	return err
}

func tapeMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("tape file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tp, err := tape.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	a, err := tape.Analyse(tp)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %.02fs at %dHz\n", tp.Filename, tp.Duration(), tp.Rate)
	fmt.Fprintf(output, "%s\n", a)

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("monitor ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, md.GetArg(0), *duration)
}

func versionMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.Version())

	return nil
}
