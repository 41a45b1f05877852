package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jroimartin/gocui"

	"github.com/ezrec/stump/cpu"
	"github.com/ezrec/stump/emulator"
)

// TUI_MEMORY_WORDS is the number of words shown around the program counter.
const TUI_MEMORY_WORDS = 8

// screen is the full screen monitor.
type screen struct {
	emu *emulator.Emulator
}

// runTui runs the full screen monitor until quit.
func runTui(emu *emulator.Emulator) (err error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return
	}
	defer g.Close()

	scr := &screen{emu: emu}
	g.SetManagerFunc(scr.layout)

	// Verbose logs go to the trace view, not over the screen.
	restore := redirectLog(&traceWriter{view: func() (io.Writer, error) {
		return g.View("trace")
	}})
	defer restore()

	for _, key := range []any{gocui.KeySpace, gocui.KeyEnter} {
		err = g.SetKeybinding("", key, gocui.ModNone, scr.step)
		if err != nil {
			return
		}
	}
	for _, key := range []any{'q', gocui.KeyCtrlC} {
		err = g.SetKeybinding("", key, gocui.ModNone, quit)
		if err != nil {
			return
		}
	}

	err = g.MainLoop()
	if errors.Is(err, gocui.ErrQuit) {
		err = nil
	}

	return
}

// layout places the registers, memory and trace views.
func (scr *screen) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	// up -> registers
	if v, err := g.SetView("registers", 0, 0, maxX-1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = f("Registers")
	}

	// middle -> memory around pc
	if v, err := g.SetView("memory", 0, 3, maxX-1, 4+TUI_MEMORY_WORDS); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = f("Memory")
	}

	// down -> trace
	if v, err := g.SetView("trace", 0, 5+TUI_MEMORY_WORDS, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = f("Trace")
		v.Autoscroll = true
	}

	return scr.update(g)
}

// update redraws the registers and memory views.
func (scr *screen) update(g *gocui.Gui) error {
	v, err := g.View("registers")
	if err != nil {
		return err
	}
	v.Clear()
	fmt.Fprintln(v, scr.emu.String())

	v, err = g.View("memory")
	if err != nil {
		return err
	}
	v.Clear()
	pc := scr.emu.Pc()
	for n := range uint16(TUI_MEMORY_WORDS) {
		addr := pc - TUI_MEMORY_WORDS/2 + n
		marker := "  "
		if addr == pc {
			marker = "> "
		}
		fmt.Fprintf(v, "%v%04x: %v\n", marker, addr, cpu.Code(scr.emu.Memory.Read(addr)))
	}

	return nil
}

// step executes one instruction, and traces it.
func (scr *screen) step(g *gocui.Gui, _ *gocui.View) error {
	pc := scr.emu.Pc()
	code := cpu.Code(scr.emu.Memory.Read(pc))

	scr.emu.Step()

	v, err := g.View("trace")
	if err != nil {
		return err
	}
	fmt.Fprintf(v, "%04x: %v\n", pc, code)

	return scr.update(g)
}

// traceWriter writes to a view, once it exists.
type traceWriter struct {
	view func() (io.Writer, error)
}

func (tw *traceWriter) Write(buff []byte) (n int, err error) {
	v, err := tw.view()
	if err != nil {
		// No view yet, drop the text.
		n = len(buff)
		err = nil
		return
	}

	n, err = v.Write(buff)
	return
}

// redirectLog sends the standard logger to w, until restore is called.
func redirectLog(w io.Writer) (restore func()) {
	output := log.Writer()
	log.SetOutput(w)

	restore = func() {
		log.SetOutput(output)
	}
	return
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
