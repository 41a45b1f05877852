package main

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/stump/emulator"
)

const (
	KEY_CTRL_C = 0x03
	KEY_CTRL_D = 0x04
)

// rawReader translates keys of a raw mode terminal for the monitor.
type rawReader struct {
	io.Reader
}

func (rr *rawReader) Read(buff []byte) (n int, err error) {
	n, err = rr.Reader.Read(buff)
	for i, key := range buff[:n] {
		switch key {
		case '\r':
			buff[i] = emulator.MONITOR_STATUS
		case KEY_CTRL_C, KEY_CTRL_D:
			buff[i] = emulator.MONITOR_QUIT
		}
	}
	return
}

// rawWriter restores the carriage return a raw mode terminal needs.
type rawWriter struct {
	io.Writer
}

func (rw *rawWriter) Write(buff []byte) (n int, err error) {
	_, err = rw.Writer.Write(bytes.ReplaceAll(buff, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return
	}

	n = len(buff)
	return
}

// runMonitor runs the monitor on stdin. A terminal is put in raw mode, so
// that every key press is a command.
func runMonitor(emu *emulator.Emulator) (err error) {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		var state *term.State
		state, err = term.MakeRaw(fd)
		if err != nil {
			return
		}
		defer term.Restore(fd, state)

		input = &rawReader{Reader: input}
		output = &rawWriter{Writer: output}
	}

	mon := emulator.NewMonitor(emu, input, output)
	err = mon.Run()

	return
}
