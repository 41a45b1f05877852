package emulator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/stump/cpu"
)

const (
	MONITOR_STATUS = '\n' // Step, then print the status line.
	MONITOR_MEMORY = 'm'  // Print the memory word at an expression.
	MONITOR_QUIT   = 'q'  // Stop the monitor.
)

// Monitor is the interactive host loop. Every key steps the processor once,
// except for the commands above.
type Monitor struct {
	*Emulator
	Input  *bufio.Reader
	Output io.Writer
}

// NewMonitor creates a monitor of an emulator.
func NewMonitor(emu *Emulator, input io.Reader, output io.Writer) (mon *Monitor) {
	mon = &Monitor{
		Emulator: emu,
		Input:    bufio.NewReader(input),
		Output:   output,
	}

	return
}

// Run the monitor until quit or the end of input.
func (mon *Monitor) Run() (err error) {
	for {
		var done bool
		done, err = mon.Command()
		if done || err != nil {
			return
		}
	}
}

// Command reads and executes a single command.
func (mon *Monitor) Command() (done bool, err error) {
	key, err := mon.Input.ReadByte()
	if errors.Is(err, io.EOF) {
		done = true
		err = nil
		return
	}
	if err != nil {
		return
	}

	switch key {
	case MONITOR_QUIT:
		done = true
	case MONITOR_MEMORY:
		var expr string
		expr, err = mon.Input.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		done = err != nil
		err = mon.memory(strings.TrimSuffix(expr, "\n"))
	case MONITOR_STATUS:
		err = mon.step()
		if err == nil {
			_, err = fmt.Fprintln(mon.Output, mon.Cpu.String())
		}
	default:
		err = mon.step()
	}

	return
}

// step the processor once, naming the opcode first if verbose.
func (mon *Monitor) step() (err error) {
	if mon.Verbose {
		code := mon.Cpu.Memory.Read(mon.Cpu.Pc())
		_, err = fmt.Fprintf(mon.Output, "%v: ", strings.ToUpper(cpu.Code(code).Op().String()))
		if err != nil {
			return
		}
	}

	mon.Cpu.Step()

	return
}

// memory prints the word at an address expression. Expression errors are
// printed, not returned.
func (mon *Monitor) memory(expr string) (err error) {
	addr, eval_err := mon.Evaluate(expr)
	if eval_err != nil {
		eval_err = &ErrCommand{Command: string(MONITOR_MEMORY) + expr, Err: eval_err}
		_, err = fmt.Fprintln(mon.Output, eval_err.Error())
		return
	}

	_, err = fmt.Fprintln(mon.Output, f("memory[%04x] = %04x", addr, mon.Cpu.Memory.Read(addr)))
	return
}
