package cpu

import (
	"fmt"
	"iter"
	"log"
	"strings"
)

// Cpu is the processor state: register bank and memory. It is owned by a
// single caller, which serializes calls to Step.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	RegisterBank        // Registers, condition code and shifter carry.
	Memory       Memory // Code and data.

	Ticks int // Steps executed since the last reset.
}

// NewCpu creates a CPU with all registers, flags and memory zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Reset clears registers, flags, memory and statistics.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.RegisterBank.Reset()
	cpu.Memory.Reset()
	cpu.Ticks = 0
}

// Load copies a memory image into memory from address 0.
func (cpu *Cpu) Load(words []uint16) {
	n := cpu.Memory.Load(words)
	if cpu.Verbose {
		log.Printf("cpu: loaded %d words", n)
	}
}

// Step fetches the word at the program counter, advances the program
// counter, then decodes and executes the word.
func (cpu *Cpu) Step() {
	pc := cpu.Pc()
	code := Code(cpu.Memory.Read(pc))
	cpu.SetPc(pc + 1)

	if cpu.Verbose {
		log.Printf("%04x: %v", pc, code)
	}

	cpu.execute(code.Decode())
	cpu.Ticks++
}

// execute dispatches a decoded instruction to its unit.
func (cpu *Cpu) execute(instr Instruction) {
	if branch, ok := instr.(*InstrBranch); ok {
		cpu.doBranch(branch)
		return
	}

	args := cpu.fetchOperands(instr)
	if args.op == OP_LDST {
		cpu.doLoadStore(args)
	} else {
		cpu.doAlu(args)
	}
}

// String returns the flags and registers r1-r6 and pc on one line.
func (cpu *Cpu) String() string {
	var text strings.Builder

	flag := func(set bool) int {
		if set {
			return 1
		}
		return 0
	}

	cc := cpu.Flags
	fmt.Fprintf(&text, "C:%d V:%d Z:%d N:%d ", flag(cc.C()), flag(cc.V()), flag(cc.Z()), flag(cc.N()))
	for reg := REG_R1; reg <= REG_PC; reg++ {
		fmt.Fprintf(&text, " %v:%04x", reg, cpu.Get(reg))
	}

	return text.String()
}

// Defines iterates the registers and flags by name, for expression
// evaluation by a monitor.
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for reg := REG_R0; reg <= REG_R7; reg++ {
			if !yield(fmt.Sprintf("r%d", int(reg)), int(cpu.Get(reg))) {
				return
			}
		}
		if !yield("pc", int(cpu.Pc())) {
			return
		}
		for _, flag := range []struct {
			name string
			set  bool
		}{
			{"c", cpu.Flags.C()},
			{"v", cpu.Flags.V()},
			{"z", cpu.Flags.Z()},
			{"n", cpu.Flags.N()},
		} {
			value := 0
			if flag.set {
				value = 1
			}
			if !yield(flag.name, value) {
				return
			}
		}
	}
}
