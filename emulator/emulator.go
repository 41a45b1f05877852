// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io/fs"
	"iter"
	"log"
	"maps"
	"math/big"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/stump/cpu"
	"github.com/ezrec/stump/internal"
	"github.com/ezrec/stump/io"
)

var _emulator_defines = map[string]int{
	"MEMORY_SIZE": cpu.MEMORY_SIZE,
}

// Emulator state. CPU + boot image.
type Emulator struct {
	Verbose  bool     // If set, enables verbose logging.
	*cpu.Cpu          // Reference to the CPU simulation.
	Image    io.Image // Memory image loaded on reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the processor, and load the memory image.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Image.Data)

	if emu.Verbose {
		log.Printf("emulator: reset, %d words", len(emu.Image.Data))
	}
}

// Open replaces the memory image, and resets. A failed load leaves the
// image and the processor untouched.
func (emu *Emulator) Open(filesys fs.FS, name string) (err error) {
	img := io.Image{Verbose: emu.Verbose}
	err = img.Open(filesys, name)
	if err != nil {
		return
	}

	emu.Image = img
	emu.Reset()

	return
}

// Run executes count steps.
func (emu *Emulator) Run(count int) {
	for range count {
		emu.Cpu.Step()
	}
}

// Dump returns the whole of memory as an image, without trailing zeros.
func (emu *Emulator) Dump() (img *io.Image) {
	img = &io.Image{Data: make([]uint16, cpu.MEMORY_SIZE)}
	copy(img.Data, emu.Cpu.Memory[:])
	img.Trim()

	return
}

// Evaluate an integer expression over the defines. The result wraps to a
// 16-bit address.
func (emu *Emulator) Evaluate(expr string) (value uint16, err error) {
	if len(strings.TrimSpace(expr)) == 0 {
		err = ErrExpressionEmpty
		return
	}

	thread := starlark.Thread{Name: "monitor"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range emu.Defines() {
		pred[key] = starlark.MakeInt(value)
	}

	prog := "rc=" + strings.TrimSpace(expr) + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpressionType
		return
	}

	// Two's complement mask, so negative and huge values wrap too.
	masked := new(big.Int).And(st_int.BigInt(), big.NewInt(0xffff))
	value = uint16(masked.Uint64())
	return
}
