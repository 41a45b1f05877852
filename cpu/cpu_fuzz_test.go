package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzStep executes one arbitrary instruction from a fixed register state
// and checks the properties every instruction keeps.
func FuzzStep(f *testing.F) {
	for _, word := range []uint16{0x0000, 0x1905, 0x4bff, 0xc300, 0xd7e1, 0xe7fe, 0xffff} {
		f.Add(word, uint8(0))
		f.Add(word, uint8(0xf))
	}

	f.Fuzz(func(t *testing.T, word uint16, flags uint8) {
		assert := assert.New(t)

		const pc = 0x4000

		cpu := NewCpu()
		for reg := REG_R1; reg < REG_PC; reg++ {
			cpu.Set(reg, 0x1111*uint16(reg))
		}
		cpu.SetPc(pc)
		cpu.Flags = CC(flags) & CC_MASK
		cpu.Memory.Write(pc, word)

		code := Code(word)
		before := cpu.RegisterBank

		cpu.Step()

		assert.Equal(uint16(0), cpu.Get(REG_R0))
		assert.Equal(1, cpu.Ticks)

		switch instr := code.Decode().(type) {
		case *InstrBranch:
			next := uint16(pc + 1)
			if instr.Cond.Taken(before.Flags) {
				next += uint16(int16(instr.Offset))
			}
			assert.Equal(next, cpu.Pc())
			assert.Equal(before.Flags, cpu.Flags)
			for reg := REG_R1; reg < REG_PC; reg++ {
				assert.Equal(before.Get(reg), cpu.Get(reg))
			}
		default:
			if code.Op() == OP_LDST || !code.Ldcc() {
				assert.Equal(before.Flags, cpu.Flags, "%v", code)
			}
			var dst Reg
			if code.IsType2() {
				dst, _, _ = code.ImmediateDecode()
			} else {
				dst, _, _, _ = code.RegisterDecode()
			}
			if dst != REG_PC {
				assert.Equal(uint16(pc+1), cpu.Pc(), "%v", code)
			}
			for reg := REG_R1; reg < REG_PC; reg++ {
				if reg == dst && !(code.Op() == OP_LDST && code.Ldcc()) {
					continue
				}
				assert.Equal(before.Get(reg), cpu.Get(reg), "%v %v", code, reg)
			}
		}
	})
}
