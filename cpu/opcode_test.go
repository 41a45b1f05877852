package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Header(t *testing.T) {
	assert := assert.New(t)

	code := Code(0b101_1_1_000_00000000)
	assert.Equal(OP_OR, code.Op())
	assert.True(code.IsType2())
	assert.True(code.Ldcc())
	assert.Equal(CLASS_IMMEDIATE, code.Class())

	code = Code(0b010_0_0_000_00000000)
	assert.Equal(OP_SUB, code.Op())
	assert.False(code.IsType2())
	assert.False(code.Ldcc())
	assert.Equal(CLASS_REGISTER, code.Class())
}

func TestCode_BranchPriority(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint16{0xe000, 0xf000, 0xe800, 0xf8ff} {
		code := Code(word)
		assert.Equal(CLASS_BRANCH, code.Class(), "%04x", word)
		_, ok := code.Decode().(*InstrBranch)
		assert.True(ok, "%04x", word)
	}
}

func TestCode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		want Instruction
	}){
		{"add r1, r2, r3", 0b000_0_0_001_010_011_00,
			&InstrRegister{Op: OP_ADD, Dst: REG_R1, SrcA: REG_R2, SrcB: REG_R3, Shift: SHIFT_NONE}},
		{"adcs r7, r6, r5 asr", 0b001_0_1_111_110_101_01,
			&InstrRegister{Op: OP_ADC, Ldcc: true, Dst: REG_R7, SrcA: REG_R6, SrcB: REG_R5, Shift: SHIFT_ASR}},
		{"and r4, r0, r1 ror", 0b100_0_0_100_000_001_10,
			&InstrRegister{Op: OP_AND, Dst: REG_R4, SrcA: REG_R0, SrcB: REG_R1, Shift: SHIFT_ROR}},
		{"st r2, r3, r4 rrc", 0b110_0_1_010_011_100_11,
			&InstrRegister{Op: OP_LDST, Ldcc: true, Dst: REG_R2, SrcA: REG_R3, SrcB: REG_R4, Shift: SHIFT_RRC}},
		{"adds r1, r0, #5", 0b000_1_1_001_000_00101,
			&InstrImmediate{Op: OP_ADD, Ldcc: true, Dst: REG_R1, SrcA: REG_R0, Immediate: 5}},
		{"sub r3, r3, #15", 0b010_1_0_011_011_01111,
			&InstrImmediate{Op: OP_SUB, Dst: REG_R3, SrcA: REG_R3, Immediate: 15}},
		{"sub r3, r3, #-16", 0b010_1_0_011_011_10000,
			&InstrImmediate{Op: OP_SUB, Dst: REG_R3, SrcA: REG_R3, Immediate: 0xfff0}},
		{"or r1, r2, #-1", 0b101_1_0_001_010_11111,
			&InstrImmediate{Op: OP_OR, Dst: REG_R1, SrcA: REG_R2, Immediate: 0xffff}},
		{"ld r5, r6, #0", 0b110_1_0_101_110_00000,
			&InstrImmediate{Op: OP_LDST, Dst: REG_R5, SrcA: REG_R6, Immediate: 0}},
		{"bal +0", 0b111_0_0000_00000000,
			&InstrBranch{Cond: COND_AL, Offset: 0}},
		{"beq -1", 0b111_0_0111_11111111,
			&InstrBranch{Cond: COND_EQ, Offset: -1}},
		{"ble +127", 0b111_1_1111_01111111,
			&InstrBranch{Cond: COND_LE, Offset: 127}},
		{"bvs -128", 0b111_0_1001_10000000,
			&InstrBranch{Cond: COND_VS, Offset: -128}},
	}

	for _, entry := range table {
		assert.Equal(entry.want, entry.code.Decode(), entry.name)
	}
}

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	for imm := range uint16(0x20) {
		want := imm
		if imm >= 0x10 {
			want = uint16(int16(imm) - 0x20)
		}
		assert.Equal(want, SignExtend5(imm), "imm %#x", imm)
	}

	assert.Equal(uint16(0x007f), SignExtend8(0x7f))
	assert.Equal(uint16(0xff80), SignExtend8(0x80))
	assert.Equal(uint16(0xffff), SignExtend8(0xff))
	assert.Equal(uint16(0x0001), SignExtend8(0x1201))
}

func TestMakeCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Code(0b000_1_1_001_000_00101), MakeCodeImmediate(OP_ADD, true, REG_R1, REG_R0, 5))
	assert.Equal(Code(0b010_1_0_011_011_11110), MakeCodeImmediate(OP_SUB, false, REG_R3, REG_R3, -2))
	assert.Equal(Code(0b110_0_0_011_000_000_00), MakeCodeRegister(OP_LDST, false, REG_R3, REG_R0, REG_R0, SHIFT_NONE))
	assert.Equal(Code(0b101_0_1_111_001_010_11), MakeCodeRegister(OP_OR, true, REG_PC, REG_R1, REG_R2, SHIFT_RRC))
	assert.Equal(Code(0b111_0_0110_11111101), MakeCodeBranch(COND_NE, -3))
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1905 type2 add.cc dst:r1 a:r0 imm:0x0005",
		MakeCodeImmediate(OP_ADD, true, REG_R1, REG_R0, 5).String())
	assert.Equal("c800 type1 ldst.st dst:r0 a:r0 b:r0 shift:-",
		MakeCodeRegister(OP_LDST, true, REG_R0, REG_R0, REG_R0, SHIFT_NONE).String())
	assert.Equal("e7fe type3 beq offset:-2", MakeCodeBranch(COND_EQ, -2).String())
}

func FuzzDecode(f *testing.F) {
	for _, word := range []uint16{0x0000, 0x1905, 0xc300, 0xe7fe, 0xf000, 0xffff} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		code := Code(word)
		instr := code.Decode()

		switch instr := instr.(type) {
		case *InstrBranch:
			assert.Equal(OP_BCC, code.Op())
			// The type bit is not part of a branch.
			assert.Equal(code&^(1<<12), instr.Code())
		case *InstrImmediate:
			assert.NotEqual(OP_BCC, code.Op())
			assert.True(code.IsType2())
			assert.Equal(code, instr.Code())
		case *InstrRegister:
			assert.NotEqual(OP_BCC, code.Op())
			assert.False(code.IsType2())
			assert.Equal(code, instr.Code())
		default:
			t.Fatalf("%04x: no decode", word)
		}
	})
}
