package cpu

import (
	"fmt"
)

// CodeOp is the 3-bit operation field, bits 15-13.
type CodeOp int

const (
	OP_ADD  = CodeOp(0) // add
	OP_ADC  = CodeOp(1) // adc
	OP_SUB  = CodeOp(2) // sub
	OP_SBC  = CodeOp(3) // sbc
	OP_AND  = CodeOp(4) // and
	OP_OR   = CodeOp(5) // or
	OP_LDST = CodeOp(6) // ldst
	OP_BCC  = CodeOp(7) // bcc
)

var _op_names = [...]string{"add", "adc", "sub", "sbc", "and", "or", "ldst", "bcc"}

func (op CodeOp) String() string {
	if op < 0 || int(op) >= len(_op_names) {
		return fmt.Sprintf("CodeOp(%d)", int(op))
	}
	return _op_names[op]
}

// CodeShift is the 2-bit shift applied to source A of a type 1 instruction.
type CodeShift int

const (
	SHIFT_NONE = CodeShift(0) // -
	SHIFT_ASR  = CodeShift(1) // asr
	SHIFT_ROR  = CodeShift(2) // ror
	SHIFT_RRC  = CodeShift(3) // rrc
)

var _shift_names = [...]string{"-", "asr", "ror", "rrc"}

func (sh CodeShift) String() string {
	if sh < 0 || int(sh) >= len(_shift_names) {
		return fmt.Sprintf("CodeShift(%d)", int(sh))
	}
	return _shift_names[sh]
}

// CodeCond is the 4-bit branch condition.
type CodeCond int

const (
	COND_AL = CodeCond(0x0) // al: always
	COND_NV = CodeCond(0x1) // nv: never
	COND_HI = CodeCond(0x2) // hi: C + Z = 0
	COND_LS = CodeCond(0x3) // ls: C + Z = 1
	COND_CC = CodeCond(0x4) // cc: C = 0
	COND_CS = CodeCond(0x5) // cs: C = 1
	COND_NE = CodeCond(0x6) // ne: Z = 0
	COND_EQ = CodeCond(0x7) // eq: Z = 1
	COND_VC = CodeCond(0x8) // vc: V = 0
	COND_VS = CodeCond(0x9) // vs: V = 1
	COND_PL = CodeCond(0xa) // pl: N = 0
	COND_MI = CodeCond(0xb) // mi: N = 1
	COND_GE = CodeCond(0xc) // ge: N ^ V = 0
	COND_LT = CodeCond(0xd) // lt: N ^ V = 1
	COND_GT = CodeCond(0xe) // gt: (N ^ V) + Z = 0
	COND_LE = CodeCond(0xf) // le: (N ^ V) + Z = 1
)

var _cond_names = [...]string{
	"al", "nv", "hi", "ls", "cc", "cs", "ne", "eq",
	"vc", "vs", "pl", "mi", "ge", "lt", "gt", "le",
}

func (cond CodeCond) String() string {
	if cond < 0 || int(cond) >= len(_cond_names) {
		return fmt.Sprintf("CodeCond(%d)", int(cond))
	}
	return _cond_names[cond]
}

// CodeClass is the instruction layout selected by the opcode and type bit.
type CodeClass int

const (
	CLASS_REGISTER  = CodeClass(1) // type 1: two source registers and a shift
	CLASS_IMMEDIATE = CodeClass(2) // type 2: one source register and an immediate
	CLASS_BRANCH    = CodeClass(3) // type 3: condition and offset
)

func (class CodeClass) String() string {
	return fmt.Sprintf("type%d", int(class))
}

// Code is a single 16-bit instruction word.
//
//	15-13  op
//	12     type 2
//	11     ldcc (set flags, or store for ldst)
//	10-8   dst        | cond (11-8)
//	7-5    src a      | offset (7-0)
//	4-2    src b      | imm5 (4-0)
//	1-0    shift      |
type Code uint16

// Op returns the operation field.
func (code Code) Op() CodeOp {
	return CodeOp((code >> 13) & 0x7)
}

// IsType2 returns the type bit. It has no meaning for branches.
func (code Code) IsType2() bool {
	return (code>>12)&1 != 0
}

// Ldcc returns the set-flags (or store) bit.
func (code Code) Ldcc() bool {
	return (code>>11)&1 != 0
}

// Class returns the instruction layout. The branch opcode takes priority
// over the type bit.
func (code Code) Class() CodeClass {
	switch {
	case code.Op() == OP_BCC:
		return CLASS_BRANCH
	case code.IsType2():
		return CLASS_IMMEDIATE
	default:
		return CLASS_REGISTER
	}
}

// RegisterDecode decodes the type 1 fields.
func (code Code) RegisterDecode() (dst, src_a, src_b Reg, shift CodeShift) {
	dst = Reg((code >> 8) & 0x7)
	src_a = Reg((code >> 5) & 0x7)
	src_b = Reg((code >> 2) & 0x7)
	shift = CodeShift(code & 0x3)
	return
}

// ImmediateDecode decodes the type 2 fields. The immediate is sign extended.
func (code Code) ImmediateDecode() (dst, src_a Reg, imm uint16) {
	dst = Reg((code >> 8) & 0x7)
	src_a = Reg((code >> 5) & 0x7)
	imm = SignExtend5(uint16(code & 0x1f))
	return
}

// BranchDecode decodes the type 3 fields.
func (code Code) BranchDecode() (cond CodeCond, offset int8) {
	cond = CodeCond((code >> 8) & 0xf)
	offset = int8(uint8(code & 0xff))
	return
}

// SignExtend5 extends bit 4 of a 5-bit immediate into bits 15-5.
func SignExtend5(imm uint16) uint16 {
	imm &= 0x1f
	if imm&0x10 != 0 {
		imm |= 0xffe0
	}
	return imm
}

// SignExtend8 extends bit 7 of an 8-bit offset into bits 15-8.
func SignExtend8(offset uint16) uint16 {
	offset &= 0xff
	if offset&0x80 != 0 {
		offset |= 0xff00
	}
	return offset
}

// Instruction is one decoded view of a Code: *InstrRegister,
// *InstrImmediate or *InstrBranch.
type Instruction interface {
	Code() Code
	String() string
}

// InstrRegister is a type 1 instruction.
type InstrRegister struct {
	Op    CodeOp
	Ldcc  bool
	Dst   Reg
	SrcA  Reg
	SrcB  Reg
	Shift CodeShift
}

// InstrImmediate is a type 2 instruction.
type InstrImmediate struct {
	Op        CodeOp
	Ldcc      bool
	Dst       Reg
	SrcA      Reg
	Immediate uint16 // Sign extended.
}

// InstrBranch is a type 3 instruction.
type InstrBranch struct {
	Cond   CodeCond
	Offset int8
}

var (
	_ Instruction = (*InstrRegister)(nil)
	_ Instruction = (*InstrImmediate)(nil)
	_ Instruction = (*InstrBranch)(nil)
)

// Decode returns the instruction view selected by the opcode, then the type
// bit. Every word decodes.
func (code Code) Decode() (instr Instruction) {
	switch code.Class() {
	case CLASS_BRANCH:
		cond, offset := code.BranchDecode()
		instr = &InstrBranch{Cond: cond, Offset: offset}
	case CLASS_IMMEDIATE:
		dst, src_a, imm := code.ImmediateDecode()
		instr = &InstrImmediate{
			Op:        code.Op(),
			Ldcc:      code.Ldcc(),
			Dst:       dst,
			SrcA:      src_a,
			Immediate: imm,
		}
	default:
		dst, src_a, src_b, shift := code.RegisterDecode()
		instr = &InstrRegister{
			Op:    code.Op(),
			Ldcc:  code.Ldcc(),
			Dst:   dst,
			SrcA:  src_a,
			SrcB:  src_b,
			Shift: shift,
		}
	}

	return
}

func makeHeader(op CodeOp, type2 bool, ldcc bool) Code {
	code := Code(op&0x7) << 13
	if type2 {
		code |= 1 << 12
	}
	if ldcc {
		code |= 1 << 11
	}
	return code
}

// MakeCodeRegister creates a type 1 instruction.
func MakeCodeRegister(op CodeOp, ldcc bool, dst, src_a, src_b Reg, shift CodeShift) Code {
	return makeHeader(op, false, ldcc) |
		Code(dst&7)<<8 | Code(src_a&7)<<5 | Code(src_b&7)<<2 | Code(shift&3)
}

// MakeCodeImmediate creates a type 2 instruction. Only the low 5 bits of imm
// are encoded, so -16..15 round trip through Decode.
func MakeCodeImmediate(op CodeOp, ldcc bool, dst, src_a Reg, imm int) Code {
	return makeHeader(op, true, ldcc) |
		Code(dst&7)<<8 | Code(src_a&7)<<5 | Code(imm&0x1f)
}

// MakeCodeBranch creates a type 3 instruction.
func MakeCodeBranch(cond CodeCond, offset int8) Code {
	return makeHeader(OP_BCC, false, false) | Code(cond&0xf)<<8 | Code(uint8(offset))
}

// Code re-encodes the instruction.
func (instr *InstrRegister) Code() Code {
	return MakeCodeRegister(instr.Op, instr.Ldcc, instr.Dst, instr.SrcA, instr.SrcB, instr.Shift)
}

// Code re-encodes the instruction.
func (instr *InstrImmediate) Code() Code {
	return MakeCodeImmediate(instr.Op, instr.Ldcc, instr.Dst, instr.SrcA, int(instr.Immediate))
}

// Code re-encodes the instruction.
func (instr *InstrBranch) Code() Code {
	return MakeCodeBranch(instr.Cond, instr.Offset)
}

func ldccString(op CodeOp, ldcc bool) string {
	switch {
	case !ldcc:
		return ""
	case op == OP_LDST:
		return ".st"
	default:
		return ".cc"
	}
}

func (instr *InstrRegister) String() string {
	return fmt.Sprintf("%v%v dst:%v a:%v b:%v shift:%v",
		instr.Op, ldccString(instr.Op, instr.Ldcc), instr.Dst, instr.SrcA, instr.SrcB, instr.Shift)
}

func (instr *InstrImmediate) String() string {
	return fmt.Sprintf("%v%v dst:%v a:%v imm:%#04x",
		instr.Op, ldccString(instr.Op, instr.Ldcc), instr.Dst, instr.SrcA, instr.Immediate)
}

func (instr *InstrBranch) String() string {
	return fmt.Sprintf("b%v offset:%d", instr.Cond, instr.Offset)
}

// String returns the decoded fields of the word.
func (code Code) String() string {
	return fmt.Sprintf("%04x %v %v", uint16(code), code.Class(), code.Decode())
}
