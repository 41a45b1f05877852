package cpu

// Add is the adder shared by ADD, ADC, SUB and SBC.
//
// The sum wraps at 16 bits. C is the unsigned carry out of bit 15, V is set
// when both operands have the same sign and the sum has the other one.
// Callers implementing subtraction invert C afterwards.
func Add(a, b uint16, carry_in uint16) (sum uint16, cc CC) {
	total := uint32(a) + uint32(b) + uint32(carry_in&1)
	sum = uint16(total)

	cc.SetC(total > 0xffff)
	cc.SetV(((a^sum)&(b^sum))&0x8000 != 0)
	cc.SetZ(sum == 0)
	cc.SetN(sum&0x8000 != 0)
	return
}

// operands holds the fetched sources of a type 1 or type 2 instruction.
type operands struct {
	op      CodeOp
	ldcc    bool
	dst     Reg
	a       uint16
	b       uint16
	shifted bool // Type 1 with a shift other than SHIFT_NONE.
}

// fetchOperands reads source A (through the shifter for type 1) and source B
// (a register for type 1, the immediate for type 2).
func (cpu *Cpu) fetchOperands(instr Instruction) (args operands) {
	switch instr := instr.(type) {
	case *InstrRegister:
		args.op = instr.Op
		args.ldcc = instr.Ldcc
		args.dst = instr.Dst
		args.a = cpu.Shift(instr.Shift, cpu.Get(instr.SrcA))
		args.b = cpu.Get(instr.SrcB)
		args.shifted = instr.Shift != SHIFT_NONE
	case *InstrImmediate:
		args.op = instr.Op
		args.ldcc = instr.Ldcc
		args.dst = instr.Dst
		args.a = cpu.Get(instr.SrcA)
		args.b = instr.Immediate
	default:
		panic("operands of a branch")
	}

	return
}

func (cpu *Cpu) carry() uint16 {
	if cpu.Flags.C() {
		return 1
	}
	return 0
}

// logicFlags computes the flags of AND and OR.
func logicFlags(result uint16, carry bool) (cc CC) {
	cc.SetN(result&0x8000 != 0)
	cc.SetZ(result == 0)
	cc.SetC(carry)
	return
}

// doAlu executes an arithmetic or logic operation. The destination is
// always written; ldcc only gates the flags.
func (cpu *Cpu) doAlu(args operands) {
	var output uint16
	var cc CC

	switch args.op {
	case OP_ADD:
		output, cc = Add(args.a, args.b, 0)
	case OP_ADC:
		output, cc = Add(args.a, args.b, cpu.carry())
	case OP_SUB:
		output, cc = Add(args.a, ^args.b, 1)
		cc ^= CC_C
	case OP_SBC:
		output, cc = Add(args.a, ^args.b, cpu.carry()^1)
		cc ^= CC_C
	case OP_AND:
		output = args.a & args.b
		cc = logicFlags(output, args.shifted && cpu.ShiftCarry)
	case OP_OR:
		output = args.a | args.b
		cc = logicFlags(output, args.shifted && cpu.ShiftCarry)
	default:
		panic("alu opcode " + args.op.String())
	}

	if args.ldcc {
		cpu.Flags = cc
	}

	cpu.Set(args.dst, output)
}
