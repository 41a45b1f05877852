package cpu

// Taken reports whether the condition holds for the given flags.
func (cond CodeCond) Taken(cc CC) bool {
	c, v, z, n := cc.C(), cc.V(), cc.Z(), cc.N()
	lt := n != v

	switch cond {
	case COND_AL:
		return true
	case COND_NV:
		return false
	case COND_HI:
		return !(c || z)
	case COND_LS:
		return c || z
	case COND_CC:
		return !c
	case COND_CS:
		return c
	case COND_NE:
		return !z
	case COND_EQ:
		return z
	case COND_VC:
		return !v
	case COND_VS:
		return v
	case COND_PL:
		return !n
	case COND_MI:
		return n
	case COND_GE:
		return !lt
	case COND_LT:
		return lt
	case COND_GT:
		return !(lt || z)
	case COND_LE:
		return lt || z
	}

	return false
}

// doBranch adds the sign extended offset to the already advanced program
// counter when the condition holds.
func (cpu *Cpu) doBranch(instr *InstrBranch) {
	if !instr.Cond.Taken(cpu.Flags) {
		return
	}

	cpu.SetPc(cpu.Pc() + uint16(int16(instr.Offset)))
}
