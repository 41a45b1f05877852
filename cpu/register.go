package cpu

import (
	"fmt"
)

// Reg is a general purpose register number.
type Reg int

const (
	REG_R0 = Reg(0) // r0, reads as zero
	REG_R1 = Reg(1) // r1
	REG_R2 = Reg(2) // r2
	REG_R3 = Reg(3) // r3
	REG_R4 = Reg(4) // r4
	REG_R5 = Reg(5) // r5
	REG_R6 = Reg(6) // r6
	REG_R7 = Reg(7) // r7, program counter
	REG_PC = REG_R7
)

// String returns the register name.
func (r Reg) String() string {
	if r == REG_PC {
		return "pc"
	}
	return fmt.Sprintf("r%d", int(r))
}

// Condition code bit positions in the packed 4-bit value.
const (
	CC_C    = CC(1 << 0) // Carry
	CC_V    = CC(1 << 1) // Overflow
	CC_Z    = CC(1 << 2) // Zero
	CC_N    = CC(1 << 3) // Negative
	CC_MASK = CC_C | CC_V | CC_Z | CC_N
)

// CC is the packed condition code register.
type CC uint8

// C returns the carry flag.
func (cc CC) C() bool { return cc&CC_C != 0 }

// V returns the overflow flag.
func (cc CC) V() bool { return cc&CC_V != 0 }

// Z returns the zero flag.
func (cc CC) Z() bool { return cc&CC_Z != 0 }

// N returns the negative flag.
func (cc CC) N() bool { return cc&CC_N != 0 }

// SetC sets or clears the carry flag.
func (cc *CC) SetC(status bool) { cc.setFlag(CC_C, status) }

// SetV sets or clears the overflow flag.
func (cc *CC) SetV(status bool) { cc.setFlag(CC_V, status) }

// SetZ sets or clears the zero flag.
func (cc *CC) SetZ(status bool) { cc.setFlag(CC_Z, status) }

// SetN sets or clears the negative flag.
func (cc *CC) SetN(status bool) { cc.setFlag(CC_N, status) }

func (cc *CC) setFlag(flag CC, status bool) {
	if status {
		*cc |= flag
	} else {
		*cc &^= flag
	}
}

// String shows set flags in upper case, clear flags in lower case.
func (cc CC) String() string {
	out := []byte("nzvc")
	for n, flag := range []CC{CC_N, CC_Z, CC_V, CC_C} {
		if cc&flag != 0 {
			out[n] -= 'a' - 'A'
		}
	}
	return string(out)
}

// RegisterBank holds the general purpose registers, the condition code
// register and the shifter carry.
type RegisterBank struct {
	r [8]uint16

	Flags CC // Condition code register.

	// ShiftCarry is the carry out of the most recent operand shift. It is
	// not part of the condition code; AND and OR copy it into C.
	ShiftCarry bool
}

// Get returns the value of a register. r0 always reads as zero.
func (rb *RegisterBank) Get(n Reg) uint16 {
	n &= 7
	if n == REG_R0 {
		return 0
	}
	return rb.r[n]
}

// Set stores a value in a register. Writes to r0 are discarded.
func (rb *RegisterBank) Set(n Reg, value uint16) {
	n &= 7
	if n == REG_R0 {
		return
	}
	rb.r[n] = value
}

// Pc returns the program counter.
func (rb *RegisterBank) Pc() uint16 {
	return rb.r[REG_PC]
}

// SetPc sets the program counter.
func (rb *RegisterBank) SetPc(value uint16) {
	rb.r[REG_PC] = value
}

// Reset clears all registers and flags.
func (rb *RegisterBank) Reset() {
	clear(rb.r[:])
	rb.Flags = 0
	rb.ShiftCarry = false
}
