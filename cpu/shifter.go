package cpu

// Shift applies a type 1 shift code to the source A operand.
//
// ShiftCarry is always updated, whatever the ldcc bit says: it is cleared by
// SHIFT_NONE, and otherwise receives bit 0 of the input. SHIFT_RRC rotates
// through the carry flag, so the old C enters at bit 15.
func (rb *RegisterBank) Shift(sh CodeShift, value uint16) (output uint16) {
	switch sh {
	case SHIFT_NONE:
		rb.ShiftCarry = false
		output = value
	case SHIFT_ASR:
		rb.ShiftCarry = value&1 != 0
		output = uint16(int16(value) >> 1)
	case SHIFT_ROR:
		rb.ShiftCarry = value&1 != 0
		output = (value >> 1) | (value << 15)
	case SHIFT_RRC:
		var carry_in uint16
		if rb.Flags.C() {
			carry_in = 1
		}
		rb.ShiftCarry = value&1 != 0
		output = (value >> 1) | (carry_in << 15)
	}

	return
}
