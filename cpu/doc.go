// Package cpu implements the instruction-execution core of the STUMP processor.
//
// The STUMP is a 16-bit teaching processor with eight registers (r0 always
// reads as zero, r7 is the program counter), four condition flags (C, V, Z, N)
// and a flat memory of 65536 words holding both code and data. There are eight
// opcodes in three encodings: two source registers with an optional shift,
// one source register with a 5-bit signed immediate, and a conditional branch
// with an 8-bit signed offset.
//
// Cpu.Step performs one fetch, advance, decode and execute cycle. It cannot
// fail: every instruction word decodes, and every address is valid.
package cpu
