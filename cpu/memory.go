package cpu

// MEMORY_SIZE is the number of words of memory. Every 16-bit address is valid.
const MEMORY_SIZE = 1 << 16

// Memory is the flat word-addressed memory holding code and data.
type Memory [MEMORY_SIZE]uint16

// Read returns the word at addr.
func (mem *Memory) Read(addr uint16) uint16 {
	return mem[addr]
}

// Write stores a word at addr.
func (mem *Memory) Write(addr uint16, value uint16) {
	mem[addr] = value
}

// Load copies words into memory from address 0, returning the count copied.
func (mem *Memory) Load(words []uint16) int {
	return copy(mem[:], words)
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
