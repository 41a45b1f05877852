package cpu

import (
	"log"
)

// doLoadStore moves a word between the destination register and memory at
// source A + source B. ldcc selects a store. Flags are not affected.
func (cpu *Cpu) doLoadStore(args operands) {
	addr := args.a + args.b

	if args.ldcc {
		value := cpu.Get(args.dst)
		cpu.Memory.Write(addr, value)
		if cpu.Verbose {
			log.Printf("store: memory[%04x] = %04x", addr, value)
		}
		return
	}

	value := cpu.Memory.Read(addr)
	if cpu.Verbose {
		log.Printf("load: memory[%04x] == %04x", addr, value)
	}
	cpu.Set(args.dst, value)
}
