package cpu

// Shift/rotate family: ASL, LSR, ROL, ROR. Each reads a byte, transforms it
// according to the carry-in/out rules below, sets N/Z on the result, and
// writes it back (or leaves it in A for the accumulator form).

func (c *CPU) asl(v uint8) uint8 {
	c.Reg.PSW.C = v&0x80 != 0
	r := v << 1
	c.Reg.PSW.SetNZ(r)
	return r
}

func (c *CPU) lsr(v uint8) uint8 {
	c.Reg.PSW.C = v&0x01 != 0
	r := v >> 1
	c.Reg.PSW.SetNZ(r)
	return r
}

func (c *CPU) rol(v uint8) uint8 {
	var carryIn uint8
	if c.Reg.PSW.C {
		carryIn = 1
	}
	c.Reg.PSW.C = v&0x80 != 0
	r := v<<1 | carryIn
	c.Reg.PSW.SetNZ(r)
	return r
}

func (c *CPU) ror(v uint8) uint8 {
	var carryIn uint8
	if c.Reg.PSW.C {
		carryIn = 0x80
	}
	c.Reg.PSW.C = v&0x01 != 0
	r := v>>1 | carryIn
	c.Reg.PSW.SetNZ(r)
	return r
}

func opAslA(c *CPU) int  { c.Reg.A = c.asl(c.Reg.A); return 0 }
func opAslDP(c *CPU) int {
	addr := c.addrDP()
	c.Mem.Write(addr, c.asl(c.Mem.Read(addr)))
	return 0
}
func opAslDPX(c *CPU) int {
	addr := c.addrDPX()
	c.Mem.Write(addr, c.asl(c.Mem.Read(addr)))
	return 0
}
func opAslAbs(c *CPU) int {
	addr := c.addrAbs()
	c.Mem.Write(addr, c.asl(c.Mem.Read(addr)))
	return 0
}

func opLsrA(c *CPU) int  { c.Reg.A = c.lsr(c.Reg.A); return 0 }
func opLsrDP(c *CPU) int {
	addr := c.addrDP()
	c.Mem.Write(addr, c.lsr(c.Mem.Read(addr)))
	return 0
}
func opLsrDPX(c *CPU) int {
	addr := c.addrDPX()
	c.Mem.Write(addr, c.lsr(c.Mem.Read(addr)))
	return 0
}
func opLsrAbs(c *CPU) int {
	addr := c.addrAbs()
	c.Mem.Write(addr, c.lsr(c.Mem.Read(addr)))
	return 0
}

func opRolA(c *CPU) int  { c.Reg.A = c.rol(c.Reg.A); return 0 }
func opRolDP(c *CPU) int {
	addr := c.addrDP()
	c.Mem.Write(addr, c.rol(c.Mem.Read(addr)))
	return 0
}
func opRolDPX(c *CPU) int {
	addr := c.addrDPX()
	c.Mem.Write(addr, c.rol(c.Mem.Read(addr)))
	return 0
}
func opRolAbs(c *CPU) int {
	addr := c.addrAbs()
	c.Mem.Write(addr, c.rol(c.Mem.Read(addr)))
	return 0
}

func opRorA(c *CPU) int  { c.Reg.A = c.ror(c.Reg.A); return 0 }
func opRorDP(c *CPU) int {
	addr := c.addrDP()
	c.Mem.Write(addr, c.ror(c.Mem.Read(addr)))
	return 0
}
func opRorDPX(c *CPU) int {
	addr := c.addrDPX()
	c.Mem.Write(addr, c.ror(c.Mem.Read(addr)))
	return 0
}
func opRorAbs(c *CPU) int {
	addr := c.addrAbs()
	c.Mem.Write(addr, c.ror(c.Mem.Read(addr)))
	return 0
}
