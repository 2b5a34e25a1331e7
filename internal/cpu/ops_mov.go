package cpu

// MOV family: register/memory transfers, MOVW, and the stack PUSH/POP
// opcodes. Plain MOV never touches flags except for the loads into A/X/Y
// (N,Z only); stores, MOVW d,YA and register-to-register transfers follow
// the same rule. Store-form addressing modes such as (X)+ perform a dummy
// read of the destination before the write on real hardware; since that
// read is discarded and has no visible effect beyond the cycle count
// already carried in the cycle table, it isn't modeled here.

func opMovAImm(c *CPU) int { c.Reg.A = c.fetch8(); c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovADP(c *CPU) int  { c.Reg.A = c.Mem.Read(c.addrDP()); c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovADPX(c *CPU) int { c.Reg.A = c.Mem.Read(c.addrDPX()); c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovAAbs(c *CPU) int { c.Reg.A = c.Mem.Read(c.addrAbs()); c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovAAbsX(c *CPU) int {
	c.Reg.A = c.Mem.Read(c.addrAbsX())
	c.Reg.PSW.SetNZ(c.Reg.A)
	return 0
}
func opMovAAbsY(c *CPU) int {
	c.Reg.A = c.Mem.Read(c.addrAbsY())
	c.Reg.PSW.SetNZ(c.Reg.A)
	return 0
}
func opMovAIndX(c *CPU) int { c.Reg.A = c.Mem.Read(c.addrIndX()); c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovAIndXInc(c *CPU) int {
	addr := c.dp(c.Reg.X)
	c.Reg.A = c.Mem.Read(addr)
	c.Reg.X++
	c.Reg.PSW.SetNZ(c.Reg.A)
	return 0
}
func opMovAIdxInd(c *CPU) int {
	c.Reg.A = c.Mem.Read(c.addrIndexedIndirect())
	c.Reg.PSW.SetNZ(c.Reg.A)
	return 0
}
func opMovAIndInd(c *CPU) int {
	c.Reg.A = c.Mem.Read(c.addrIndirectIndexed())
	c.Reg.PSW.SetNZ(c.Reg.A)
	return 0
}

func opMovXImm(c *CPU) int { c.Reg.X = c.fetch8(); c.Reg.PSW.SetNZ(c.Reg.X); return 0 }
func opMovXDP(c *CPU) int  { c.Reg.X = c.Mem.Read(c.addrDP()); c.Reg.PSW.SetNZ(c.Reg.X); return 0 }
func opMovXDPY(c *CPU) int { c.Reg.X = c.Mem.Read(c.addrDPY()); c.Reg.PSW.SetNZ(c.Reg.X); return 0 }
func opMovXAbs(c *CPU) int { c.Reg.X = c.Mem.Read(c.addrAbs()); c.Reg.PSW.SetNZ(c.Reg.X); return 0 }

func opMovYImm(c *CPU) int { c.Reg.Y = c.fetch8(); c.Reg.PSW.SetNZ(c.Reg.Y); return 0 }
func opMovYDP(c *CPU) int  { c.Reg.Y = c.Mem.Read(c.addrDP()); c.Reg.PSW.SetNZ(c.Reg.Y); return 0 }
func opMovYDPX(c *CPU) int { c.Reg.Y = c.Mem.Read(c.addrDPX()); c.Reg.PSW.SetNZ(c.Reg.Y); return 0 }
func opMovYAbs(c *CPU) int { c.Reg.Y = c.Mem.Read(c.addrAbs()); c.Reg.PSW.SetNZ(c.Reg.Y); return 0 }

func opMovDPA(c *CPU) int  { c.Mem.Write(c.addrDP(), c.Reg.A); return 0 }
func opMovDPXA(c *CPU) int { c.Mem.Write(c.addrDPX(), c.Reg.A); return 0 }
func opMovAbsA(c *CPU) int { c.Mem.Write(c.addrAbs(), c.Reg.A); return 0 }
func opMovAbsXA(c *CPU) int { c.Mem.Write(c.addrAbsX(), c.Reg.A); return 0 }
func opMovAbsYA(c *CPU) int { c.Mem.Write(c.addrAbsY(), c.Reg.A); return 0 }
func opMovIndXA(c *CPU) int { c.Mem.Write(c.addrIndX(), c.Reg.A); return 0 }
func opMovIndXIncA(c *CPU) int {
	addr := c.dp(c.Reg.X)
	c.Mem.Write(addr, c.Reg.A)
	c.Reg.X++
	return 0
}
func opMovIdxIndA(c *CPU) int { c.Mem.Write(c.addrIndexedIndirect(), c.Reg.A); return 0 }
func opMovIndIndA(c *CPU) int { c.Mem.Write(c.addrIndirectIndexed(), c.Reg.A); return 0 }

func opMovDPX(c *CPU) int  { c.Mem.Write(c.addrDP(), c.Reg.X); return 0 }
func opMovDPYX(c *CPU) int { c.Mem.Write(c.addrDPY(), c.Reg.X); return 0 }
func opMovAbsX2(c *CPU) int { c.Mem.Write(c.addrAbs(), c.Reg.X); return 0 }

func opMovDPY(c *CPU) int  { c.Mem.Write(c.addrDP(), c.Reg.Y); return 0 }
func opMovDPXY(c *CPU) int { c.Mem.Write(c.addrDPX(), c.Reg.Y); return 0 }
func opMovAbsY2(c *CPU) int { c.Mem.Write(c.addrAbs(), c.Reg.Y); return 0 }

func opMovAX(c *CPU) int { c.Reg.A = c.Reg.X; c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovAY(c *CPU) int { c.Reg.A = c.Reg.Y; c.Reg.PSW.SetNZ(c.Reg.A); return 0 }
func opMovXA(c *CPU) int { c.Reg.X = c.Reg.A; c.Reg.PSW.SetNZ(c.Reg.X); return 0 }
func opMovYA(c *CPU) int { c.Reg.Y = c.Reg.A; c.Reg.PSW.SetNZ(c.Reg.Y); return 0 }
func opMovXSP(c *CPU) int { c.Reg.X = c.Reg.SP; c.Reg.PSW.SetNZ(c.Reg.X); return 0 }
func opMovSPX(c *CPU) int { c.Reg.SP = c.Reg.X; return 0 }

func opMovDPDP(c *CPU) int {
	dstAddr := c.addrDP()
	srcAddr := c.addrDP()
	c.Mem.Write(dstAddr, c.Mem.Read(srcAddr))
	return 0
}
func opMovDPImm(c *CPU) int {
	dstAddr := c.addrDP()
	v := c.fetch8()
	c.Mem.Write(dstAddr, v)
	return 0
}

func opMovwYADP(c *CPU) int {
	r := c.readWord(c.addrDP())
	c.Reg.SetYA(r)
	c.setNZ16(r)
	return 0
}
func opMovwDPYA(c *CPU) int {
	c.writeWord(c.addrDP(), c.Reg.YA())
	return 0
}

func opPushA(c *CPU) int   { c.push8(c.Reg.A); return 0 }
func opPushX(c *CPU) int   { c.push8(c.Reg.X); return 0 }
func opPushY(c *CPU) int   { c.push8(c.Reg.Y); return 0 }
func opPushPSW(c *CPU) int { c.push8(c.Reg.PSW.Get()); return 0 }

func opPopA(c *CPU) int   { c.Reg.A = c.pop8(); return 0 }
func opPopX(c *CPU) int   { c.Reg.X = c.pop8(); return 0 }
func opPopY(c *CPU) int   { c.Reg.Y = c.pop8(); return 0 }
func opPopPSW(c *CPU) int { c.Reg.PSW.Set(c.pop8()); return 0 }
