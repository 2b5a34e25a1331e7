package cpu

// 8-bit ALU primitives (OR/AND/EOR/CMP/ADC/SBC) and the opcode handlers
// built from them across every addressing mode in the corresponding
// opcode column.

func bitwiseOR(a, b uint8) uint8  { return a | b }
func bitwiseAND(a, b uint8) uint8 { return a & b }
func bitwiseEOR(a, b uint8) uint8 { return a ^ b }

// applyBitwise performs op(a,b), sets N/Z, and returns the result.
func (c *CPU) applyBitwise(a, b uint8, op func(uint8, uint8) uint8) uint8 {
	r := op(a, b)
	c.Reg.PSW.SetNZ(r)
	return r
}

// adc computes a + b + carry-in, setting N,V,H,Z,C.
func (c *CPU) adc(a, b uint8) uint8 {
	carry := uint16(0)
	if c.Reg.PSW.C {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	r := uint8(sum)
	c.Reg.PSW.N = r&0x80 != 0
	c.Reg.PSW.V = (^(a ^ b) & (a ^ r) & 0x80) != 0
	c.Reg.PSW.H = (a^b^r)&0x10 != 0
	c.Reg.PSW.Z = r == 0
	c.Reg.PSW.C = sum > 0xFF
	return r
}

// sbc is implemented as adc with the second operand bitwise complemented,
// matching the hardware's shared adder path.
func (c *CPU) sbc(a, b uint8) uint8 {
	return c.adc(a, ^b)
}

// cmp computes a-b for flags only (N,Z,C); the operands are unchanged.
func (c *CPU) cmp(a, b uint8) {
	r := uint16(a) + uint16(^b) + 1
	c.Reg.PSW.N = uint8(r)&0x80 != 0
	c.Reg.PSW.Z = uint8(r) == 0
	c.Reg.PSW.C = r > 0xFF
}

// --- OR A,<mode> --------------------------------------------------------

func opOrDP(c *CPU) int      { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrDP()), bitwiseOR); return 0 }
func opOrAbs(c *CPU) int     { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbs()), bitwiseOR); return 0 }
func opOrIndX(c *CPU) int    { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndX()), bitwiseOR); return 0 }
func opOrIdxInd(c *CPU) int {
	c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndexedIndirect()), bitwiseOR)
	return 0
}
func opOrImm(c *CPU) int     { c.Reg.A = c.applyBitwise(c.Reg.A, c.fetch8(), bitwiseOR); return 0 }
func opOrDPX(c *CPU) int     { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrDPX()), bitwiseOR); return 0 }
func opOrAbsX(c *CPU) int    { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbsX()), bitwiseOR); return 0 }
func opOrAbsY(c *CPU) int    { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbsY()), bitwiseOR); return 0 }
func opOrIndInd(c *CPU) int {
	c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndirectIndexed()), bitwiseOR)
	return 0
}
func opOrDPImm(c *CPU) int {
	dstD := c.fetch8()
	val := c.fetch8()
	addr := c.dp(dstD)
	c.Mem.Write(addr, c.applyBitwise(c.Mem.Read(addr), val, bitwiseOR))
	return 0
}
func opOrDPDP(c *CPU) int {
	dstAddr := c.dp(c.fetch8())
	srcAddr := c.dp(c.fetch8())
	src := c.Mem.Read(srcAddr)
	c.Mem.Write(dstAddr, c.applyBitwise(c.Mem.Read(dstAddr), src, bitwiseOR))
	return 0
}
func opOrIndXIndY(c *CPU) int {
	dstAddr := c.addrIndX()
	src := c.Mem.Read(c.addrIndY())
	c.Mem.Write(dstAddr, c.applyBitwise(c.Mem.Read(dstAddr), src, bitwiseOR))
	return 0
}

// --- AND A,<mode> --------------------------------------------------------

func opAndDP(c *CPU) int   { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrDP()), bitwiseAND); return 0 }
func opAndAbs(c *CPU) int  { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbs()), bitwiseAND); return 0 }
func opAndIndX(c *CPU) int { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndX()), bitwiseAND); return 0 }
func opAndIdxInd(c *CPU) int {
	c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndexedIndirect()), bitwiseAND)
	return 0
}
func opAndImm(c *CPU) int  { c.Reg.A = c.applyBitwise(c.Reg.A, c.fetch8(), bitwiseAND); return 0 }
func opAndDPX(c *CPU) int  { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrDPX()), bitwiseAND); return 0 }
func opAndAbsX(c *CPU) int { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbsX()), bitwiseAND); return 0 }
func opAndAbsY(c *CPU) int { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbsY()), bitwiseAND); return 0 }
func opAndIndInd(c *CPU) int {
	c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndirectIndexed()), bitwiseAND)
	return 0
}
func opAndDPImm(c *CPU) int {
	dstD := c.fetch8()
	val := c.fetch8()
	addr := c.dp(dstD)
	c.Mem.Write(addr, c.applyBitwise(c.Mem.Read(addr), val, bitwiseAND))
	return 0
}
func opAndDPDP(c *CPU) int {
	dstAddr := c.dp(c.fetch8())
	srcAddr := c.dp(c.fetch8())
	src := c.Mem.Read(srcAddr)
	c.Mem.Write(dstAddr, c.applyBitwise(c.Mem.Read(dstAddr), src, bitwiseAND))
	return 0
}
func opAndIndXIndY(c *CPU) int {
	dstAddr := c.addrIndX()
	src := c.Mem.Read(c.addrIndY())
	c.Mem.Write(dstAddr, c.applyBitwise(c.Mem.Read(dstAddr), src, bitwiseAND))
	return 0
}

// --- EOR A,<mode> --------------------------------------------------------

func opEorDP(c *CPU) int   { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrDP()), bitwiseEOR); return 0 }
func opEorAbs(c *CPU) int  { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbs()), bitwiseEOR); return 0 }
func opEorIndX(c *CPU) int { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndX()), bitwiseEOR); return 0 }
func opEorIdxInd(c *CPU) int {
	c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndexedIndirect()), bitwiseEOR)
	return 0
}
func opEorImm(c *CPU) int  { c.Reg.A = c.applyBitwise(c.Reg.A, c.fetch8(), bitwiseEOR); return 0 }
func opEorDPX(c *CPU) int  { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrDPX()), bitwiseEOR); return 0 }
func opEorAbsX(c *CPU) int { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbsX()), bitwiseEOR); return 0 }
func opEorAbsY(c *CPU) int { c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrAbsY()), bitwiseEOR); return 0 }
func opEorIndInd(c *CPU) int {
	c.Reg.A = c.applyBitwise(c.Reg.A, c.Mem.Read(c.addrIndirectIndexed()), bitwiseEOR)
	return 0
}
func opEorDPImm(c *CPU) int {
	dstD := c.fetch8()
	val := c.fetch8()
	addr := c.dp(dstD)
	c.Mem.Write(addr, c.applyBitwise(c.Mem.Read(addr), val, bitwiseEOR))
	return 0
}
func opEorDPDP(c *CPU) int {
	dstAddr := c.dp(c.fetch8())
	srcAddr := c.dp(c.fetch8())
	src := c.Mem.Read(srcAddr)
	c.Mem.Write(dstAddr, c.applyBitwise(c.Mem.Read(dstAddr), src, bitwiseEOR))
	return 0
}
func opEorIndXIndY(c *CPU) int {
	dstAddr := c.addrIndX()
	src := c.Mem.Read(c.addrIndY())
	c.Mem.Write(dstAddr, c.applyBitwise(c.Mem.Read(dstAddr), src, bitwiseEOR))
	return 0
}

// --- CMP A,<mode> --------------------------------------------------------

func opCmpDP(c *CPU) int   { c.cmp(c.Reg.A, c.Mem.Read(c.addrDP())); return 0 }
func opCmpAbs(c *CPU) int  { c.cmp(c.Reg.A, c.Mem.Read(c.addrAbs())); return 0 }
func opCmpIndX(c *CPU) int { c.cmp(c.Reg.A, c.Mem.Read(c.addrIndX())); return 0 }
func opCmpIdxInd(c *CPU) int {
	c.cmp(c.Reg.A, c.Mem.Read(c.addrIndexedIndirect()))
	return 0
}
func opCmpImm(c *CPU) int  { c.cmp(c.Reg.A, c.fetch8()); return 0 }
func opCmpDPX(c *CPU) int  { c.cmp(c.Reg.A, c.Mem.Read(c.addrDPX())); return 0 }
func opCmpAbsX(c *CPU) int { c.cmp(c.Reg.A, c.Mem.Read(c.addrAbsX())); return 0 }
func opCmpAbsY(c *CPU) int { c.cmp(c.Reg.A, c.Mem.Read(c.addrAbsY())); return 0 }
func opCmpIndInd(c *CPU) int {
	c.cmp(c.Reg.A, c.Mem.Read(c.addrIndirectIndexed()))
	return 0
}
func opCmpDPImm(c *CPU) int {
	d := c.fetch8()
	val := c.fetch8()
	c.cmp(c.Mem.Read(c.dp(d)), val)
	return 0
}
func opCmpDPDP(c *CPU) int {
	dstAddr := c.dp(c.fetch8())
	srcAddr := c.dp(c.fetch8())
	c.cmp(c.Mem.Read(dstAddr), c.Mem.Read(srcAddr))
	return 0
}
func opCmpIndXIndY(c *CPU) int {
	dst := c.Mem.Read(c.addrIndX())
	src := c.Mem.Read(c.addrIndY())
	c.cmp(dst, src)
	return 0
}
func opCmpXImm(c *CPU) int { c.cmp(c.Reg.X, c.fetch8()); return 0 }
func opCmpXAbs(c *CPU) int { c.cmp(c.Reg.X, c.Mem.Read(c.addrAbs())); return 0 }
func opCmpXDP(c *CPU) int  { c.cmp(c.Reg.X, c.Mem.Read(c.addrDP())); return 0 }
func opCmpYImm(c *CPU) int { c.cmp(c.Reg.Y, c.fetch8()); return 0 }
func opCmpYAbs(c *CPU) int { c.cmp(c.Reg.Y, c.Mem.Read(c.addrAbs())); return 0 }
func opCmpYDP(c *CPU) int  { c.cmp(c.Reg.Y, c.Mem.Read(c.addrDP())); return 0 }

// --- ADC A,<mode> --------------------------------------------------------

func opAdcDP(c *CPU) int   { c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrDP())); return 0 }
func opAdcAbs(c *CPU) int  { c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrAbs())); return 0 }
func opAdcIndX(c *CPU) int { c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrIndX())); return 0 }
func opAdcIdxInd(c *CPU) int {
	c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrIndexedIndirect()))
	return 0
}
func opAdcImm(c *CPU) int  { c.Reg.A = c.adc(c.Reg.A, c.fetch8()); return 0 }
func opAdcDPX(c *CPU) int  { c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrDPX())); return 0 }
func opAdcAbsX(c *CPU) int { c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrAbsX())); return 0 }
func opAdcAbsY(c *CPU) int { c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrAbsY())); return 0 }
func opAdcIndInd(c *CPU) int {
	c.Reg.A = c.adc(c.Reg.A, c.Mem.Read(c.addrIndirectIndexed()))
	return 0
}
func opAdcDPImm(c *CPU) int {
	d := c.fetch8()
	val := c.fetch8()
	addr := c.dp(d)
	c.Mem.Write(addr, c.adc(c.Mem.Read(addr), val))
	return 0
}
func opAdcDPDP(c *CPU) int {
	dstAddr := c.dp(c.fetch8())
	srcAddr := c.dp(c.fetch8())
	c.Mem.Write(dstAddr, c.adc(c.Mem.Read(dstAddr), c.Mem.Read(srcAddr)))
	return 0
}
func opAdcIndXIndY(c *CPU) int {
	dstAddr := c.addrIndX()
	src := c.Mem.Read(c.addrIndY())
	c.Mem.Write(dstAddr, c.adc(c.Mem.Read(dstAddr), src))
	return 0
}

// --- SBC A,<mode> --------------------------------------------------------

func opSbcDP(c *CPU) int   { c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrDP())); return 0 }
func opSbcAbs(c *CPU) int  { c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrAbs())); return 0 }
func opSbcIndX(c *CPU) int { c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrIndX())); return 0 }
func opSbcIdxInd(c *CPU) int {
	c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrIndexedIndirect()))
	return 0
}
func opSbcImm(c *CPU) int  { c.Reg.A = c.sbc(c.Reg.A, c.fetch8()); return 0 }
func opSbcDPX(c *CPU) int  { c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrDPX())); return 0 }
func opSbcAbsX(c *CPU) int { c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrAbsX())); return 0 }
func opSbcAbsY(c *CPU) int { c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrAbsY())); return 0 }
func opSbcIndInd(c *CPU) int {
	c.Reg.A = c.sbc(c.Reg.A, c.Mem.Read(c.addrIndirectIndexed()))
	return 0
}
func opSbcDPImm(c *CPU) int {
	d := c.fetch8()
	val := c.fetch8()
	addr := c.dp(d)
	c.Mem.Write(addr, c.sbc(c.Mem.Read(addr), val))
	return 0
}
func opSbcDPDP(c *CPU) int {
	dstAddr := c.dp(c.fetch8())
	srcAddr := c.dp(c.fetch8())
	c.Mem.Write(dstAddr, c.sbc(c.Mem.Read(dstAddr), c.Mem.Read(srcAddr)))
	return 0
}
func opSbcIndXIndY(c *CPU) int {
	dstAddr := c.addrIndX()
	src := c.Mem.Read(c.addrIndY())
	c.Mem.Write(dstAddr, c.sbc(c.Mem.Read(dstAddr), src))
	return 0
}
