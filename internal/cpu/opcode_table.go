package cpu

// opcodeTable and cycleTable together describe all 256 SPC700 opcodes.
// Reconstructed from the well-documented public SPC700 instruction set
// (the mnemonic layout and base cycle counts are common knowledge across
// SPC700 emulation writeups); this is not a transcription of any single
// source file. Conditional branches report their not-taken cost here;
// branchIf adds +2 when the branch is taken.

var opcodeTable = [256]func(*CPU) int{
	0x00: opNop, 0x01: opTcall0, 0x02: opSet1Bit0, 0x03: opBbsBit0,
	0x04: opOrDP, 0x05: opOrAbs, 0x06: opOrIndX, 0x07: opOrIdxInd,
	0x08: opOrImm, 0x09: opOrDPDP, 0x0A: opOr1, 0x0B: opAslDP,
	0x0C: opAslAbs, 0x0D: opPushPSW, 0x0E: opTset1, 0x0F: opBrk,

	0x10: opBpl, 0x11: opTcall1, 0x12: opClr1Bit0, 0x13: opBbcBit0,
	0x14: opOrDPX, 0x15: opOrAbsX, 0x16: opOrAbsY, 0x17: opOrIndInd,
	0x18: opOrDPImm, 0x19: opOrIndXIndY, 0x1A: opDecwDP, 0x1B: opAslDPX,
	0x1C: opAslA, 0x1D: opDecX, 0x1E: opCmpXAbs, 0x1F: opJmpAbsIndX,

	0x20: opClrp, 0x21: opTcall2, 0x22: opSet1Bit1, 0x23: opBbsBit1,
	0x24: opAndDP, 0x25: opAndAbs, 0x26: opAndIndX, 0x27: opAndIdxInd,
	0x28: opAndImm, 0x29: opAndDPDP, 0x2A: opOr1Inv, 0x2B: opRolDP,
	0x2C: opRolAbs, 0x2D: opPushA, 0x2E: opCbneDP, 0x2F: opBra,

	0x30: opBmi, 0x31: opTcall3, 0x32: opClr1Bit1, 0x33: opBbcBit1,
	0x34: opAndDPX, 0x35: opAndAbsX, 0x36: opAndAbsY, 0x37: opAndIndInd,
	0x38: opAndDPImm, 0x39: opAndIndXIndY, 0x3A: opIncwDP, 0x3B: opRolDPX,
	0x3C: opRolA, 0x3D: opIncX, 0x3E: opCmpXDP, 0x3F: opCallAbs,

	0x40: opSetp, 0x41: opTcall4, 0x42: opSet1Bit2, 0x43: opBbsBit2,
	0x44: opEorDP, 0x45: opEorAbs, 0x46: opEorIndX, 0x47: opEorIdxInd,
	0x48: opEorImm, 0x49: opEorDPDP, 0x4A: opAnd1, 0x4B: opLsrDP,
	0x4C: opLsrAbs, 0x4D: opPushX, 0x4E: opTclr1, 0x4F: opPcall,

	0x50: opBvc, 0x51: opTcall5, 0x52: opClr1Bit2, 0x53: opBbcBit2,
	0x54: opEorDPX, 0x55: opEorAbsX, 0x56: opEorAbsY, 0x57: opEorIndInd,
	0x58: opEorDPImm, 0x59: opEorIndXIndY, 0x5A: opCmpwYA, 0x5B: opLsrDPX,
	0x5C: opLsrA, 0x5D: opMovXA, 0x5E: opCmpYAbs, 0x5F: opJmpAbs,

	0x60: opClrc, 0x61: opTcall6, 0x62: opSet1Bit3, 0x63: opBbsBit3,
	0x64: opCmpDP, 0x65: opCmpAbs, 0x66: opCmpIndX, 0x67: opCmpIdxInd,
	0x68: opCmpImm, 0x69: opCmpDPDP, 0x6A: opAnd1Inv, 0x6B: opRorDP,
	0x6C: opRorAbs, 0x6D: opPushY, 0x6E: opDbnzDP, 0x6F: opRet,

	0x70: opBvs, 0x71: opTcall7, 0x72: opClr1Bit3, 0x73: opBbcBit3,
	0x74: opCmpDPX, 0x75: opCmpAbsX, 0x76: opCmpAbsY, 0x77: opCmpIndInd,
	0x78: opCmpDPImm, 0x79: opCmpIndXIndY, 0x7A: opAddwYA, 0x7B: opRorDPX,
	0x7C: opRorA, 0x7D: opMovAX, 0x7E: opCmpYDP, 0x7F: opReti,

	0x80: opSetc, 0x81: opTcall8, 0x82: opSet1Bit4, 0x83: opBbsBit4,
	0x84: opAdcDP, 0x85: opAdcAbs, 0x86: opAdcIndX, 0x87: opAdcIdxInd,
	0x88: opAdcImm, 0x89: opAdcDPDP, 0x8A: opEor1, 0x8B: opDecDP,
	0x8C: opDecAbs, 0x8D: opMovYImm, 0x8E: opPopPSW, 0x8F: opMovDPImm,

	0x90: opBcc, 0x91: opTcall9, 0x92: opClr1Bit4, 0x93: opBbcBit4,
	0x94: opAdcDPX, 0x95: opAdcAbsX, 0x96: opAdcAbsY, 0x97: opAdcIndInd,
	0x98: opAdcDPImm, 0x99: opAdcIndXIndY, 0x9A: opSubwYA, 0x9B: opDecDPX,
	0x9C: opDecA, 0x9D: opMovXSP, 0x9E: opDiv, 0x9F: opXcn,

	0xA0: opEi, 0xA1: opTcall10, 0xA2: opSet1Bit5, 0xA3: opBbsBit5,
	0xA4: opSbcDP, 0xA5: opSbcAbs, 0xA6: opSbcIndX, 0xA7: opSbcIdxInd,
	0xA8: opSbcImm, 0xA9: opSbcDPDP, 0xAA: opMov1ToC, 0xAB: opIncDP,
	0xAC: opIncAbs, 0xAD: opCmpYImm, 0xAE: opPopA, 0xAF: opMovIndXIncA,

	0xB0: opBcs, 0xB1: opTcall11, 0xB2: opClr1Bit5, 0xB3: opBbcBit5,
	0xB4: opSbcDPX, 0xB5: opSbcAbsX, 0xB6: opSbcAbsY, 0xB7: opSbcIndInd,
	0xB8: opSbcDPImm, 0xB9: opSbcIndXIndY, 0xBA: opMovwYADP, 0xBB: opIncDPX,
	0xBC: opIncA, 0xBD: opMovSPX, 0xBE: opDas, 0xBF: opMovAIndXInc,

	0xC0: opDi, 0xC1: opTcall12, 0xC2: opSet1Bit6, 0xC3: opBbsBit6,
	0xC4: opMovDPA, 0xC5: opMovAbsA, 0xC6: opMovIndXA, 0xC7: opMovIdxIndA,
	0xC8: opCmpXImm, 0xC9: opMovAbsX2, 0xCA: opMov1FromC, 0xCB: opMovDPY,
	0xCC: opMovAbsY2, 0xCD: opMovXImm, 0xCE: opPopX, 0xCF: opMul,

	0xD0: opBne, 0xD1: opTcall13, 0xD2: opClr1Bit6, 0xD3: opBbcBit6,
	0xD4: opMovDPXA, 0xD5: opMovAbsXA, 0xD6: opMovAbsYA, 0xD7: opMovIndIndA,
	0xD8: opMovDPX, 0xD9: opMovDPYX, 0xDA: opMovwDPYA, 0xDB: opMovDPXY,
	0xDC: opDecY, 0xDD: opMovAY, 0xDE: opCbneDPX, 0xDF: opDaa,

	0xE0: opClrv, 0xE1: opTcall14, 0xE2: opSet1Bit7, 0xE3: opBbsBit7,
	0xE4: opMovADP, 0xE5: opMovAAbs, 0xE6: opMovAIndX, 0xE7: opMovAIdxInd,
	0xE8: opMovAImm, 0xE9: opMovXAbs, 0xEA: opNot1, 0xEB: opMovYDP,
	0xEC: opMovYAbs, 0xED: opNotc, 0xEE: opPopY, 0xEF: opSleep,

	0xF0: opBeq, 0xF1: opTcall15, 0xF2: opClr1Bit7, 0xF3: opBbcBit7,
	0xF4: opMovADPX, 0xF5: opMovAAbsX, 0xF6: opMovAAbsY, 0xF7: opMovAIndInd,
	0xF8: opMovXDP, 0xF9: opMovXDPY, 0xFA: opMovDPDP, 0xFB: opMovYDPX,
	0xFC: opIncY, 0xFD: opMovYA, 0xFE: opDbnzY, 0xFF: opStop,
}

var cycleTable = [256]int{
	0x00: 2, 0x01: 8, 0x02: 4, 0x03: 5, 0x04: 3, 0x05: 4, 0x06: 3, 0x07: 6,
	0x08: 2, 0x09: 6, 0x0A: 5, 0x0B: 4, 0x0C: 5, 0x0D: 4, 0x0E: 6, 0x0F: 8,

	0x10: 2, 0x11: 8, 0x12: 4, 0x13: 5, 0x14: 4, 0x15: 5, 0x16: 5, 0x17: 6,
	0x18: 5, 0x19: 5, 0x1A: 6, 0x1B: 5, 0x1C: 2, 0x1D: 2, 0x1E: 4, 0x1F: 6,

	0x20: 2, 0x21: 8, 0x22: 4, 0x23: 5, 0x24: 3, 0x25: 4, 0x26: 3, 0x27: 6,
	0x28: 2, 0x29: 6, 0x2A: 5, 0x2B: 4, 0x2C: 5, 0x2D: 4, 0x2E: 5, 0x2F: 4,

	0x30: 2, 0x31: 8, 0x32: 4, 0x33: 5, 0x34: 4, 0x35: 5, 0x36: 5, 0x37: 6,
	0x38: 5, 0x39: 5, 0x3A: 6, 0x3B: 5, 0x3C: 2, 0x3D: 2, 0x3E: 3, 0x3F: 8,

	0x40: 2, 0x41: 8, 0x42: 4, 0x43: 5, 0x44: 3, 0x45: 4, 0x46: 3, 0x47: 6,
	0x48: 2, 0x49: 6, 0x4A: 4, 0x4B: 4, 0x4C: 5, 0x4D: 4, 0x4E: 6, 0x4F: 6,

	0x50: 2, 0x51: 8, 0x52: 4, 0x53: 5, 0x54: 4, 0x55: 5, 0x56: 5, 0x57: 6,
	0x58: 5, 0x59: 5, 0x5A: 4, 0x5B: 5, 0x5C: 2, 0x5D: 2, 0x5E: 4, 0x5F: 3,

	0x60: 2, 0x61: 8, 0x62: 4, 0x63: 5, 0x64: 3, 0x65: 4, 0x66: 3, 0x67: 6,
	0x68: 2, 0x69: 6, 0x6A: 4, 0x6B: 4, 0x6C: 5, 0x6D: 4, 0x6E: 5, 0x6F: 5,

	0x70: 2, 0x71: 8, 0x72: 4, 0x73: 5, 0x74: 4, 0x75: 5, 0x76: 5, 0x77: 6,
	0x78: 5, 0x79: 5, 0x7A: 5, 0x7B: 5, 0x7C: 2, 0x7D: 2, 0x7E: 3, 0x7F: 6,

	0x80: 2, 0x81: 8, 0x82: 4, 0x83: 5, 0x84: 3, 0x85: 4, 0x86: 3, 0x87: 6,
	0x88: 2, 0x89: 6, 0x8A: 5, 0x8B: 4, 0x8C: 5, 0x8D: 2, 0x8E: 4, 0x8F: 5,

	0x90: 2, 0x91: 8, 0x92: 4, 0x93: 5, 0x94: 4, 0x95: 5, 0x96: 5, 0x97: 6,
	0x98: 5, 0x99: 5, 0x9A: 5, 0x9B: 5, 0x9C: 2, 0x9D: 2, 0x9E: 12, 0x9F: 5,

	0xA0: 3, 0xA1: 8, 0xA2: 4, 0xA3: 5, 0xA4: 3, 0xA5: 4, 0xA6: 3, 0xA7: 6,
	0xA8: 2, 0xA9: 6, 0xAA: 4, 0xAB: 4, 0xAC: 5, 0xAD: 2, 0xAE: 4, 0xAF: 4,

	0xB0: 2, 0xB1: 8, 0xB2: 4, 0xB3: 5, 0xB4: 4, 0xB5: 5, 0xB6: 5, 0xB7: 6,
	0xB8: 5, 0xB9: 5, 0xBA: 5, 0xBB: 5, 0xBC: 2, 0xBD: 2, 0xBE: 3, 0xBF: 4,

	0xC0: 3, 0xC1: 8, 0xC2: 4, 0xC3: 5, 0xC4: 4, 0xC5: 5, 0xC6: 4, 0xC7: 7,
	0xC8: 2, 0xC9: 5, 0xCA: 6, 0xCB: 4, 0xCC: 5, 0xCD: 2, 0xCE: 4, 0xCF: 9,

	0xD0: 2, 0xD1: 8, 0xD2: 4, 0xD3: 5, 0xD4: 5, 0xD5: 6, 0xD6: 6, 0xD7: 7,
	0xD8: 4, 0xD9: 5, 0xDA: 5, 0xDB: 5, 0xDC: 2, 0xDD: 2, 0xDE: 6, 0xDF: 3,

	0xE0: 2, 0xE1: 8, 0xE2: 4, 0xE3: 5, 0xE4: 3, 0xE5: 4, 0xE6: 3, 0xE7: 6,
	0xE8: 2, 0xE9: 4, 0xEA: 5, 0xEB: 3, 0xEC: 4, 0xED: 3, 0xEE: 4, 0xEF: 3,

	0xF0: 2, 0xF1: 8, 0xF2: 4, 0xF3: 5, 0xF4: 4, 0xF5: 5, 0xF6: 5, 0xF7: 6,
	0xF8: 3, 0xF9: 4, 0xFA: 5, 0xFB: 4, 0xFC: 2, 0xFD: 2, 0xFE: 5, 0xFF: 3,
}
