package dsp

// BRR (Bit Rate Reduction) block decoding: 9-byte blocks, each a 1-byte
// header (shift nibble, 2-bit filter, loop flag, end flag) followed by 16
// four-bit signed samples.

// BRRHeader is the decoded first byte of a BRR block.
type BRRHeader struct {
	Shift  uint8
	Filter uint8
	Loop   bool
	End    bool
}

func DecodeBRRHeader(b uint8) BRRHeader {
	return BRRHeader{
		Shift:  b >> 4,
		Filter: (b >> 2) & 0x03,
		Loop:   b&0x02 != 0,
		End:    b&0x01 != 0,
	}
}

func clampSample(v int32) int16 {
	if v > 0x7FFF {
		return 0x7FFF
	}
	if v < -0x8000 {
		return -0x8000
	}
	return int16(v)
}

// DecodeBRRBlock decodes one 9-byte BRR block into 16 PCM samples, given
// the two most recent previously-decoded samples (old1 is the most
// recent, old2 the one before it) for filter prediction.
func DecodeBRRBlock(block [9]byte, old1, old2 int32) (samples [16]int16, header BRRHeader) {
	header = DecodeBRRHeader(block[0])

	nibbles := [16]int8{}
	for i := 0; i < 8; i++ {
		byt := block[1+i]
		hi := int8(byt) >> 4
		lo := int8(byt<<4) >> 4
		nibbles[i*2] = hi
		nibbles[i*2+1] = lo
	}

	p1, p2 := old1, old2
	for i, nib := range nibbles {
		var s int32
		if header.Shift <= 12 {
			s = (int32(nib) << header.Shift) >> 1
		} else {
			// Shift values 13-15 are a documented hardware quirk: the
			// decoder collapses to either 0 or -2048 depending on sign,
			// effectively zeroing the low bits of the sample.
			if nib < 0 {
				s = -2048
			} else {
				s = 0
			}
		}

		switch header.Filter {
		case 1:
			s += p1 + ((-p1) >> 4)
		case 2:
			s += p1*2 + ((-(p1 * 3)) >> 5)
			s -= p2
			s += p2 >> 4
		case 3:
			s += p1*2 + ((-(p1 * 13)) >> 6)
			s -= p2
			s += (p2 * 3) >> 4
		}

		out := clampSample(s)
		samples[i] = out
		p2 = p1
		p1 = int32(out)
	}
	return samples, header
}
