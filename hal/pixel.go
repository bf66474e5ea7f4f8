package hal

import "encoding/binary"

// rgb565 is one framebuffer pixel, stored little-endian.
type rgb565 uint16

func packRGB565(r, g, b uint8) rgb565 {
	return rgb565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

func loadRGB565(buf []byte) rgb565 { return rgb565(binary.LittleEndian.Uint16(buf)) }

func (p rgb565) store(buf []byte) { binary.LittleEndian.PutUint16(buf, uint16(p)) }

// rgb888 expands each channel so that full scale maps to 0xFF.
func (p rgb565) rgb888() (r, g, b uint8) {
	r5, g6, b5 := uint16(p>>11)&0x1F, uint16(p>>5)&0x3F, uint16(p)&0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}
