package hwio

// FieldMask64 returns a mask of width low bits.
func FieldMask64(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (1 << width) - 1
}

func GetBit64(v uint64, n uint) bool {
	return v>>n&0x01 != 0
}

// GetField64 extracts the width bits of v starting at bit off.
func GetField64(v uint64, off, width uint) uint64 {
	return (v >> off) & FieldMask64(width)
}

// PutField64 replaces the width bits of *v starting at bit off with x. x must
// already fit in width bits, extra bits are discarded.
func PutField64(v *uint64, off, width uint, x uint64) {
	mask := FieldMask64(width) << off
	*v = (*v &^ mask) | ((x << off) & mask)
}

func SetBit64(v *uint64, n uint) {
	*v |= 1 << n
}

func ClearBit64(v *uint64, n uint) {
	*v &^= 1 << n
}

// FitsField reports whether x can be represented in width bits.
func FitsField(x uint64, width uint) bool {
	return x&^FieldMask64(width) == 0
}
