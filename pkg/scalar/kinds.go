package scalar

import "github.com/x448/float16"

// Half is an IEEE 754 binary16 value. It is a storage kind: convert to
// float32 before doing arithmetic.
type Half = float16.Float16

// ToHalf rounds f to the nearest Half.
func ToHalf(f float32) Half {
	return float16.Fromfloat32(f)
}

// Unorm8 stores a value in [0, 1] in 8 bits, 0 mapping to 0 and 255 to 1.
type Unorm8 uint8

// ToUnorm8 clamps f to [0, 1] and rounds it to the nearest step.
func ToUnorm8(f float32) Unorm8 {
	f = Clamp(f, 0, 1)
	return Unorm8(f*255 + 0.5)
}

// Float32 expands u to [0, 1].
func (u Unorm8) Float32() float32 {
	return float32(u) / 255
}
