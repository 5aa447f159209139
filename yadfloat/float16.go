package yadfloat

import (
	"math"

	"github.com/arloliu/yad/errs"
)

// Float16 layout: 1 sign bit, 5 exponent bits (bias 15), 10 mantissa
// bits — standard IEEE-754 binary16.
const (
	float16ExpBits = 5
	float16ManBits = 10
	float16Bias    = 15
	float16ExpMask = 0x1F
	float16ManMask = 0x3FF
	float16NaN     = 0x7E00 // sign=0, exponent=11111, mantissa=1000000000
	float16MaxNorm = 65504.0
	// float16MinSubnormal is the smallest positive magnitude
	// representable (mantissa=1, exponent=0): 2^-24 ≈ 5.96e-8.
	float16MinSubnormal = 1.0 / (1 << 24)
)

// EncodeFloat16 converts v to its IEEE-754 binary16 bit pattern.
//
// NaN inputs canonicalize to the quiet NaN pattern 0x7E00. Infinities
// round-trip exactly, since binary16 natively represents them. Zero
// (of either sign) round-trips exactly. Any other finite value whose
// magnitude falls outside the representable range fails with
// errs.ErrNumberOutOfRange.
func EncodeFloat16(v float32) (uint16, error) {
	if math.IsNaN(float64(v)) {
		return float16NaN, nil
	}

	bits32 := math.Float32bits(v)
	sign := uint16(bits32>>31) & 1

	if v == 0 {
		return sign << 15, nil
	}

	mag := math.Abs(float64(v))
	if math.IsInf(mag, 1) {
		return sign<<15 | float16ExpMask<<float16ManBits, nil
	}

	if mag > float16MaxNorm+halfULPAt(float16MaxNorm, float16ManBits) {
		return 0, errs.ErrNumberOutOfRange
	}

	if mag < float16MinSubnormal/2 {
		return 0, errs.ErrNumberOutOfRange
	}

	frac, exp := math.Frexp(mag)
	unbiasedExp := exp - 1
	normMantissa := 2*frac - 1

	const minUnbiasedExp = 1 - float16Bias

	if unbiasedExp < minUnbiasedExp {
		step := math.Ldexp(1, minUnbiasedExp-float16ManBits)
		mantissa := roundToEven(mag / step)
		if mantissa == 0 {
			return 0, errs.ErrNumberOutOfRange
		}
		if mantissa > float16ManMask {
			return sign<<15 | (1 << float16ManBits), nil
		}

		return sign<<15 | uint16(mantissa), nil
	}

	mantissa := roundToEven(normMantissa * (1 << float16ManBits))
	biasedExp := unbiasedExp + float16Bias

	if mantissa == 1<<float16ManBits {
		mantissa = 0
		biasedExp++
	}

	if biasedExp >= (1<<float16ExpBits)-1 {
		return 0, errs.ErrNumberOutOfRange
	}

	return sign<<15 | uint16(biasedExp)<<float16ManBits | uint16(mantissa), nil
}

// DecodeFloat16 converts an IEEE-754 binary16 bit pattern back to
// float32.
func DecodeFloat16(bits uint16) float32 {
	sign := (bits >> 15) & 1
	exp := (bits >> float16ManBits) & float16ExpMask
	man := bits & float16ManMask

	var mag float64

	switch {
	case exp == float16ExpMask:
		if man == 0 {
			mag = math.Inf(1)
		} else {
			return float32(math.NaN())
		}
	case exp == 0:
		if man == 0 {
			mag = 0
		} else {
			mag = float64(man) * math.Ldexp(1, (1-float16Bias)-float16ManBits)
		}
	default:
		mantissaValue := 1 + float64(man)/float64(uint(1)<<float16ManBits)
		mag = mantissaValue * math.Ldexp(1, int(exp)-float16Bias)
	}

	if sign == 1 {
		mag = -mag
	}

	return float32(mag)
}
