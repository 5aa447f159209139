package value

import (
	"fmt"

	"github.com/arloliu/yad/errs"
)

func notA(k Kind, v Value) error {
	return fmt.Errorf("%w: expected %s, got %s", errs.ErrValueIsNotA, k, v.kind)
}

func (v Value) AsUint8() (uint8, error) {
	if v.kind != KindUint8 {
		return 0, notA(KindUint8, v)
	}

	return uint8(v.num), nil
}

func (v Value) AsUint16() (uint16, error) {
	if v.kind != KindUint16 {
		return 0, notA(KindUint16, v)
	}

	return uint16(v.num), nil
}

func (v Value) AsUint32() (uint32, error) {
	if v.kind != KindUint32 {
		return 0, notA(KindUint32, v)
	}

	return uint32(v.num), nil
}

func (v Value) AsUint64() (uint64, error) {
	if v.kind != KindUint64 {
		return 0, notA(KindUint64, v)
	}

	return v.num, nil
}

func (v Value) AsInt8() (int8, error) {
	if v.kind != KindInt8 {
		return 0, notA(KindInt8, v)
	}

	return int8(uint8(v.num)), nil
}

func (v Value) AsInt16() (int16, error) {
	if v.kind != KindInt16 {
		return 0, notA(KindInt16, v)
	}

	return int16(uint16(v.num)), nil
}

func (v Value) AsInt32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, notA(KindInt32, v)
	}

	return int32(uint32(v.num)), nil
}

func (v Value) AsInt64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, notA(KindInt64, v)
	}

	return int64(v.num), nil
}

func (v Value) AsFloat8() (float32, error) {
	if v.kind != KindFloat8 {
		return 0, notA(KindFloat8, v)
	}

	return v.f32, nil
}

func (v Value) AsFloat16() (float32, error) {
	if v.kind != KindFloat16 {
		return 0, notA(KindFloat16, v)
	}

	return v.f32, nil
}

func (v Value) AsFloat32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, notA(KindFloat32, v)
	}

	return v.f32, nil
}

func (v Value) AsFloat64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, notA(KindFloat64, v)
	}

	return v.f64, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", notA(KindString, v)
	}

	return v.str, nil
}

// AsArray returns the element slice of an Array Value. The returned
// slice aliases v's internal storage and must not be mutated.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, notA(KindArray, v)
	}

	return v.arr, nil
}

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, notA(KindBool, v)
	}

	return v.num != 0, nil
}
