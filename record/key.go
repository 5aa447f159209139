// Package record implements the Key and Row entities that sit between a
// bare Value and a full Container: a Key pairs a name with a value, and
// a Row pairs a name with an insertion-ordered collection of Keys.
package record

import (
	"fmt"

	"github.com/arloliu/yad/errs"
	"github.com/arloliu/yad/tag"
	"github.com/arloliu/yad/value"
	"github.com/arloliu/yad/wire"
)

// Key is a name/value pair, wire-framed between 0xF3 and 0xF4 (spec
// §4.5).
type Key struct {
	Name  string
	Value value.Value
}

// NewKey constructs a Key. Name's UTF-8 validity is checked at Encode
// time, matching how value.Value defers string validation to the codec
// boundary.
func NewKey(name string, v value.Value) Key {
	return Key{Name: name, Value: v}
}

// Encode writes k's wire form: 0xF3, key-name, value, 0xF4.
func (k Key) Encode(e *wire.Encoder) error {
	if err := e.WriteByte(tag.KeyStart); err != nil {
		return err
	}

	if err := value.EncodeString(e, tag.FamilyKeyName, k.Name); err != nil {
		return err
	}

	if err := k.Value.Encode(e); err != nil {
		return err
	}

	return e.WriteByte(tag.KeyEnd)
}

// DecodeKey reads one Key from c. The caller must have already
// consumed the leading 0xF3 byte.
func DecodeKey(c *wire.Cursor) (Key, error) {
	nameTag, err := c.ReadByte()
	if err != nil {
		return Key{}, err
	}

	family, nibble := tag.Split(nameTag)
	if family != tag.FamilyKeyName {
		return Key{}, errs.ErrMalformedKeyNameVector
	}

	name, err := value.DecodeName(c, nibble)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", errs.ErrMalformedKeyNameVector, err)
	}

	v, err := value.Decode(c)
	if err != nil {
		return Key{}, err
	}

	end, err := c.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if end != tag.KeyEnd {
		return Key{}, errs.ErrMalformedKeyVector
	}

	return Key{Name: name, Value: v}, nil
}
