package record

import (
	"fmt"

	"github.com/arloliu/yad/errs"
	"github.com/arloliu/yad/tag"
	"github.com/arloliu/yad/value"
	"github.com/arloliu/yad/wire"
)

// Row is a named, insertion-ordered collection of Keys, wire-framed
// between 0xF1 and 0xF2 (spec §4.6). Key lookup is by name; names are
// unique within a Row — duplicates are rejected both by AddKey and at
// decode.
//
// The ordering index follows the teacher's byID/byName split (see
// blob.index in the source package this was adapted from): keys holds
// insertion order, byName resolves a name to its slot.
type Row struct {
	Name   string
	keys   []Key
	byName map[string]int
}

// NewRow constructs an empty Row with the given name.
func NewRow(name string) *Row {
	return &Row{Name: name, byName: make(map[string]int)}
}

// AddKey appends k to the row. It returns errs.ErrDuplicateName if a
// key with the same name already exists.
func (r *Row) AddKey(k Key) error {
	if _, exists := r.byName[k.Name]; exists {
		return fmt.Errorf("%w: key %q", errs.ErrDuplicateName, k.Name)
	}

	r.byName[k.Name] = len(r.keys)
	r.keys = append(r.keys, k)

	return nil
}

// GetKey returns the key named name and whether it was found.
func (r *Row) GetKey(name string) (Key, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Key{}, false
	}

	return r.keys[idx], true
}

// RemoveKey deletes the key named name, if present, and reports whether
// it was removed. Removal preserves the relative order of the
// remaining keys.
func (r *Row) RemoveKey(name string) bool {
	idx, ok := r.byName[name]
	if !ok {
		return false
	}

	r.keys = append(r.keys[:idx], r.keys[idx+1:]...)
	delete(r.byName, name)

	for n, i := range r.byName {
		if i > idx {
			r.byName[n] = i - 1
		}
	}

	return true
}

// Keys returns the row's keys in insertion order. The returned slice
// aliases the Row's internal storage and must not be mutated.
func (r *Row) Keys() []Key {
	return r.keys
}

// Encode writes r's wire form: 0xF1, row-name, each key in insertion
// order, 0xF2.
func (r *Row) Encode(e *wire.Encoder) error {
	if err := e.WriteByte(tag.RowStart); err != nil {
		return err
	}

	if err := value.EncodeString(e, tag.FamilyRowName, r.Name); err != nil {
		return err
	}

	for _, k := range r.keys {
		if err := k.Encode(e); err != nil {
			return err
		}
	}

	return e.WriteByte(tag.RowEnd)
}

// DecodeRow reads one Row from c. The caller must have already
// consumed the leading 0xF1 byte.
func DecodeRow(c *wire.Cursor) (*Row, error) {
	nameTag, err := c.ReadByte()
	if err != nil {
		return nil, err
	}

	family, nibble := tag.Split(nameTag)
	if family != tag.FamilyRowName {
		return nil, errs.ErrMalformedRowNameVector
	}

	name, err := value.DecodeName(c, nibble)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRowNameVector, err)
	}

	row := NewRow(name)

	for {
		b, err := c.PeekByte()
		if err != nil {
			return nil, err
		}

		if b == tag.RowEnd {
			c.ReadByte() //nolint:errcheck

			return row, nil
		}

		if b != tag.KeyStart {
			return nil, errs.ErrMalformedRowVector
		}

		c.ReadByte() //nolint:errcheck

		k, err := DecodeKey(c)
		if err != nil {
			return nil, err
		}

		if err := row.AddKey(k); err != nil {
			return nil, err
		}
	}
}
