package container

import (
	"fmt"

	"github.com/arloliu/yad/errs"
	"github.com/arloliu/yad/internal/hash"
	"github.com/arloliu/yad/record"
	"github.com/arloliu/yad/tag"
	"github.com/arloliu/yad/wire"
)

// Container is the top-level YAD document: a Version header followed
// by an insertion-ordered collection of Rows (spec §4.7). Row lookup is
// by name; row names are unique within a Container — duplicates are
// rejected both by AddRow and at decode.
type Container struct {
	Version Version
	rows    []*record.Row
	byName  map[string]int
}

// New constructs an empty Container with the given version header.
func New(v Version) *Container {
	return &Container{Version: v, byName: make(map[string]int)}
}

// AddRow appends r to the container. It returns errs.ErrDuplicateName
// if a row with the same name already exists.
func (c *Container) AddRow(r *record.Row) error {
	if _, exists := c.byName[r.Name]; exists {
		return fmt.Errorf("%w: row %q", errs.ErrDuplicateName, r.Name)
	}

	c.byName[r.Name] = len(c.rows)
	c.rows = append(c.rows, r)

	return nil
}

// GetRow returns the row named name and whether it was found.
func (c *Container) GetRow(name string) (*record.Row, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return nil, false
	}

	return c.rows[idx], true
}

// RemoveRow deletes the row named name, if present, and reports
// whether it was removed. Removal preserves the relative order of the
// remaining rows.
func (c *Container) RemoveRow(name string) bool {
	idx, ok := c.byName[name]
	if !ok {
		return false
	}

	c.rows = append(c.rows[:idx], c.rows[idx+1:]...)
	delete(c.byName, name)

	for n, i := range c.byName {
		if i > idx {
			c.byName[n] = i - 1
		}
	}

	return true
}

// Rows returns the container's rows in insertion order. The returned
// slice aliases the Container's internal storage and must not be
// mutated.
func (c *Container) Rows() []*record.Row {
	return c.rows
}

// Serialize encodes c to its wire form: the version header followed by
// each row in insertion order.
func (c *Container) Serialize() ([]byte, error) {
	e := wire.NewEncoder()
	defer e.Release()

	if err := e.WriteByte(tag.VersionHeader); err != nil {
		return nil, err
	}

	e.WriteUint8(c.Version.Major)
	e.WriteUint8(c.Version.Minor)
	e.WriteUint8(c.Version.Patch)
	e.WriteUint8(c.Version.Beta)

	for _, r := range c.rows {
		if err := r.Encode(e); err != nil {
			return nil, err
		}
	}

	out := make([]byte, e.Len())
	copy(out, e.Bytes())

	return out, nil
}

// Deserialize decodes a Container from data. The input must begin with
// a version header; a zero-byte input or any other leading byte fails
// with errs.ErrMalformedVersionHeader.
func Deserialize(data []byte) (*Container, error) {
	c := wire.NewCursor(data)

	header, err := c.ReadByte()
	if err != nil {
		return nil, errs.ErrMalformedVersionHeader
	}
	if header != tag.VersionHeader {
		return nil, errs.ErrMalformedVersionHeader
	}

	var major, minor, patch, beta byte
	for _, dst := range []*byte{&major, &minor, &patch, &beta} {
		b, err := c.ReadByte()
		if err != nil {
			return nil, errs.ErrMalformedVersionHeader
		}
		*dst = b
	}

	cont := New(NewVersion(major, minor, patch, beta))

	for !c.Done() {
		b, err := c.PeekByte()
		if err != nil {
			return nil, err
		}

		if b != tag.RowStart {
			return nil, errs.ErrMalformedContainer
		}

		c.ReadByte() //nolint:errcheck

		row, err := record.DecodeRow(c)
		if err != nil {
			return nil, err
		}

		if err := cont.AddRow(row); err != nil {
			return nil, err
		}
	}

	return cont, nil
}

// ContentHash returns the xxHash64 of c's serialized wire form. It is
// a cheap, non-cryptographic fingerprint useful for deduplication or
// change detection, not for integrity verification against a malicious
// peer.
func (c *Container) ContentHash() (uint64, error) {
	b, err := c.Serialize()
	if err != nil {
		return 0, err
	}

	return hash.Bytes(b), nil
}
