package core

import "fmt"

// FieldKind tells the emitter how a value is written.
type FieldKind int

const (
	// Scalar fields are written as a single `key: value` line.
	Scalar FieldKind = iota
	// Block fields are written as a `key: |` literal with indented lines.
	Block
)

func (k FieldKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Block:
		return "block"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field binds a YAML key to the record value it prints.
type Field struct {
	Key   string
	Kind  FieldKind
	Value func(Record) string
}

// Layout is the ordered list of fields of a document.
type Layout []Field

// Keys lists the keys in output order.
func (l Layout) Keys() []string {
	keys := make([]string, 0, len(l))
	for _, f := range l {
		keys = append(keys, f.Key)
	}
	return keys
}

// DefaultLayout returns the instruction document layout. A new slice is
// returned on every call.
func DefaultLayout() Layout {
	return Layout{
		{Key: "$schema", Kind: Scalar, Value: func(r Record) string { return r.Schema }},
		{Key: "kind", Kind: Scalar, Value: func(r Record) string { return r.Kind }},
		{Key: "name", Kind: Scalar, Value: func(r Record) string { return r.Name }},
		{Key: "long_name", Kind: Scalar, Value: func(r Record) string { return r.LongName }},
		{Key: "description", Kind: Block, Value: func(r Record) string { return r.Description }},
		{Key: "definedBy", Kind: Scalar, Value: func(r Record) string { return r.DefinedBy }},
		{Key: "assembly", Kind: Scalar, Value: func(r Record) string { return r.Assembly }},
		{Key: "encoding", Kind: Scalar, Value: func(r Record) string { return r.Encoding }},
		{Key: "access", Kind: Scalar, Value: func(r Record) string { return r.Access }},
		{Key: "operation()", Kind: Block, Value: func(r Record) string { return r.Operation }},
		{Key: "sail()", Kind: Block, Value: func(r Record) string { return r.Sail }},
	}
}
