package core

// Builder can create instruction records.
type Builder struct {
	rec Record
}

// NewBuilder returns a builder preset with the instruction schema header.
func NewBuilder() Builder {
	return Builder{
		rec: Record{
			Schema: "inst_schema.json#",
			Kind:   "instruction",
		},
	}
}

// WithSchema sets the $schema reference.
func (b Builder) WithSchema(schema string) Builder {
	b.rec.Schema = schema
	return b
}

// WithKind sets the document kind.
func (b Builder) WithKind(kind string) Builder {
	b.rec.Kind = kind
	return b
}

// WithName sets the mnemonic.
func (b Builder) WithName(name string) Builder {
	b.rec.Name = name
	return b
}

// WithLongName sets the human readable name.
func (b Builder) WithLongName(longName string) Builder {
	b.rec.LongName = longName
	return b
}

// WithDescription sets the multi-line description.
func (b Builder) WithDescription(description string) Builder {
	b.rec.Description = description
	return b
}

// WithDefinedBy sets the defining extension.
func (b Builder) WithDefinedBy(definedBy string) Builder {
	b.rec.DefinedBy = definedBy
	return b
}

// WithAssembly sets the assembly operand format.
func (b Builder) WithAssembly(assembly string) Builder {
	b.rec.Assembly = assembly
	return b
}

// WithEncoding sets the flow-style encoding mapping.
func (b Builder) WithEncoding(encoding string) Builder {
	b.rec.Encoding = encoding
	return b
}

// WithAccess sets the flow-style access mapping.
func (b Builder) WithAccess(access string) Builder {
	b.rec.Access = access
	return b
}

func (b Builder) WithOperation(operation string) Builder {
	b.rec.Operation = operation
	return b
}

func (b Builder) WithSail(sail string) Builder {
	b.rec.Sail = sail
	return b
}

// Build creates the record.
func (b Builder) Build() Record {
	return b.rec
}
