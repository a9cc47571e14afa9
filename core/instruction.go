package core

// Record describes one instruction the way riscv-unified-db does. All fields
// are plain strings. Nested YAML values (encoding, access) are held in their
// single-line flow form.
type Record struct {
	Schema      string // $schema
	Kind        string
	Name        string
	LongName    string
	Description string
	DefinedBy   string
	Assembly    string
	Encoding    string
	Access      string
	Operation   string // operation()
	Sail        string // sail()
}

// Get returns the value stored under a YAML key of the default layout.
func (r Record) Get(key string) (string, bool) {
	for _, f := range DefaultLayout() {
		if f.Key == key {
			return f.Value(r), true
		}
	}

	return "", false
}
