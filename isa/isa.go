// Package isa holds the instruction records known to the module.
package isa

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sarchlab/instyaml/core"
)

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("instruction already registered")
	// ErrUnnamed is returned when a record without a name is registered.
	ErrUnnamed = errors.New("instruction has no name")
)

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from instruction name to its record.
	nameToRecord map[string]core.Record
}

// Constructor for ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		nameToRecord: make(map[string]core.Record),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Register adds an instruction record to the ISA.
func (isa *ISA) Register(rec core.Record) error {
	if rec.Name == "" {
		return ErrUnnamed
	}

	if _, ok := isa.nameToRecord[rec.Name]; ok {
		return fmt.Errorf("%s: %w", rec.Name, ErrDuplicate)
	}

	isa.nameToRecord[rec.Name] = rec
	core.Trace("Registered instruction", "isa", isa.isaName, "name", rec.Name)

	return nil
}

// Lookup finds an instruction by name.
func (isa *ISA) Lookup(name string) (core.Record, bool) {
	rec, ok := isa.nameToRecord[name]
	return rec, ok
}

// Names lists the registered instruction names in sorted order.
func (isa *ISA) Names() []string {
	names := make([]string, 0, len(isa.nameToRecord))
	for name := range isa.nameToRecord {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

var (
	defaultISA     *ISA
	defaultISAOnce sync.Once
)

// Default returns the ISA with every built-in instruction registered. It is
// built on first use and must not be modified.
func Default() *ISA {
	defaultISAOnce.Do(func() {
		defaultISA = NewISA("RISC-V Unified ISA")
		if err := defaultISA.Register(LW()); err != nil {
			panic(err)
		}
	})

	return defaultISA
}
