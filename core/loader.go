package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingName is returned when an instruction document has no name.
var ErrMissingName = errors.New("instruction has no name")

// LoadRecordFromYAML reads a riscv-unified-db instruction file.
func LoadRecordFromYAML(filePath string) (Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return Record{}, fmt.Errorf("failed to open instruction file: %w", err)
	}
	defer f.Close()

	rec, err := DecodeRecord(f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", filePath, err)
	}

	Trace("Loaded instruction", "path", filePath, "name", rec.Name)

	return rec, nil
}

// DecodeRecord parses one instruction document. Keys that the record does not
// carry are ignored. Mappings and sequences are kept as flow-style text.
func DecodeRecord(r io.Reader) (Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Record{}, fmt.Errorf("failed to parse instruction YAML: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 ||
		doc.Content[0].Kind != yaml.MappingNode {
		return Record{}, errors.New("instruction YAML is not a mapping")
	}

	var rec Record
	targets := map[string]*string{
		"$schema":     &rec.Schema,
		"kind":        &rec.Kind,
		"name":        &rec.Name,
		"long_name":   &rec.LongName,
		"description": &rec.Description,
		"definedBy":   &rec.DefinedBy,
		"assembly":    &rec.Assembly,
		"encoding":    &rec.Encoding,
		"access":      &rec.Access,
		"operation()": &rec.Operation,
		"sail()":      &rec.Sail,
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		dst, ok := targets[key]
		if !ok {
			continue
		}

		*dst = nodeText(root.Content[i+1])
	}

	if rec.Name == "" {
		return Record{}, ErrMissingName
	}

	return rec, nil
}

func nodeText(n *yaml.Node) string {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return nodeText(n.Alias)
	}

	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!null" {
			return ""
		}
		return n.Value
	}

	return FlowString(n)
}
