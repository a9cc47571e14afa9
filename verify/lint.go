package verify

import (
	"fmt"
	"strings"

	"github.com/sarchlab/instyaml/core"
	"gopkg.in/yaml.v3"
)

// RunLint performs static checks of a record against a layout.
// Returns a list of issues found, or empty list if no issues.
func RunLint(rec core.Record, layout core.Layout) []Issue {
	var issues []Issue

	// STRUCT: each key once
	seen := make(map[string]int)
	for i, f := range layout {
		if prev, ok := seen[f.Key]; ok {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Key:     f.Key,
				Line:    -1,
				Message: fmt.Sprintf("Duplicate key at positions %d and %d", prev+1, i+1),
				Details: map[string]interface{}{"first": prev + 1, "second": i + 1},
			})
			continue
		}
		seen[f.Key] = i
	}

	for _, f := range layout {
		value := f.Value(rec)
		if f.Kind == core.Block {
			issues = append(issues, lintBlock(f.Key, value)...)
		} else {
			issues = append(issues, lintScalar(f.Key, value)...)
		}
	}

	return issues
}

func lintScalar(key, value string) []Issue {
	if strings.ContainsAny(value, "\r\n") {
		return []Issue{{
			Type:    IssueStruct,
			Key:     key,
			Line:    -1,
			Message: "Scalar value contains a line break",
		}}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(key+": "+value+"\n"), &doc); err != nil {
		return []Issue{{
			Type:    IssueQuote,
			Key:     key,
			Line:    -1,
			Message: fmt.Sprintf("Value does not parse: %v", err),
			Details: map[string]interface{}{"value": value},
		}}
	}

	node := mappingValue(&doc, key)
	if node == nil || node.Kind != yaml.ScalarNode {
		// Flow mappings and sequences are written on purpose.
		return nil
	}

	if tag := node.ShortTag(); tag != "!!str" {
		return []Issue{{
			Type:    IssueQuote,
			Key:     key,
			Line:    -1,
			Message: fmt.Sprintf("Value reads back as %s", tag),
			Details: map[string]interface{}{"value": value, "tag": tag},
		}}
	}

	if node.Value != value {
		return []Issue{{
			Type:    IssueQuote,
			Key:     key,
			Line:    -1,
			Message: fmt.Sprintf("Value reads back as %q", node.Value),
			Details: map[string]interface{}{"value": value, "parsed": node.Value},
		}}
	}

	return nil
}

func lintBlock(key, value string) []Issue {
	var issues []Issue

	lines := core.SplitLines(value)
	for i, l := range lines {
		if strings.Contains(l, "\r") {
			issues = append(issues, Issue{
				Type:    IssueCR,
				Key:     key,
				Line:    i + 1,
				Message: "Carriage return is read as a line break",
			})
		}
	}

	for i, l := range lines {
		if l == "" {
			continue
		}
		if l[0] == ' ' || l[0] == '\t' {
			issues = append(issues, Issue{
				Type:    IssueIndent,
				Key:     key,
				Line:    i + 1,
				Message: "First line starts with whitespace; block needs an indentation indicator",
			})
		}
		break
	}

	if strings.HasSuffix(value, "\n\n") {
		issues = append(issues, Issue{
			Type:    IssueChomp,
			Key:     key,
			Line:    len(lines),
			Message: "Trailing empty lines are dropped when the block is read back",
		})
	}

	return issues
}

// mappingValue finds the value node of key in the top-level mapping.
func mappingValue(doc *yaml.Node, key string) *yaml.Node {
	root := topMapping(doc)
	if root == nil {
		return nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			return root.Content[i+1]
		}
	}

	return nil
}

func topMapping(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	return root
}
