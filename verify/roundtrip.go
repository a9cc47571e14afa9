package verify

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/sarchlab/instyaml/core"
	"github.com/sarchlab/instyaml/emit"
	"gopkg.in/yaml.v3"
)

// CheckRoundTrip renders rec, parses the document back and reports every
// place where the parsed document differs from the record. The error is set
// only when the document does not parse at all.
func CheckRoundTrip(rec core.Record, layout core.Layout) ([]Issue, error) {
	out := emit.RenderLayout(rec, layout)

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		return nil, fmt.Errorf("rendered %s does not parse: %w", rec.Name, err)
	}

	root := topMapping(&doc)
	if root == nil {
		return nil, fmt.Errorf("rendered %s is not a mapping", rec.Name)
	}

	var issues []Issue

	var gotKeys []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		gotKeys = append(gotKeys, root.Content[i].Value)
	}
	if diff := cmp.Diff(layout.Keys(), gotKeys); diff != "" {
		issues = append(issues, Issue{
			Type:    IssueRoundTrip,
			Line:    -1,
			Message: "Key order differs (-want +got)",
			Details: map[string]interface{}{"diff": diff},
		})
	}

	for i, f := range layout {
		if 2*i+1 >= len(root.Content) || root.Content[2*i].Value != f.Key {
			continue
		}

		node := root.Content[2*i+1]
		if node.Kind != yaml.ScalarNode {
			continue
		}

		want := f.Value(rec)
		if f.Kind == core.Block {
			want = ClipValue(want)
		}

		if diff := cmp.Diff(want, node.Value); diff != "" {
			issues = append(issues, Issue{
				Type:    IssueRoundTrip,
				Key:     f.Key,
				Line:    -1,
				Message: "Parsed value differs (-want +got)",
				Details: map[string]interface{}{"diff": diff},
			})
		}
	}

	return issues, nil
}

// ClipValue returns what a `|` block holding value reads back as: the lines
// followed by exactly one newline, or "" when there is no content.
func ClipValue(value string) string {
	trimmed := strings.TrimRight(value, "\n")
	if trimmed == "" {
		return ""
	}

	return trimmed + "\n"
}
