package core

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// FlowString writes a YAML node on one line in flow style, for example
// `{match: '---', variables: [{location: 31-20, name: imm}]}`. Mapping keys
// are sorted.
func FlowString(n *yaml.Node) string {
	var sb strings.Builder
	writeFlow(&sb, n)
	return sb.String()
}

func writeFlow(sb *strings.Builder, n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			writeFlow(sb, n.Content[0])
		}
	case yaml.AliasNode:
		if n.Alias != nil {
			writeFlow(sb, n.Alias)
		}
	case yaml.SequenceNode:
		sb.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeFlow(sb, c)
		}
		sb.WriteByte(']')
	case yaml.MappingNode:
		writeFlowMapping(sb, n)
	case yaml.ScalarNode:
		sb.WriteString(flowScalar(n))
	}
}

func writeFlowMapping(sb *strings.Builder, n *yaml.Node) {
	type pair struct{ k, v *yaml.Node }

	pairs := make([]pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, pair{n.Content[i], n.Content[i+1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].k.Value < pairs[j].k.Value
	})

	sb.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeFlow(sb, p.k)
		sb.WriteString(": ")
		writeFlow(sb, p.v)
	}
	sb.WriteByte('}')
}

func flowScalar(n *yaml.Node) string {
	if n.ShortTag() != "!!str" {
		return n.Value
	}

	v := n.Value
	switch {
	case strings.ContainsFunc(v, func(r rune) bool { return r == '\n' || !unicode.IsPrint(r) }):
		return strconv.Quote(v)
	case NeedsQuoting(v):
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return v
	}
}

// NeedsQuoting reports whether a string cannot be written as a plain scalar
// inside a flow collection and read back as the same string.
func NeedsQuoting(v string) bool {
	if v == "" || v != strings.TrimSpace(v) {
		return true
	}

	if strings.HasPrefix(v, "---") || strings.HasPrefix(v, "...") {
		return true
	}

	if strings.ContainsRune("#,[]{}&*!|>'\"%@`", rune(v[0])) {
		return true
	}

	if v[0] == '?' || v[0] == ':' {
		return true
	}

	if v[0] == '-' && (len(v) == 1 || v[1] == ' ') {
		return true
	}

	if strings.ContainsAny(v, ",[]{}") ||
		strings.Contains(v, ": ") || strings.HasSuffix(v, ":") ||
		strings.Contains(v, " #") {
		return true
	}

	var resolved any
	if err := yaml.Unmarshal([]byte(v), &resolved); err != nil {
		return true
	}
	s, ok := resolved.(string)
	return !ok || s != v
}
