package validation

import (
	"strings"

	"github.com/graphguard/graphguard/schema"
)

// Segment is one element of a path: a field name (string) or a list
// index (int).
type Segment = any

// Path locates a value within a nested input tree, root to leaf.
type Path []Segment

// entry is a node in the traversal worklist and, through its parent links,
// the ancestry chain paths are rendered from. Entries live for one
// validation pass only.
type entry struct {
	name   string
	value  any
	owner  *schema.Type
	parent *entry
	index  *int // list element index; nil when the entry is not inside a list
}

// path renders the entry's position root to leaf. A list index is inserted
// immediately before the field name it indexes into. Index presence is
// explicit: index 0 renders like any other, for the leaf and for ancestors.
func (e *entry) path(display bool) Path {
	transform := func(name string) string {
		if display {
			return toCamelCase(name)
		}
		return name
	}
	var p Path
	if e.index != nil {
		p = Path{*e.index, transform(e.name)}
	} else {
		p = Path{transform(e.name)}
	}
	for anc := e.parent; anc != nil; anc = anc.parent {
		p = append(Path{transform(anc.name)}, p...)
		if anc.index != nil {
			p = append(Path{*anc.index}, p...)
		}
	}
	return p
}

// toCamelCase converts a snake_case internal field name into the camelCase
// rendering used for client-facing paths. Names without underscores pass
// through unchanged.
func toCamelCase(name string) string {
	words := strings.Split(name, "_")
	if len(words) == 1 {
		return name
	}
	var b strings.Builder
	for i, word := range words {
		if i == 0 || word == "" {
			b.WriteString(word)
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}
