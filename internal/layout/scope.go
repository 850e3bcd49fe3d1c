package layout

import (
	"fmt"
	"sort"
	"strings"
)

// Scope maps labels to placed objects and named places.
// Scopes form a tree: each block opens a child of the enclosing scope.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]*Object
	comment  string // debugging comment ("diagram", "block A")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]*Object),
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Lookup returns the object labeled name in s, without searching parents.
func (s *Scope) Lookup(name string) *Object {
	return s.elems[name]
}

// LookupParent returns the object labeled name by searching from s up
// through all parent scopes, and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (*Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert binds obj under its label. A label may be reused: the newer
// object wins and the previous binding is returned.
func (s *Scope) Insert(obj *Object) *Object {
	prev := s.elems[obj.Label]
	s.elems[obj.Label] = obj
	return prev
}

// Names returns the labels bound in s, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scope) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s scope {", s.comment)
	for i, name := range s.Names() {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %s %s", name, s.elems[name].Kind)
	}
	b.WriteString(" }")
	return b.String()
}

// Tree returns s and its nested block scopes, one per line, indented by
// depth.
func (s *Scope) Tree() string {
	var b strings.Builder
	s.writeTree(&b, 0)
	return b.String()
}

func (s *Scope) writeTree(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), s)
	for _, child := range s.Children() {
		child.writeTree(b, depth+1)
	}
}
