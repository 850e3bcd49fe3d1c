package layout

import (
	"fmt"
	"log/slog"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
	"github.com/you-not-fish/pikgo/internal/textmetrics"
)

// Context holds the state of one layout pass. Nothing in it outlives the
// call to Resolve.
type Context struct {
	conf    *Config
	log     *slog.Logger
	measure *textmetrics.Measurer
	vars    map[string]float64

	frame         // current container
	outer []frame // enclosing containers, innermost last

	// labels records every label declaration in the source, so that
	// a reference to a later object can be told from a typo.
	labels map[string][]syntax.Pos

	this *Object // object whose clauses are being applied
}

// A frame is the placement state of one container: the diagram itself or
// a block.
type frame struct {
	scope   *Scope
	objects []*Object
	bbox    geom.Rect
	cursor  geom.Point       // exit point of the previous object
	placed  bool             // whether any object was placed yet
	dir     syntax.Direction // default direction
}

func newContext(conf *Config) *Context {
	scale := conf.Scale
	if scale <= 0 {
		scale = 1
	}
	log := conf.Logger
	if log == nil {
		log = discard
	}
	return &Context{
		conf:    conf,
		log:     log,
		measure: textmetrics.New(),
		vars:    newVars(scale),
		frame:   frame{scope: NewScope(nil, "diagram")},
		labels:  make(map[string][]syntax.Pos),
	}
}

// collectLabels records the position of every label in d.
func (c *Context) collectLabels(d *syntax.Diagram) {
	syntax.Walk(d, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.ObjectStmt:
			if n.Label != "" {
				c.labels[n.Label] = append(c.labels[n.Label], n.Pos())
			}
		case *syntax.PlaceStmt:
			c.labels[n.Label] = append(c.labels[n.Label], n.Pos())
		}
		return true
	})
}

// openBlock starts a new container nested in the current one.
func (c *Context) openBlock(comment string) {
	c.outer = append(c.outer, c.frame)
	c.frame = frame{scope: NewScope(c.scope, comment), dir: c.dir}
}

// closeBlock returns to the enclosing container and returns the state of
// the one just finished.
func (c *Context) closeBlock() frame {
	inner := c.frame
	n := len(c.outer) - 1
	c.frame = c.outer[n]
	c.outer = c.outer[:n]
	return inner
}

// dim returns a length variable.
func (c *Context) dim(name string) float64 {
	return c.vars[name]
}

// commit adds the finished object o to the current container and moves the
// cursor to its exit point. Objects at the top level are resolved at once;
// objects inside a block are resolved when the block is.
func (c *Context) commit(o *Object) {
	c.objects = append(c.objects, o)
	if o.Label != "" {
		c.scope.Insert(o)
	}
	c.bbox = c.bbox.Union(o.BBox)
	c.cursor = o.Exit
	c.placed = true
	if len(c.outer) == 0 {
		c.resolve(o)
	}
}

// resolve marks o and its children as final.
func (c *Context) resolve(o *Object) {
	if o.State == Resolved {
		panic(fmt.Sprintf("layout: %s at %s resolved twice", o.Kind, o.Pos))
	}
	for _, child := range o.Children {
		c.resolve(child)
	}
	o.State = Resolved
	c.log.Debug("resolved object",
		"kind", o.Kind.String(),
		"label", o.Label,
		"pos", o.Pos.String(),
		"center", o.Center.String(),
		"width", o.Width,
		"height", o.Height)
}

// lookupLabel finds the object labeled name in the current scope chain.
func (c *Context) lookupLabel(name string, pos syntax.Pos) (*Object, error) {
	if obj, _ := c.scope.LookupParent(name); obj != nil {
		return obj, nil
	}
	if c.this != nil && c.this.Label == name {
		return nil, layoutErrorf(pos, "cyclic reference to %s", name)
	}
	for _, decl := range c.labels[name] {
		if pos.Before(decl) {
			return nil, layoutErrorf(pos, "object %s referenced before it is placed", name)
		}
	}
	return nil, evalErrorf(pos, "undefined object %s", name)
}

// pendingLabel reports whether name labels the object being built or one
// declared after pos.
func (c *Context) pendingLabel(name string, pos syntax.Pos) bool {
	if c.this != nil && c.this.Label == name {
		return true
	}
	for _, decl := range c.labels[name] {
		if pos.Before(decl) {
			return true
		}
	}
	return false
}

// lookupNth finds the nth object of the given kind in the current container,
// counting from the end if fromEnd is set.
func (c *Context) lookupNth(kind syntax.ObjKind, nth int, fromEnd bool) *Object {
	match := func(o *Object) bool {
		return kind == syntax.NoKind || o.Kind == kind
	}
	n := 0
	if fromEnd {
		for i := len(c.objects) - 1; i >= 0; i-- {
			if match(c.objects[i]) {
				if n++; n == nth {
					return c.objects[i]
				}
			}
		}
		return nil
	}
	for _, o := range c.objects {
		if match(o) {
			if n++; n == nth {
				return o
			}
		}
	}
	return nil
}

// lastObject returns the most recent object of the current container.
func (c *Context) lastObject() *Object {
	if n := len(c.objects); n > 0 {
		return c.objects[n-1]
	}
	return nil
}
