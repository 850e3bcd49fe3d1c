package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Diagram:
		walkStmts(n.Stmts, v)

	case *ObjectStmt:
		walkStmts(n.Body, v)
		for _, c := range n.Clauses {
			Walk(c, v)
		}

	case *AssignStmt:
		Walk(n.Value, v)

	case *PlaceStmt:
		Walk(n.At, v)

	case *AssertStmt:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Clause:
		if n.Text != nil {
			Walk(n.Text, v)
		}
		if n.X != nil {
			Walk(n.X, v)
		}
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *PointLit:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Selector:
		Walk(n.X, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *ParenExpr:
		Walk(n.X, v)

	case *Relative:
		Walk(n.Dist, v)
		Walk(n.Of, v)

	case *Between:
		Walk(n.Frac, v)
		Walk(n.From, v)
		Walk(n.To, v)

	case *Heading:
		Walk(n.Dist, v)
		Walk(n.Angle, v)
		Walk(n.From, v)

	default:
		// Leaf nodes: DirStmt, TextLit, NumberLit, Name, ObjectRef
	}
}

func walkStmts(list []Stmt, v Visitor) {
	for _, s := range list {
		Walk(s, v)
	}
}
