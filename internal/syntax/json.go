package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Diagram:
		return map[string]interface{}{
			"type":  "Diagram",
			"pos":   n.pos.String(),
			"stmts": stmtsJSON(n.Stmts),
		}

	case *ObjectStmt:
		m := map[string]interface{}{
			"type": "ObjectStmt",
			"pos":  n.pos.String(),
			"kind": n.Kind.String(),
		}
		if n.Label != "" {
			m["label"] = n.Label
		}
		if n.Body != nil {
			m["body"] = stmtsJSON(n.Body)
		}
		clauses := make([]interface{}, 0, len(n.Clauses))
		for _, c := range n.Clauses {
			clauses = append(clauses, toJSON(c))
		}
		m["clauses"] = clauses
		return m

	case *DirStmt:
		return map[string]interface{}{
			"type": "DirStmt",
			"pos":  n.pos.String(),
			"dir":  n.Dir.String(),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":  "AssignStmt",
			"pos":   n.pos.String(),
			"name":  n.Name,
			"op":    n.Op.String(),
			"value": exprJSON(n.Value),
		}

	case *PlaceStmt:
		return map[string]interface{}{
			"type":  "PlaceStmt",
			"pos":   n.pos.String(),
			"label": n.Label,
			"at":    exprJSON(n.At),
		}

	case *AssertStmt:
		return map[string]interface{}{
			"type": "AssertStmt",
			"pos":  n.pos.String(),
			"x":    exprJSON(n.X),
			"y":    exprJSON(n.Y),
		}

	case *Clause:
		m := map[string]interface{}{
			"type": "Clause",
			"pos":  n.pos.String(),
			"kind": n.Kind.String(),
		}
		if n.Kind == ClauseDir {
			m["dir"] = n.Dir.String()
		}
		if n.Text != nil {
			m["text"] = toJSON(n.Text)
		}
		if n.X != nil {
			m["x"] = exprJSON(n.X)
		}
		if n.Y != nil {
			m["y"] = exprJSON(n.Y)
		}
		if n.Percent {
			m["percent"] = true
		}
		if n.Edge != "" {
			m["edge"] = n.Edge
		}
		return m

	case *TextLit:
		m := map[string]interface{}{
			"type":  "TextLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}
		if flags := n.Flags.Names(); len(flags) > 0 {
			m["flags"] = flags
		}
		return m

	case *NumberLit:
		m := map[string]interface{}{
			"type":  "NumberLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}
		if n.Unit != "" {
			m["unit"] = n.Unit
		}
		return m

	case *PointLit:
		return map[string]interface{}{
			"type": "PointLit",
			"pos":  n.pos.String(),
			"x":    exprJSON(n.X),
			"y":    exprJSON(n.Y),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *ObjectRef:
		return map[string]interface{}{
			"type": "ObjectRef",
			"pos":  n.pos.String(),
			"ref":  refString(n),
		}

	case *Selector:
		return map[string]interface{}{
			"type": "Selector",
			"pos":  n.pos.String(),
			"x":    exprJSON(n.X),
			"sel":  n.Sel,
		}

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    exprJSON(n.X),
		}
		if n.Y != nil {
			m["y"] = exprJSON(n.Y)
		}
		return m

	case *ParenExpr:
		return map[string]interface{}{
			"type": "ParenExpr",
			"pos":  n.pos.String(),
			"x":    exprJSON(n.X),
		}

	case *Relative:
		return map[string]interface{}{
			"type": "Relative",
			"pos":  n.pos.String(),
			"dist": exprJSON(n.Dist),
			"dir":  n.Dir.String(),
			"of":   exprJSON(n.Of),
		}

	case *Between:
		return map[string]interface{}{
			"type": "Between",
			"pos":  n.pos.String(),
			"frac": exprJSON(n.Frac),
			"from": exprJSON(n.From),
			"to":   exprJSON(n.To),
		}

	case *Heading:
		return map[string]interface{}{
			"type":  "Heading",
			"pos":   n.pos.String(),
			"dist":  exprJSON(n.Dist),
			"angle": exprJSON(n.Angle),
			"from":  exprJSON(n.From),
		}
	}

	return map[string]interface{}{"type": "Unknown"}
}

func stmtsJSON(list []Stmt) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, s := range list {
		out = append(out, toJSON(s))
	}
	return out
}

// exprJSON keeps a nil Expr as JSON null.
func exprJSON(x Expr) interface{} {
	if x == nil {
		return nil
	}
	return toJSON(x)
}
