package compiler

import (
	"fmt"

	"esgo/internal/ast"
)

// Diagnostic reports a construct the generator rendered as nothing.
type Diagnostic struct {
	Kind ast.Kind
	Span ast.Span
}

func (d Diagnostic) String() string {
	if d.Span.IsZero() {
		return fmt.Sprintf("unsupported construct %s", d.Kind)
	}
	return fmt.Sprintf("%d:%d: unsupported construct %s", d.Span.Start.Line, d.Span.Start.Col, d.Kind)
}

// Diagnose lists every node under root that renders as an empty fragment.
// It does not render anything, and its result does not affect the
// generated text. A node without a location reports the location of its
// nearest ancestor that has one.
func Diagnose(root ast.Node) []Diagnostic {
	var diags []Diagnostic
	diagnose(root, ast.Span{}, &diags)
	return diags
}

func diagnose(n ast.Node, inherited ast.Span, diags *[]Diagnostic) {
	if n == nil {
		return
	}
	span := n.GetSpan()
	if span.IsZero() {
		span = inherited
	}
	switch n := n.(type) {
	case *ast.Unknown:
		*diags = append(*diags, Diagnostic{Kind: n.Kind(), Span: span})
		return
	case *ast.UnaryExpression:
		switch n.Operator {
		case "typeof", "void", "delete":
			*diags = append(*diags, Diagnostic{Kind: ast.Kind(string(n.Kind()) + "(" + n.Operator + ")"), Span: span})
			return
		}
	}
	for _, c := range ast.Children(n) {
		diagnose(c, span, diags)
	}
}
