// Package formatter prints a decoded syntax tree as an indented outline,
// one node per line.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"esgo/internal/ast"
)

// Formatter writes tree outlines
type Formatter struct {
	indent int
	buf    strings.Builder
}

// New creates a new Formatter
func New() *Formatter {
	return &Formatter{}
}

// FormatTree returns the outline of the tree rooted at root
func (f *Formatter) FormatTree(root ast.Node) string {
	f.buf.Reset()
	f.indent = 0
	if root != nil {
		f.formatNode(root)
	}
	return f.buf.String()
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.buf.WriteString("  ")
	}
}

func (f *Formatter) formatNode(n ast.Node) {
	f.writeIndent()
	f.buf.WriteString(string(n.Kind()))
	if detail := describe(n); detail != "" {
		f.buf.WriteString(" ")
		f.buf.WriteString(detail)
	}
	if span := n.GetSpan(); !span.IsZero() {
		f.buf.WriteString(fmt.Sprintf(" @%d:%d", span.Start.Line, span.Start.Col))
	}
	f.buf.WriteString("\n")

	f.indent++
	for _, c := range ast.Children(n) {
		f.formatNode(c)
	}
	f.indent--
}

// describe returns the scalar fields of n worth showing next to its kind.
func describe(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Program:
		return n.SourceType
	case *ast.VariableDeclaration:
		return n.Binding
	case *ast.Identifier:
		return n.Name
	case *ast.Literal:
		if n.Raw != "" {
			return n.Raw
		}
		if s, ok := n.Value.(string); ok {
			return strconv.Quote(s)
		}
		return fmt.Sprint(n.Value)
	case *ast.BinaryExpression:
		return n.Operator
	case *ast.LogicalExpression:
		return n.Operator
	case *ast.AssignmentExpression:
		return n.Operator
	case *ast.UnaryExpression:
		return n.Operator
	case *ast.UpdateExpression:
		if n.Prefix {
			return n.Operator + " prefix"
		}
		return n.Operator + " postfix"
	case *ast.MemberExpression:
		if n.Computed {
			return "computed"
		}
	case *ast.Unknown:
		return "(unsupported)"
	}
	return ""
}
