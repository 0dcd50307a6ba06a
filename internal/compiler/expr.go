package compiler

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"esgo/internal/ast"
)

var operatorMap = map[string]string{
	"===": "==",
	"!==": "!=",
}

func (g *Generator) expr(node ast.Node, ctx emitContext, parent ast.Node) string {
	switch n := node.(type) {
	case *ast.Literal:
		return literal(n)
	case *ast.Identifier:
		return n.Name
	case *ast.BinaryExpression:
		return g.binary(n, n.Operator, n.Left, n.Right, ctx, parent)
	case *ast.LogicalExpression:
		return g.binary(n, n.Operator, n.Left, n.Right, ctx, parent)
	case *ast.UnaryExpression:
		switch n.Operator {
		case "typeof", "void", "delete":
			return ""
		}
		arg := g.expr(n.Argument, ctx, n)
		if isBinary(n.Argument) {
			arg = "(" + arg + ")"
		}
		return n.Operator + arg
	case *ast.MemberExpression:
		object := g.expr(n.Object, ctx, n)
		property := g.expr(n.Property, ctx, n)
		if n.Computed {
			return object + "[" + property + "]"
		}
		return object + "." + property
	case *ast.CallExpression:
		return g.expr(n.Callee, ctx, n) + "(" + g.exprList(n.Arguments, ctx, n) + ")"
	case *ast.ArrayExpression:
		return "{" + g.exprList(n.Elements, ctx, n) + "}"
	case *ast.UpdateExpression:
		operand := g.expr(n.Argument, ctx, n)
		if n.Prefix {
			return n.Operator + operand
		}
		return operand + n.Operator
	case *ast.AssignmentExpression:
		op := n.Operator
		if op == "" {
			op = "="
		}
		return g.expr(n.Left, ctx, n) + " " + op + " " + g.expr(n.Right, ctx, n)
	default:
		return ""
	}
}

func (g *Generator) binary(node ast.Node, op string, left, right ast.Node, ctx emitContext, parent ast.Node) string {
	if mapped, ok := operatorMap[op]; ok {
		op = mapped
	}
	out := g.expr(left, ctx, node) + " " + op + " " + g.expr(right, ctx, node)
	if isBinary(parent) {
		return "(" + out + ")"
	}
	return out
}

// isBinary reports whether n is an operator node whose operands need
// grouping. There is no precedence table: any nested binary is wrapped.
func isBinary(n ast.Node) bool {
	switch n.(type) {
	case *ast.BinaryExpression, *ast.LogicalExpression:
		return true
	}
	return false
}

func (g *Generator) exprList(nodes []ast.Node, ctx emitContext, parent ast.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, g.expr(n, ctx, parent))
	}
	return strings.Join(parts, ", ")
}

func literal(n *ast.Literal) string {
	switch v := n.Value.(type) {
	case float64, float32, int, int64:
		if n.Raw != "" {
			return n.Raw
		}
		return cast.ToString(v)
	case string:
		return strconv.Quote(v)
	case nil:
		if n.Raw != "" {
			return strconv.Quote(n.Raw)
		}
		return strconv.Quote("null")
	case map[string]any:
		// regex literals decode to an empty object; keep the source text
		return strconv.Quote(n.Raw)
	default:
		return strconv.Quote(cast.ToString(v))
	}
}
