package compiler

import (
	"strings"

	"esgo/internal/ast"
)

func (g *Generator) stmt(node ast.Node, ctx emitContext, parent ast.Node) string {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		if call, ok := logCall(n.Expression); ok {
			return ctx.indent + printFunc + "(" + g.exprList(call.Arguments, ctx, call) + ")"
		}
		out := g.expr(n.Expression, ctx, n)
		if out == "" {
			return ""
		}
		return ctx.indent + out
	case *ast.ReturnStatement:
		if n.Argument == nil {
			return ctx.indent + "return"
		}
		return ctx.indent + "return " + g.expr(n.Argument, ctx, n)
	case *ast.BlockStatement:
		var sb strings.Builder
		sb.WriteString(ctx.indent + "{\n")
		writeBody(&sb, g.block(n, ctx))
		sb.WriteString(ctx.indent + "}")
		return sb.String()
	case *ast.IfStatement:
		return g.ifStmt(n, ctx)
	case *ast.ForStatement:
		return g.forStmt(n, ctx)
	case *ast.WhileStatement:
		var sb strings.Builder
		sb.WriteString(ctx.indent + "for " + g.expr(n.Test, ctx, n) + " {\n")
		writeBody(&sb, g.block(n.Body, ctx))
		sb.WriteString(ctx.indent + "}")
		return sb.String()
	case *ast.BreakStatement:
		return ctx.indent + "break"
	case *ast.ContinueStatement:
		return ctx.indent + "continue"
	case *ast.VariableDeclaration:
		return strings.Join(g.declaration(n, ctx), "\n")
	case *ast.FunctionDeclaration:
		return g.function(n, ctx)
	default:
		return ""
	}
}

// block renders the statements of body one level deeper than ctx and
// joins them. body may be a BlockStatement or a single statement.
func (g *Generator) block(body ast.Node, ctx emitContext) string {
	return strings.Join(g.blockLines(body, ctx), "\n")
}

// blockLines is the slice form of block, for callers that splice extra
// lines in before the closing brace.
func (g *Generator) blockLines(body ast.Node, ctx emitContext) []string {
	inner := ctx.nest()
	var stmts []ast.Node
	switch b := body.(type) {
	case nil:
		return nil
	case *ast.BlockStatement:
		if b == nil {
			return nil
		}
		stmts = b.Body
	default:
		stmts = []ast.Node{body}
	}
	var lines []string
	for _, s := range stmts {
		out := g.stmt(s, inner, body)
		if out == "" {
			continue
		}
		lines = append(lines, out)
	}
	return lines
}

func (g *Generator) ifStmt(n *ast.IfStatement, ctx emitContext) string {
	var sb strings.Builder
	sb.WriteString(ctx.indent + "if " + g.expr(n.Test, ctx, n) + " {\n")
	writeBody(&sb, g.block(n.Consequent, ctx))
	// the else clause is written even when the source has none
	sb.WriteString(ctx.indent + "} else {\n")
	writeBody(&sb, g.block(n.Alternate, ctx))
	sb.WriteString(ctx.indent + "}")
	return sb.String()
}

func (g *Generator) forStmt(n *ast.ForStatement, ctx emitContext) string {
	init := g.clause(n.Init, ctx, n)
	test := g.expr(n.Test, ctx, n)
	update := g.clause(n.Update, ctx, n)

	var sb strings.Builder
	if init == "" && test == "" && update == "" {
		sb.WriteString(ctx.indent + "for {\n")
	} else {
		header := strings.TrimRight(init+"; "+test+"; "+update, " ")
		sb.WriteString(ctx.indent + "for " + header + " {\n")
	}
	writeBody(&sb, g.block(n.Body, ctx))
	sb.WriteString(ctx.indent + "}")
	return sb.String()
}

// clause renders a for-loop header slot, which may hold a declaration
// as well as an expression.
func (g *Generator) clause(node ast.Node, ctx emitContext, parent ast.Node) string {
	if decl, ok := node.(*ast.VariableDeclaration); ok {
		return strings.Join(g.declaration(decl, emitContext{binding: ctx.binding}), "; ")
	}
	return g.expr(node, ctx, parent)
}

func writeBody(sb *strings.Builder, body string) {
	if body == "" {
		return
	}
	sb.WriteString(body)
	sb.WriteString("\n")
}

// logCall matches console.log(...).
func logCall(n ast.Node) (*ast.CallExpression, bool) {
	call, ok := n.(*ast.CallExpression)
	if !ok {
		return nil, false
	}
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok || member.Computed {
		return nil, false
	}
	object, ok := member.Object.(*ast.Identifier)
	if !ok || object.Name != loggerObject {
		return nil, false
	}
	property, ok := member.Property.(*ast.Identifier)
	if !ok || property.Name != loggerMethod {
		return nil, false
	}
	return call, true
}
