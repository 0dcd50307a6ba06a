package compiler

import (
	"strconv"
	"strings"

	"esgo/internal/ast"
	"esgo/internal/types"
)

// declaration renders each declarator of n on its own line at ctx's
// indent. Declarators that cannot be rendered are dropped.
func (g *Generator) declaration(n *ast.VariableDeclaration, ctx emitContext) []string {
	ctx = ctx.withBinding(types.BindingOf(n))
	var lines []string
	for _, d := range n.Declarations {
		out := g.declarator(d, ctx, n)
		if out == "" {
			continue
		}
		lines = append(lines, ctx.indent+out)
	}
	return lines
}

// declarator picks one of five forms:
//
//	nums := [3]int{1, 2, 3}    array literal initializer
//	x := value                 reassignable binding
//	import fs "fs"             fixed binding of require("fs")
//	const name string = value  fixed binding otherwise
//	var name string            no initializer
//
// The binding kind comes from the parent declaration when there is one.
func (g *Generator) declarator(d *ast.VariableDeclarator, ctx emitContext, parent ast.Node) string {
	if d == nil {
		return ""
	}
	binding := ctx.binding
	if decl, ok := parent.(*ast.VariableDeclaration); ok {
		binding = types.BindingOf(decl)
	}
	ident, ok := d.ID.(*ast.Identifier)
	if !ok {
		// destructuring patterns are not modeled
		return ""
	}
	inferred := types.Infer(ident.Name)

	if arr, ok := d.Init.(*ast.ArrayExpression); ok {
		typ := inferred.Type
		if !types.IsArray(typ) {
			typ = "[]" + typ
		}
		return inferred.Name + " := " + typ + g.expr(arr, ctx, d)
	}
	if d.Init == nil {
		return joinNonEmpty(binding.Keyword(), inferred.Name, inferred.Type)
	}
	if binding == types.Reassignable {
		return ident.Name + " := " + g.expr(d.Init, ctx, d)
	}
	if path, ok := requirePath(d.Init); ok {
		return "import " + ident.Name + " " + strconv.Quote(path)
	}
	return joinNonEmpty(binding.Keyword(), inferred.Name, inferred.Type, "=", g.expr(d.Init, ctx, d))
}

// requirePath matches require("<path>") and returns the path.
func requirePath(n ast.Node) (string, bool) {
	call, ok := n.(*ast.CallExpression)
	if !ok || len(call.Arguments) != 1 {
		return "", false
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Name != importPrimitive {
		return "", false
	}
	lit, ok := call.Arguments[0].(*ast.Literal)
	if !ok {
		return "", false
	}
	path, ok := lit.Value.(string)
	return path, ok
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
