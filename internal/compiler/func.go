package compiler

import (
	"strings"

	"esgo/internal/ast"
	"esgo/internal/types"
)

// function renders a function declaration. Parameter and result types
// come from types.Infer, so a review marker is placed right after the
// header.
func (g *Generator) function(fn *ast.FunctionDeclaration, ctx emitContext) string {
	name := ""
	if fn.ID != nil {
		name = fn.ID.Name
	}
	sig := types.Infer(name)

	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		ident, ok := p.(*ast.Identifier)
		if !ok {
			continue
		}
		inferred := types.Infer(ident.Name)
		params = append(params, joinNonEmpty(inferred.Name, inferred.Type))
	}

	header := "func " + sig.Name + "(" + strings.Join(params, ", ") + ") " + sig.Type + "{"
	lines := []string{
		"",
		ctx.indent + header,
		ctx.nest().indent + reviewMarker,
	}
	lines = append(lines, g.blockLines(fn.Body, ctx)...)
	lines = append(lines, ctx.indent+"}")
	return strings.Join(lines, "\n")
}
