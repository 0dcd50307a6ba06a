package compiler

import (
	"errors"
	"fmt"
	"strings"

	"esgo/internal/ast"
	"esgo/internal/types"
)

// ErrWrongCode is returned when the tree handed to the generator is not
// rooted at a Program node.
var ErrWrongCode = errors.New("wrong code")

const (
	// Every unit gets the same preamble, whether or not it prints.
	packageClause = "package main"
	importClause  = `import "fmt"`

	printFunc       = "fmt.Println"
	loggerObject    = "console"
	loggerMethod    = "log"
	importPrimitive = "require"

	reviewMarker = "// NOTE: parameter and return types were inferred from names; review them manually"

	indentUnit = "\t"
)

// emitContext travels by value through every render call.
type emitContext struct {
	indent  string
	binding types.Binding
}

func (c emitContext) nest() emitContext {
	c.indent += indentUnit
	return c
}

func (c emitContext) withBinding(b types.Binding) emitContext {
	c.binding = b
	return c
}

// Generator turns an ESTree program into Go source text. It holds no
// per-run state, so one Generator may be reused for any number of trees.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a whole compilation unit. A root that is not a Program
// yields ErrWrongCode and no text.
func (g *Generator) Generate(root ast.Node) (string, error) {
	prog, ok := root.(*ast.Program)
	if !ok || prog == nil {
		kind := ast.Kind("<nil>")
		if !ok && root != nil {
			kind = root.Kind()
		}
		return "", fmt.Errorf("%w: root node is %s, want %s", ErrWrongCode, kind, ast.KindProgram)
	}
	var parts []string
	ctx := emitContext{}
	for _, stmt := range prog.Body {
		out := g.stmt(stmt, ctx, prog)
		if out == "" {
			continue
		}
		parts = append(parts, out)
	}

	var sb strings.Builder
	sb.WriteString(packageClause)
	sb.WriteString("\n")
	sb.WriteString(importClause)
	sb.WriteString("\n")
	if len(parts) > 0 {
		sb.WriteString(strings.Join(parts, "\n"))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
