package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgo/internal/ast"
)

func TestDiagnoseReportsEachUnsupportedNode(t *testing.T) {
	loc := ast.Span{Start: ast.Position{Line: 3, Col: 4}, End: ast.Position{Line: 3, Col: 8}}
	prog := program(
		exprStmt(consoleLog(&ast.Unknown{Type: "ThisExpression", Span: loc})),
		&ast.Unknown{Type: "ClassDeclaration"},
		funcDecl("main", nil,
			exprStmt(&ast.UnaryExpression{Operator: "typeof", Prefix: true, Argument: ident("x")}),
		),
	)
	diags := Diagnose(prog)
	require.Len(t, diags, 3)
	assert.Equal(t, ast.Kind("ThisExpression"), diags[0].Kind)
	assert.Equal(t, "3:4: unsupported construct ThisExpression", diags[0].String())
	assert.Equal(t, "unsupported construct ClassDeclaration", diags[1].String())
	assert.Equal(t, ast.Kind("UnaryExpression(typeof)"), diags[2].Kind)
}

func TestDiagnoseInheritsNearestAncestorPosition(t *testing.T) {
	stmtLoc := ast.Span{Start: ast.Position{Line: 2, Col: 0}, End: ast.Position{Line: 2, Col: 12}}
	fnLoc := ast.Span{Start: ast.Position{Line: 5, Col: 0}, End: ast.Position{Line: 9, Col: 1}}
	ownLoc := ast.Span{Start: ast.Position{Line: 6, Col: 2}, End: ast.Position{Line: 6, Col: 6}}

	fn := funcDecl("main", nil,
		exprStmt(&ast.Unknown{Type: "ThisExpression"}),
		exprStmt(&ast.Unknown{Type: "Super", Span: ownLoc}),
	)
	fn.Span = fnLoc
	prog := program(
		&ast.ExpressionStatement{
			Expression: call(ident("f"), &ast.UnaryExpression{Operator: "void", Prefix: true, Argument: num("0", 0)}),
			Span:       stmtLoc,
		},
		fn,
	)

	diags := Diagnose(prog)
	require.Len(t, diags, 3)
	assert.Equal(t, "2:0: unsupported construct UnaryExpression(void)", diags[0].String())
	assert.Equal(t, "5:0: unsupported construct ThisExpression", diags[1].String())
	assert.Equal(t, "6:2: unsupported construct Super", diags[2].String())
}

func TestDiagnoseCleanTree(t *testing.T) {
	assert.Empty(t, Diagnose(sampleProgram()))
	assert.Empty(t, Diagnose(nil))
}

func TestDiagnoseDoesNotChangeOutput(t *testing.T) {
	prog := program(exprStmt(&ast.Unknown{Type: "ThisExpression"}), exprStmt(consoleLog(str("ok"))))
	g := NewGenerator()
	before, err := g.Generate(prog)
	require.NoError(t, err)
	Diagnose(prog)
	after, err := g.Generate(prog)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
