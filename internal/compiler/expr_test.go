package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"esgo/internal/ast"
)

func renderExpr(n ast.Node) string {
	return NewGenerator().expr(n, emitContext{}, nil)
}

func TestLiterals(t *testing.T) {
	cases := []struct {
		name string
		lit  *ast.Literal
		want string
	}{
		{"integer", num("42", 42), "42"},
		{"hex keeps source spelling", num("0x1F", 31), "0x1F"},
		{"number without raw", &ast.Literal{Value: float64(3)}, "3"},
		{"string", str("hi"), `"hi"`},
		{"string with quotes", str(`say "x"`), `"say \"x\""`},
		{"bool", &ast.Literal{Value: true, Raw: "true"}, `"true"`},
		{"null", &ast.Literal{Raw: "null"}, `"null"`},
		{"regex", &ast.Literal{Value: map[string]any{}, Raw: "/a+/"}, `"/a+/"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderExpr(tc.lit))
		})
	}
}

func TestBinaryNestingIsParenthesized(t *testing.T) {
	// a + (b * c)
	e := bin("+", ident("a"), bin("*", ident("b"), ident("c")))
	assert.Equal(t, "a + (b * c)", renderExpr(e))

	// (a - b) - c
	e = bin("-", bin("-", ident("a"), ident("b")), ident("c"))
	assert.Equal(t, "(a - b) - c", renderExpr(e))
}

func TestBinaryUnderNonBinaryParentIsBare(t *testing.T) {
	e := call(ident("f"), bin("+", ident("a"), ident("b")))
	assert.Equal(t, "f(a + b)", renderExpr(e))
}

func TestStrictEqualityMapsToGoOperators(t *testing.T) {
	assert.Equal(t, "a == b", renderExpr(bin("===", ident("a"), ident("b"))))
	assert.Equal(t, "a != b", renderExpr(bin("!==", ident("a"), ident("b"))))
	assert.Equal(t, "a < b", renderExpr(bin("<", ident("a"), ident("b"))))
}

func TestLogicalExpressionNestsLikeBinary(t *testing.T) {
	e := &ast.LogicalExpression{
		Operator: "&&",
		Left:     ident("ok"),
		Right:    bin(">", ident("n"), num("0", 0)),
	}
	assert.Equal(t, "ok && (n > 0)", renderExpr(e))
}

func TestMemberExpressions(t *testing.T) {
	assert.Equal(t, "arr[0]", renderExpr(member(ident("arr"), num("0", 0), true)))
	assert.Equal(t, "user.name", renderExpr(member(ident("user"), ident("name"), false)))
	assert.Equal(t, "m[key]", renderExpr(member(ident("m"), ident("key"), true)))
}

func TestCallExpressions(t *testing.T) {
	assert.Equal(t, "f()", renderExpr(call(ident("f"))))
	assert.Equal(t, `f(1, "two", x)`, renderExpr(call(ident("f"), num("1", 1), str("two"), ident("x"))))
	assert.Equal(t, "list.push(item)", renderExpr(call(member(ident("list"), ident("push"), false), ident("item"))))
}

func TestArrayExpression(t *testing.T) {
	arr := &ast.ArrayExpression{Elements: []ast.Node{num("1", 1), num("2", 2), num("3", 3)}}
	assert.Equal(t, "{1, 2, 3}", renderExpr(arr))
	assert.Equal(t, "{}", renderExpr(&ast.ArrayExpression{}))
}

func TestUpdateExpressionSides(t *testing.T) {
	post := &ast.UpdateExpression{Operator: "++", Argument: ident("i")}
	pre := &ast.UpdateExpression{Operator: "++", Prefix: true, Argument: ident("i")}
	dec := &ast.UpdateExpression{Operator: "--", Argument: ident("i")}
	assert.Equal(t, "i++", renderExpr(post))
	assert.Equal(t, "++i", renderExpr(pre))
	assert.Equal(t, "i--", renderExpr(dec))
	assert.NotEqual(t, renderExpr(post), renderExpr(pre))
}

func TestAssignmentExpression(t *testing.T) {
	assert.Equal(t, "x = 1", renderExpr(&ast.AssignmentExpression{Operator: "=", Left: ident("x"), Right: num("1", 1)}))
	assert.Equal(t, "x = y", renderExpr(&ast.AssignmentExpression{Left: ident("x"), Right: ident("y")}))
	assert.Equal(t, "total += n", renderExpr(&ast.AssignmentExpression{Operator: "+=", Left: ident("total"), Right: ident("n")}))
}

func TestUnaryExpression(t *testing.T) {
	assert.Equal(t, "!ok", renderExpr(&ast.UnaryExpression{Operator: "!", Prefix: true, Argument: ident("ok")}))
	assert.Equal(t, "-(a + b)", renderExpr(&ast.UnaryExpression{Operator: "-", Prefix: true, Argument: bin("+", ident("a"), ident("b"))}))
	assert.Empty(t, renderExpr(&ast.UnaryExpression{Operator: "typeof", Prefix: true, Argument: ident("x")}))
}

func TestUnknownExpressionRendersEmpty(t *testing.T) {
	assert.Empty(t, renderExpr(&ast.Unknown{Type: "ObjectExpression"}))
	assert.Empty(t, renderExpr(nil))
	// siblings still render
	assert.Equal(t, "f(, x)", renderExpr(call(ident("f"), &ast.Unknown{Type: "ThisExpression"}, ident("x"))))
}
