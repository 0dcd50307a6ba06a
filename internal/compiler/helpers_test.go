package compiler

import "esgo/internal/ast"

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func num(raw string, v float64) *ast.Literal { return &ast.Literal{Value: v, Raw: raw} }

func str(s string) *ast.Literal { return &ast.Literal{Value: s} }

func bin(op string, l, r ast.Node) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: op, Left: l, Right: r}
}

func call(callee ast.Node, args ...ast.Node) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

func member(obj, prop ast.Node, computed bool) *ast.MemberExpression {
	return &ast.MemberExpression{Object: obj, Property: prop, Computed: computed}
}

func consoleLog(args ...ast.Node) *ast.CallExpression {
	return call(member(ident("console"), ident("log"), false), args...)
}

func exprStmt(e ast.Node) *ast.ExpressionStatement { return &ast.ExpressionStatement{Expression: e} }

func block(stmts ...ast.Node) *ast.BlockStatement { return &ast.BlockStatement{Body: stmts} }

func varDecl(binding, name string, init ast.Node) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Binding:      binding,
		Declarations: []*ast.VariableDeclarator{{ID: ident(name), Init: init}},
	}
}

func funcDecl(name string, params []string, body ...ast.Node) *ast.FunctionDeclaration {
	fn := &ast.FunctionDeclaration{ID: ident(name), Body: block(body...)}
	for _, p := range params {
		fn.Params = append(fn.Params, ident(p))
	}
	return fn
}

func program(stmts ...ast.Node) *ast.Program { return &ast.Program{Body: stmts} }
