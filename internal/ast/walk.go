package ast

// Children returns the direct child nodes of n in source order. Absent
// optional children are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			add(s)
		}
	case *ExpressionStatement:
		add(n.Expression)
	case *ReturnStatement:
		add(n.Argument)
	case *BlockStatement:
		for _, s := range n.Body {
			add(s)
		}
	case *IfStatement:
		add(n.Test)
		add(n.Consequent)
		add(n.Alternate)
	case *ForStatement:
		add(n.Init)
		add(n.Test)
		add(n.Update)
		add(n.Body)
	case *WhileStatement:
		add(n.Test)
		add(n.Body)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if d != nil {
				out = append(out, d)
			}
		}
	case *VariableDeclarator:
		add(n.ID)
		add(n.Init)
	case *FunctionDeclaration:
		if n.ID != nil {
			out = append(out, n.ID)
		}
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
	case *BinaryExpression:
		add(n.Left)
		add(n.Right)
	case *LogicalExpression:
		add(n.Left)
		add(n.Right)
	case *UnaryExpression:
		add(n.Argument)
	case *MemberExpression:
		add(n.Object)
		add(n.Property)
	case *CallExpression:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *ArrayExpression:
		for _, e := range n.Elements {
			add(e)
		}
	case *UpdateExpression:
		add(n.Argument)
	case *AssignmentExpression:
		add(n.Left)
		add(n.Right)
	}
	return out
}

