// Package parser decodes ESTree JSON, as printed by esprima's parseScript,
// into the esgo syntax tree.
package parser

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"esgo/internal/ast"
)

// rawNode is the union of every ESTree field the decoder looks at.
// Fields whose shape depends on the node type stay raw until the type
// is known.
type rawNode struct {
	Type string    `json:"type"`
	Loc  *ast.Span `json:"loc"`

	Body         json.RawMessage   `json:"body"`
	SourceType   string            `json:"sourceType"`
	Expression   json.RawMessage   `json:"expression"`
	Argument     json.RawMessage   `json:"argument"`
	Arguments    []json.RawMessage `json:"arguments"`
	Declarations []json.RawMessage `json:"declarations"`
	DeclKind     string            `json:"kind"`
	ID           json.RawMessage   `json:"id"`
	Init         json.RawMessage   `json:"init"`
	Test         json.RawMessage   `json:"test"`
	Consequent   json.RawMessage   `json:"consequent"`
	Alternate    json.RawMessage   `json:"alternate"`
	Update       json.RawMessage   `json:"update"`
	Params       []json.RawMessage `json:"params"`
	Name         string            `json:"name"`
	Value        json.RawMessage   `json:"value"`
	Raw          string            `json:"raw"`
	Operator     string            `json:"operator"`
	Left         json.RawMessage   `json:"left"`
	Right        json.RawMessage   `json:"right"`
	Object       json.RawMessage   `json:"object"`
	Property     json.RawMessage   `json:"property"`
	Computed     bool              `json:"computed"`
	Callee       json.RawMessage   `json:"callee"`
	Elements     []json.RawMessage `json:"elements"`
	Prefix       bool              `json:"prefix"`
}

type Parser struct {
	path string
	src  []byte
}

func New(path string, src []byte) *Parser {
	return &Parser{path: path, src: src}
}

// ParseFile reads an ESTree JSON document from disk.
func ParseFile(path string) (ast.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, src).ParseProgram()
}

// ParseProgram decodes the root node. The root kind is not checked here;
// the generator owns that decision.
func (p *Parser) ParseProgram() (ast.Node, error) {
	if len(bytes.TrimSpace(p.src)) == 0 {
		return nil, p.errorf("empty document")
	}
	n, err := p.decode(p.src)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.errorf("document is null")
	}
	return n, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s", p.path, fmt.Sprintf(format, args...))
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (p *Parser) decode(data json.RawMessage) (ast.Node, error) {
	if isNull(data) {
		return nil, nil
	}
	var r rawNode
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, p.errorf("%v", err)
	}
	if r.Type == "" {
		return nil, p.errorf("node without type")
	}
	var span ast.Span
	if r.Loc != nil {
		span = *r.Loc
	}
	return p.build(&r, span)
}

func (p *Parser) build(r *rawNode, span ast.Span) (ast.Node, error) {
	var err error
	// one decode helper per child so a failure anywhere stops the walk
	child := func(data json.RawMessage) ast.Node {
		if err != nil {
			return nil
		}
		var n ast.Node
		n, err = p.decode(data)
		return n
	}
	list := func(items []json.RawMessage) []ast.Node {
		var out []ast.Node
		for _, item := range items {
			n := child(item)
			if err != nil {
				return nil
			}
			out = append(out, n)
		}
		return out
	}
	rawList := func(data json.RawMessage) []ast.Node {
		if isNull(data) {
			return nil
		}
		var items []json.RawMessage
		if e := json.Unmarshal(data, &items); e != nil {
			err = p.errorf("%s.body: %v", r.Type, e)
			return nil
		}
		return list(items)
	}

	var n ast.Node
	switch ast.Kind(r.Type) {
	case ast.KindProgram:
		n = &ast.Program{Body: rawList(r.Body), SourceType: r.SourceType, Span: span}
	case ast.KindExpressionStatement:
		n = &ast.ExpressionStatement{Expression: child(r.Expression), Span: span}
	case ast.KindReturnStatement:
		n = &ast.ReturnStatement{Argument: child(r.Argument), Span: span}
	case ast.KindBlockStatement:
		n = &ast.BlockStatement{Body: rawList(r.Body), Span: span}
	case ast.KindIfStatement:
		n = &ast.IfStatement{
			Test:       child(r.Test),
			Consequent: child(r.Consequent),
			Alternate:  child(r.Alternate),
			Span:       span,
		}
	case ast.KindForStatement:
		n = &ast.ForStatement{
			Init:   child(r.Init),
			Test:   child(r.Test),
			Update: child(r.Update),
			Body:   child(r.Body),
			Span:   span,
		}
	case ast.KindWhileStatement:
		n = &ast.WhileStatement{Test: child(r.Test), Body: child(r.Body), Span: span}
	case ast.KindBreakStatement:
		n = &ast.BreakStatement{Span: span}
	case ast.KindContinueStatement:
		n = &ast.ContinueStatement{Span: span}
	case ast.KindVariableDeclaration:
		decl := &ast.VariableDeclaration{Binding: r.DeclKind, Span: span}
		for _, d := range list(r.Declarations) {
			if d == nil {
				continue
			}
			vd, ok := d.(*ast.VariableDeclarator)
			if !ok {
				return nil, p.errorf("VariableDeclaration: unexpected %s in declarations", d.Kind())
			}
			decl.Declarations = append(decl.Declarations, vd)
		}
		n = decl
	case ast.KindVariableDeclarator:
		n = &ast.VariableDeclarator{ID: child(r.ID), Init: child(r.Init), Span: span}
	case ast.KindFunctionDeclaration:
		fn := &ast.FunctionDeclaration{Params: list(r.Params), Span: span}
		if id := child(r.ID); id != nil {
			ident, ok := id.(*ast.Identifier)
			if !ok {
				return nil, p.errorf("FunctionDeclaration: id is %s", id.Kind())
			}
			fn.ID = ident
		}
		if body := child(r.Body); body != nil {
			block, ok := body.(*ast.BlockStatement)
			if !ok {
				return nil, p.errorf("FunctionDeclaration: body is %s", body.Kind())
			}
			fn.Body = block
		}
		n = fn
	case ast.KindLiteral:
		lit := &ast.Literal{Raw: r.Raw, Span: span}
		if !isNull(r.Value) {
			if e := json.Unmarshal(r.Value, &lit.Value); e != nil {
				return nil, p.errorf("Literal: %v", e)
			}
		}
		n = lit
	case ast.KindIdentifier:
		n = &ast.Identifier{Name: r.Name, Span: span}
	case ast.KindBinaryExpression:
		n = &ast.BinaryExpression{Operator: r.Operator, Left: child(r.Left), Right: child(r.Right), Span: span}
	case ast.KindLogicalExpression:
		n = &ast.LogicalExpression{Operator: r.Operator, Left: child(r.Left), Right: child(r.Right), Span: span}
	case ast.KindUnaryExpression:
		n = &ast.UnaryExpression{Operator: r.Operator, Prefix: r.Prefix, Argument: child(r.Argument), Span: span}
	case ast.KindMemberExpression:
		n = &ast.MemberExpression{Object: child(r.Object), Property: child(r.Property), Computed: r.Computed, Span: span}
	case ast.KindCallExpression:
		n = &ast.CallExpression{Callee: child(r.Callee), Arguments: list(r.Arguments), Span: span}
	case ast.KindArrayExpression:
		n = &ast.ArrayExpression{Elements: list(r.Elements), Span: span}
	case ast.KindUpdateExpression:
		n = &ast.UpdateExpression{Operator: r.Operator, Prefix: r.Prefix, Argument: child(r.Argument), Span: span}
	case ast.KindAssignmentExpression:
		n = &ast.AssignmentExpression{Operator: r.Operator, Left: child(r.Left), Right: child(r.Right), Span: span}
	default:
		n = &ast.Unknown{Type: r.Type, Span: span}
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}
