package ast

// Kind is the ESTree "type" label of a node.
type Kind string

const (
	KindProgram              Kind = "Program"
	KindExpressionStatement  Kind = "ExpressionStatement"
	KindReturnStatement      Kind = "ReturnStatement"
	KindBlockStatement       Kind = "BlockStatement"
	KindIfStatement          Kind = "IfStatement"
	KindForStatement         Kind = "ForStatement"
	KindWhileStatement       Kind = "WhileStatement"
	KindBreakStatement       Kind = "BreakStatement"
	KindContinueStatement    Kind = "ContinueStatement"
	KindVariableDeclaration  Kind = "VariableDeclaration"
	KindVariableDeclarator   Kind = "VariableDeclarator"
	KindFunctionDeclaration  Kind = "FunctionDeclaration"
	KindLiteral              Kind = "Literal"
	KindIdentifier           Kind = "Identifier"
	KindBinaryExpression     Kind = "BinaryExpression"
	KindLogicalExpression    Kind = "LogicalExpression"
	KindUnaryExpression      Kind = "UnaryExpression"
	KindMemberExpression     Kind = "MemberExpression"
	KindCallExpression       Kind = "CallExpression"
	KindArrayExpression      Kind = "ArrayExpression"
	KindUpdateExpression     Kind = "UpdateExpression"
	KindAssignmentExpression Kind = "AssignmentExpression"
)

type Node interface {
	Kind() Kind
	GetSpan() Span
}

type Position struct {
	Line int `json:"line"`
	Col  int `json:"column"`
}

// Span mirrors the ESTree "loc" object. It is zero when the parser was
// run without location tracking.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Span) IsZero() bool { return s.Start.Line == 0 && s.End.Line == 0 }

type Program struct {
	Body       []Node
	SourceType string
	Span       Span
}

func (*Program) Kind() Kind      { return KindProgram }
func (n *Program) GetSpan() Span { return n.Span }

type ExpressionStatement struct {
	Expression Node
	Span       Span
}

func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (n *ExpressionStatement) GetSpan() Span { return n.Span }

type ReturnStatement struct {
	Argument Node // nil for a bare return
	Span     Span
}

func (*ReturnStatement) Kind() Kind      { return KindReturnStatement }
func (n *ReturnStatement) GetSpan() Span { return n.Span }

type BlockStatement struct {
	Body []Node
	Span Span
}

func (*BlockStatement) Kind() Kind      { return KindBlockStatement }
func (n *BlockStatement) GetSpan() Span { return n.Span }

type IfStatement struct {
	Test       Node
	Consequent Node
	Alternate  Node // nil when there is no else branch
	Span       Span
}

func (*IfStatement) Kind() Kind      { return KindIfStatement }
func (n *IfStatement) GetSpan() Span { return n.Span }

type ForStatement struct {
	Init   Node
	Test   Node
	Update Node
	Body   Node
	Span   Span
}

func (*ForStatement) Kind() Kind      { return KindForStatement }
func (n *ForStatement) GetSpan() Span { return n.Span }

type WhileStatement struct {
	Test Node
	Body Node
	Span Span
}

func (*WhileStatement) Kind() Kind      { return KindWhileStatement }
func (n *WhileStatement) GetSpan() Span { return n.Span }

type BreakStatement struct {
	Span Span
}

func (*BreakStatement) Kind() Kind      { return KindBreakStatement }
func (n *BreakStatement) GetSpan() Span { return n.Span }

type ContinueStatement struct {
	Span Span
}

func (*ContinueStatement) Kind() Kind      { return KindContinueStatement }
func (n *ContinueStatement) GetSpan() Span { return n.Span }

// Binding keywords of a VariableDeclaration.
const (
	BindingVar   = "var"
	BindingLet   = "let"
	BindingConst = "const"
)

type VariableDeclaration struct {
	Binding      string // "var", "let" or "const"
	Declarations []*VariableDeclarator
	Span         Span
}

func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (n *VariableDeclaration) GetSpan() Span { return n.Span }

type VariableDeclarator struct {
	ID   Node
	Init Node // nil when the declarator has no initializer
	Span Span
}

func (*VariableDeclarator) Kind() Kind      { return KindVariableDeclarator }
func (n *VariableDeclarator) GetSpan() Span { return n.Span }

type FunctionDeclaration struct {
	ID     *Identifier
	Params []Node
	Body   *BlockStatement
	Span   Span
}

func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (n *FunctionDeclaration) GetSpan() Span { return n.Span }

// Literal holds the decoded JSON value: float64, string, bool, nil, or a
// map for regex literals. Raw is the source spelling when available.
type Literal struct {
	Value any
	Raw   string
	Span  Span
}

func (*Literal) Kind() Kind      { return KindLiteral }
func (n *Literal) GetSpan() Span { return n.Span }

type Identifier struct {
	Name string
	Span Span
}

func (*Identifier) Kind() Kind      { return KindIdentifier }
func (n *Identifier) GetSpan() Span { return n.Span }

type BinaryExpression struct {
	Operator string
	Left     Node
	Right    Node
	Span     Span
}

func (*BinaryExpression) Kind() Kind      { return KindBinaryExpression }
func (n *BinaryExpression) GetSpan() Span { return n.Span }

type LogicalExpression struct {
	Operator string
	Left     Node
	Right    Node
	Span     Span
}

func (*LogicalExpression) Kind() Kind      { return KindLogicalExpression }
func (n *LogicalExpression) GetSpan() Span { return n.Span }

type UnaryExpression struct {
	Operator string
	Prefix   bool
	Argument Node
	Span     Span
}

func (*UnaryExpression) Kind() Kind      { return KindUnaryExpression }
func (n *UnaryExpression) GetSpan() Span { return n.Span }

type MemberExpression struct {
	Object   Node
	Property Node
	Computed bool // obj[prop] rather than obj.prop
	Span     Span
}

func (*MemberExpression) Kind() Kind      { return KindMemberExpression }
func (n *MemberExpression) GetSpan() Span { return n.Span }

type CallExpression struct {
	Callee    Node
	Arguments []Node
	Span      Span
}

func (*CallExpression) Kind() Kind      { return KindCallExpression }
func (n *CallExpression) GetSpan() Span { return n.Span }

type ArrayExpression struct {
	Elements []Node // holes decode as nil
	Span     Span
}

func (*ArrayExpression) Kind() Kind      { return KindArrayExpression }
func (n *ArrayExpression) GetSpan() Span { return n.Span }

type UpdateExpression struct {
	Operator string
	Prefix   bool
	Argument Node
	Span     Span
}

func (*UpdateExpression) Kind() Kind      { return KindUpdateExpression }
func (n *UpdateExpression) GetSpan() Span { return n.Span }

type AssignmentExpression struct {
	Operator string
	Left     Node
	Right    Node
	Span     Span
}

func (*AssignmentExpression) Kind() Kind      { return KindAssignmentExpression }
func (n *AssignmentExpression) GetSpan() Span { return n.Span }

// Unknown stands in for any node type outside the modeled set.
type Unknown struct {
	Type string
	Span Span
}

func (n *Unknown) Kind() Kind    { return Kind(n.Type) }
func (n *Unknown) GetSpan() Span { return n.Span }
