package types

import "esgo/internal/ast"

// Binding says whether a declared name may be reassigned.
type Binding int

const (
	Reassignable Binding = iota
	Fixed
)

func (b Binding) String() string {
	if b == Fixed {
		return "fixed"
	}
	return "reassignable"
}

// Keyword is the Go declaration keyword used when a binding is written in
// explicit form.
func (b Binding) Keyword() string {
	if b == Fixed {
		return "const"
	}
	return "var"
}

// BindingOf maps a declaration's keyword onto a binding kind. Only const
// is fixed; var and let are both reassignable.
func BindingOf(decl *ast.VariableDeclaration) Binding {
	if decl != nil && decl.Binding == ast.BindingConst {
		return Fixed
	}
	return Reassignable
}
