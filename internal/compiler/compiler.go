package compiler

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"esgo/internal/ast"
	"esgo/internal/parser"
)

type Result struct {
	Go          string
	Diagnostics []Diagnostic
	// Formatted is set when the goimports pass ran and accepted the output.
	Formatted bool
}

type Compiler struct {
	gen       *Generator
	goimports bool
	log       *slog.Logger
}

type Option func(*Compiler)

// WithGoimports runs goimports over the generated unit. The pass may drop
// the fixed fmt import when nothing prints, so it is off by default.
func WithGoimports(enabled bool) Option {
	return func(c *Compiler) { c.goimports = enabled }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Compiler) {
		if log != nil {
			c.log = log
		}
	}
}

func New(opts ...Option) *Compiler {
	c := &Compiler{gen: NewGenerator(), log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile loads an ESTree JSON document and generates Go for it.
func (c *Compiler) Compile(path string) (*Result, error) {
	root, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	res, err := c.CompileTree(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// CompileTree generates Go for an already decoded tree.
func (c *Compiler) CompileTree(root ast.Node) (*Result, error) {
	code, err := c.gen.Generate(root)
	if err != nil {
		return nil, err
	}
	res := &Result{Go: code, Diagnostics: Diagnose(root)}
	for _, d := range res.Diagnostics {
		c.log.Debug("unsupported construct", "kind", d.Kind, "pos", d.String())
	}
	if c.goimports {
		formatted, err := formatImports(code)
		if err != nil {
			// generated code is best effort and may not parse
			c.log.Warn("goimports skipped", "err", err)
		} else {
			res.Go = formatted
			res.Formatted = true
		}
	}
	c.log.Debug("generated unit",
		"size", humanize.Bytes(uint64(len(res.Go))),
		"diagnostics", len(res.Diagnostics),
		"formatted", res.Formatted)
	return res, nil
}
