// Package codegen renders an abstract syntax tree (AST) back into
// normalized source text. The output is canonical rather than a reproduction
// of the original input: every binary operation is fully parenthesized and
// if statement branches are always brace delimited.
package codegen

import (
	"strconv"
	"strings"

	"github.com/Lefpe/compilador/ast"
	"github.com/Lefpe/compilador/errz"
)

// DefaultIndent is the prefix applied to if statement branches.
const DefaultIndent = "  "

// Option is a function that configures the generator.
type Option func(*Generator)

// WithIndent overrides the branch indent prefix.
func WithIndent(indent string) Option {
	return func(g *Generator) {
		g.indent = indent
	}
}

// Generator renders AST nodes as source text.
type Generator struct {
	indent string
}

// New returns a generator with the given options applied.
func New(options ...Option) *Generator {
	g := &Generator{indent: DefaultIndent}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// Generate renders the given node and returns the result. It renders a
// program or block node by rendering each statement in order, joined by
// newlines with no trailing separator. Passing a node type the generator
// does not know about is an error.
func Generate(node ast.Node, options ...Option) (string, error) {
	return New(options...).Generate(node)
}

// Generate renders the given node and returns the result.
func (g *Generator) Generate(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.Program:
		return g.generateStmts(n.Stmts)
	case *ast.Block:
		return g.generateStmts(n.Stmts)
	case *ast.Assign:
		value, err := g.Generate(n.Value)
		if err != nil {
			return "", err
		}
		return n.Name.Name + " = " + value + ";", nil
	case *ast.If:
		return g.generateIf(n)
	case *ast.Infix:
		left, err := g.Generate(n.X)
		if err != nil {
			return "", err
		}
		right, err := g.Generate(n.Y)
		if err != nil {
			return "", err
		}
		return "(" + left + " " + n.Op + " " + right + ")", nil
	case *ast.Ident:
		return n.Name, nil
	case *ast.Int:
		return strconv.FormatInt(n.Value, 10), nil
	default:
		return "", errz.NewStructuredErrorf(errz.ErrCodeGen,
			errz.SourceLocation{}, "unsupported node type (%T)", node)
	}
}

func (g *Generator) generateStmts(stmts []ast.Node) (string, error) {
	rendered := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		out, err := g.Generate(stmt)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, out)
	}
	return strings.Join(rendered, "\n"), nil
}

// generateIf renders an if statement with braces around both branches, even
// when the parsed source omitted them. The indent prefix is applied once per
// branch, not per nesting level, so nested branch bodies keep a flat indent.
func (g *Generator) generateIf(n *ast.If) (string, error) {
	cond, err := g.Generate(n.Cond)
	if err != nil {
		return "", err
	}
	consequence, err := g.Generate(n.Consequence)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	out.WriteString("if (")
	out.WriteString(cond)
	out.WriteString(") {\n")
	out.WriteString(g.indent)
	out.WriteString(consequence)
	out.WriteString("\n}")
	if n.Alternative != nil {
		alternative, err := g.Generate(n.Alternative)
		if err != nil {
			return "", err
		}
		out.WriteString(" else {\n")
		out.WriteString(g.indent)
		out.WriteString(alternative)
		out.WriteString("\n}")
	}
	return out.String(), nil
}
