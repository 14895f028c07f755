package ast

import (
	"bytes"

	"github.com/Lefpe/compilador/internal/token"
)

// Assign is a statement node used to describe a variable assignment.
type Assign struct {
	Name  *Ident         // assignment target, always an identifier
	OpPos token.Position // position of "="
	Value Expr           // assigned value
}

func (s *Assign) Pos() token.Position { return s.Name.Pos() }
func (s *Assign) End() token.Position { return s.Value.End() }

func (s *Assign) String() string {
	var out bytes.Buffer
	out.WriteString(s.Name.Name)
	out.WriteString(" = ")
	out.WriteString(s.Value.String())
	return out.String()
}

// If is a statement node that holds a condition and one or two branches.
// Either branch may be a brace-delimited *Block or a single statement,
// since braces are optional in the source. Alternative is nil when the
// statement has no else clause.
type If struct {
	If          token.Position // position of "if" keyword
	Lparen      token.Position // position of "("
	Cond        Expr           // condition
	Rparen      token.Position // position of ")"
	Consequence Node           // then branch
	Alternative Node           // else branch; nil if no else
}

func (s *If) Pos() token.Position { return s.If }
func (s *If) End() token.Position {
	if s.Alternative != nil {
		return s.Alternative.End()
	}
	return s.Consequence.End()
}

func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(s.Cond.String())
	out.WriteString(") ")
	out.WriteString(s.Consequence.String())
	if s.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(s.Alternative.String())
	}
	return out.String()
}

// Block is a node that holds a sequence of statements. This is used to
// represent the brace-delimited body of a conditional. A statement may be
// a bare expression, so the sequence holds Nodes rather than a narrower
// statement type.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Node         // statements in the block, in source order
	Rbrace token.Position // position of "}"
}

func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return s.Rbrace.Advance(1) }

func (s *Block) String() string {
	var out bytes.Buffer
	for i, stmt := range s.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}
