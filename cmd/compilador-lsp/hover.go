package main

import (
	"context"
	"fmt"

	"github.com/Lefpe/compilador/ast"
	"github.com/Lefpe/compilador/codegen"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "Hover").Msg("failed to get document")
		return nil, nil
	}
	if doc.ast == nil {
		return nil, nil
	}
	node := nodeAtPosition(doc.ast, params.Position)
	if node == nil {
		return nil, nil
	}

	var text string
	switch n := node.(type) {
	case *ast.Ident:
		text = fmt.Sprintf("variable %s", n.Name)
	case *ast.Int:
		text = fmt.Sprintf("integer literal %d", n.Value)
	case *ast.Infix:
		if normalized, err := codegen.Generate(n); err == nil {
			text = normalized
		}
	case *ast.Assign:
		if normalized, err := codegen.Generate(n); err == nil {
			text = normalized
		}
	}
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.PlainText, Value: text},
	}, nil
}

// nodeAtPosition returns the innermost node covering pos, or nil. A
// preorder walk visits parents before children, so the last covering
// node is the innermost one. The program root spans everything and is
// not a useful answer, so it is skipped.
func nodeAtPosition(program *ast.Program, pos protocol.Position) ast.Node {
	var innermost ast.Node
	for node := range ast.Preorder(program) {
		if _, ok := node.(*ast.Program); ok {
			continue
		}
		if coversPosition(node, pos) {
			innermost = node
		}
	}
	return innermost
}

func coversPosition(node ast.Node, pos protocol.Position) bool {
	line, col := int(pos.Line), int(pos.Character)
	start, end := node.Pos(), node.End()
	afterStart := start.Line < line || (start.Line == line && start.Column <= col)
	beforeEnd := end.Line > line || (end.Line == line && end.Column > col)
	return afterStart && beforeEnd
}
