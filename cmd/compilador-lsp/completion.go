package main

import (
	"context"

	"github.com/Lefpe/compilador"
	"github.com/Lefpe/compilador/ast"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

var languageKeywords = []string{"else", "if"}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "Completion").Msg("failed to get document")
		return &protocol.CompletionList{IsIncomplete: false, Items: nil}, nil
	}

	var items []protocol.CompletionItem

	for _, keyword := range languageKeywords {
		items = append(items, protocol.CompletionItem{
			Label:  keyword,
			Kind:   14, // Keyword
			Detail: "keyword",
		})
	}

	for _, op := range compilador.Operators() {
		items = append(items, protocol.CompletionItem{
			Label:  op.Operator,
			Kind:   24, // Operator
			Detail: op.Description,
		})
	}

	if doc.ast != nil {
		for _, variable := range extractVariables(doc.ast) {
			items = append(items, protocol.CompletionItem{
				Label:  variable,
				Kind:   6, // Variable
				Detail: "variable",
			})
		}
	}

	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

// extractVariables returns the distinct assigned names in the program,
// in order of first assignment. Assignments inside if branches count.
func extractVariables(program *ast.Program) []string {
	var variables []string
	seen := map[string]bool{}
	ast.Inspect(program, func(node ast.Node) bool {
		assign, ok := node.(*ast.Assign)
		if !ok {
			return true
		}
		name := assign.Name.Name
		if name != "" && !seen[name] {
			variables = append(variables, name)
			seen[name] = true
		}
		return true
	})
	return variables
}
