package main

import (
	"context"
	"testing"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/stretchr/testify/require"
)

// TestLanguageServerIntegration runs the server methods against one
// complete document, simulating real editor interactions.
func TestLanguageServerIntegration(t *testing.T) {
	sourceCode := `limit = 10;
count = 0;
total = (limit * 2);
if (count < limit) {
  count = (count + 1);
  total = (total - 1);
} else {
  count = 0;
}
(total + count);`

	server := &Server{
		name:    "test-compilador-lsp",
		version: "1.0.0-test",
		cache:   newCache(),
	}

	uri := protocol.DocumentURI("file:///example.src")

	t.Run("DocumentParsing", func(t *testing.T) {
		err := setTestDocument(server.cache, uri, sourceCode)
		require.NoError(t, err, "Failed to cache document")

		doc, err := server.cache.get(uri)
		require.NoError(t, err, "Failed to retrieve document")
		require.NoError(t, doc.err, "Document parsing failed")
		require.NotNil(t, doc.ast)
		require.Len(t, doc.ast.Stmts, 5)
	})

	t.Run("Completion", func(t *testing.T) {
		params := &protocol.CompletionParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: 9, Character: 1},
			},
		}

		result, err := server.Completion(context.Background(), params)
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotEmpty(t, result.Items)

		hasVariable := false
		hasKeyword := false
		hasOperator := false
		for _, item := range result.Items {
			switch item.Label {
			case "total":
				hasVariable = true
			case "if", "else":
				hasKeyword = true
			case "+", "==":
				hasOperator = true
			}
		}
		require.True(t, hasVariable, "Expected 'total' variable in completion")
		require.True(t, hasKeyword, "Expected keywords in completion")
		require.True(t, hasOperator, "Expected operators in completion")

		// Each variable appears once, however often it is assigned.
		variableCount := 0
		for _, item := range result.Items {
			if item.Label == "count" {
				variableCount++
			}
		}
		require.Equal(t, 1, variableCount)
	})

	t.Run("Hover", func(t *testing.T) {
		// Hover over "limit" in the condition on line 3.
		params := &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: 3, Character: 12},
			},
		}

		result, err := server.Hover(context.Background(), params)
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Equal(t, "variable limit", result.Contents.Value)
	})

	t.Run("DocumentSymbols", func(t *testing.T) {
		params := &protocol.DocumentSymbolParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		}

		result, err := server.DocumentSymbol(context.Background(), params)
		require.NoError(t, err)
		require.NotEmpty(t, result)

		symbolNames := []string{}
		for _, symbolInterface := range result {
			symbol, ok := symbolInterface.(protocol.DocumentSymbol)
			require.True(t, ok)
			symbolNames = append(symbolNames, symbol.Name)
		}
		require.Equal(t, []string{"limit", "count", "total", "count", "total", "count"}, symbolNames)
	})

	t.Run("Definition", func(t *testing.T) {
		// "total" usage in the final expression statement.
		params := &protocol.DefinitionParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: 9, Character: 1},
			},
		}

		result, err := server.Definition(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.Equal(t, uri, result[0].URI)
		require.EqualValues(t, 2, result[0].Range.Start.Line)
		require.EqualValues(t, 0, result[0].Range.Start.Character)
	})
}

// TestLanguageServerWithErrors checks that a document with syntax
// errors still supports completion.
func TestLanguageServerWithErrors(t *testing.T) {
	server := &Server{
		name:    "test-compilador-lsp",
		version: "1.0.0-test",
		cache:   newCache(),
	}

	invalidCode := `x = 42;
y = (x +
if (x {`

	uri := protocol.DocumentURI("file:///invalid.src")

	err := setTestDocument(server.cache, uri, invalidCode)
	require.NoError(t, err)

	doc, err := server.cache.get(uri)
	require.NoError(t, err)
	require.Error(t, doc.err)

	params := &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	}

	result, err := server.Completion(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Items, "Expected completion items even with syntax errors")

	// No document variables without an AST, keywords only.
	for _, item := range result.Items {
		require.NotEqual(t, protocol.CompletionItemKind(6), item.Kind)
	}
}

// TestLanguageServerExamples runs the cache and completion against a
// few typical source patterns.
func TestLanguageServerExamples(t *testing.T) {
	examples := map[string]string{
		"assignments": `name = 1;
age = 25;
valid = (age >= 18);`,

		"conditionals": `age = 18;
if (age >= 18) {
  status = 1;
} else {
  status = 0;
}`,

		"expressions": `a = 1;
b = 2;
(a + (b * 3));
((a == b) != (a < b));`,
	}

	server := &Server{
		name:    "test-compilador-lsp",
		version: "1.0.0-test",
		cache:   newCache(),
	}

	for name, code := range examples {
		t.Run(name, func(t *testing.T) {
			uri := protocol.DocumentURI("file:///" + name + ".src")

			err := setTestDocument(server.cache, uri, code)
			require.NoError(t, err)

			doc, err := server.cache.get(uri)
			require.NoError(t, err)
			require.NoError(t, doc.err, "Parse error in %s", name)
			require.NotNil(t, doc.ast)
			require.NotEmpty(t, doc.ast.Stmts)

			params := &protocol.CompletionParams{
				TextDocumentPositionParams: protocol.TextDocumentPositionParams{
					TextDocument: protocol.TextDocumentIdentifier{URI: uri},
					Position:     protocol.Position{Line: 0, Character: 0},
				},
			}

			result, err := server.Completion(context.Background(), params)
			require.NoError(t, err)
			require.NotNil(t, result)
			require.NotEmpty(t, result.Items)
		})
	}
}
