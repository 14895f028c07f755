package compilador

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocs(t *testing.T) {
	out, err := Docs()
	require.NoError(t, err)

	var doc struct {
		Operators  []OperatorDoc  `json:"operators"`
		Statements []StatementDoc `json:"statements"`
		Errors     []ErrorDoc     `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Operators, 10)
	require.Len(t, doc.Statements, 4)
	require.Len(t, doc.Errors, 3)
}

func TestDocsCategory(t *testing.T) {
	out, err := Docs(DocsCategory("operators"))
	require.NoError(t, err)
	require.Contains(t, out, `"operator": "+"`)
	require.NotContains(t, out, `"statements"`)

	_, err = Docs(DocsCategory("bogus"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown docs category: "bogus"`)
}

func TestDocsTopic(t *testing.T) {
	out, err := Docs(DocsTopic("if"))
	require.NoError(t, err)
	require.Contains(t, out, "if (condition) branch [else branch]")

	out, err = Docs(DocsTopic("<="))
	require.NoError(t, err)
	require.Contains(t, out, "less than or equal")

	_, err = Docs(DocsTopic("while"))
	require.Error(t, err)
}

func TestDocsQuick(t *testing.T) {
	out, err := Docs(DocsQuick())
	require.NoError(t, err)
	require.Contains(t, out, "Statements:")
	require.Contains(t, out, "Operators:")
	require.Contains(t, out, "name = expression;")
}

func TestOperatorsSorted(t *testing.T) {
	ops := Operators()
	for i := 1; i < len(ops); i++ {
		require.Less(t, ops[i-1].Operator, ops[i].Operator)
	}
}
