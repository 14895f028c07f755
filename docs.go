package compilador

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DocsOption configures documentation retrieval.
type DocsOption func(*docsOptions)

type docsOptions struct {
	category string
	topic    string
	quick    bool
}

// DocsCategory filters documentation to a specific category.
// Valid categories: "operators", "statements", "errors"
func DocsCategory(cat string) DocsOption {
	return func(o *docsOptions) {
		o.category = cat
	}
}

// DocsTopic retrieves documentation for a specific topic.
// Examples: "+", "<=", "if", "assignment"
func DocsTopic(topic string) DocsOption {
	return func(o *docsOptions) {
		o.topic = topic
	}
}

// DocsQuick returns a concise plain text quick reference.
func DocsQuick() DocsOption {
	return func(o *docsOptions) {
		o.quick = true
	}
}

// OperatorDoc describes a binary operator.
type OperatorDoc struct {
	Operator    string `json:"operator"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// StatementDoc describes a statement form.
type StatementDoc struct {
	Name        string `json:"name"`
	Form        string `json:"form"`
	Description string `json:"description"`
}

// ErrorDoc describes one of the error kinds the pipeline can report.
type ErrorDoc struct {
	Kind        string `json:"kind"`
	Stage       string `json:"stage"`
	Description string `json:"description"`
}

// Operators returns documentation for every binary operator, ordered by
// operator text. Operators at the "term" level bind tighter than those at
// the "expression" level; within a level, chains group left to right.
func Operators() []OperatorDoc {
	docs := []OperatorDoc{
		{"+", "expression", "addition"},
		{"-", "expression", "subtraction"},
		{"*", "term", "multiplication"},
		{"/", "term", "division"},
		{"==", "expression", "equality comparison"},
		{"!=", "expression", "inequality comparison"},
		{"<", "expression", "less than comparison"},
		{">", "expression", "greater than comparison"},
		{"<=", "expression", "less than or equal comparison"},
		{">=", "expression", "greater than or equal comparison"},
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Operator < docs[j].Operator
	})
	return docs
}

// Statements returns documentation for every statement form.
func Statements() []StatementDoc {
	return []StatementDoc{
		{
			Name:        "assignment",
			Form:        "name = expression;",
			Description: "binds the value of an expression to an identifier",
		},
		{
			Name:        "expression",
			Form:        "expression;",
			Description: "a bare expression evaluated as a statement",
		},
		{
			Name:        "if",
			Form:        "if (condition) branch [else branch]",
			Description: "conditional; each branch is a braced block or a single statement",
		},
		{
			Name:        "block",
			Form:        "{ statements }",
			Description: "a brace delimited sequence of statements",
		},
	}
}

// Errors returns documentation for the error kinds the pipeline reports.
func Errors() []ErrorDoc {
	return []ErrorDoc{
		{"lex error", "lexer", "an unrecognized character in the source text"},
		{"syntax error", "parser", "the tokens do not form a valid program"},
		{"codegen error", "generator", "a syntax tree node the generator does not support"},
	}
}

type docsDocument struct {
	Operators  []OperatorDoc  `json:"operators,omitempty"`
	Statements []StatementDoc `json:"statements,omitempty"`
	Errors     []ErrorDoc     `json:"errors,omitempty"`
}

// Docs returns reference documentation for the language as JSON, or as
// plain text when DocsQuick is given. With no options, all categories are
// included.
func Docs(opts ...DocsOption) (string, error) {
	var o docsOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.quick {
		return quickReference(), nil
	}
	if o.topic != "" {
		return topicDocs(o.topic)
	}
	doc := docsDocument{}
	switch o.category {
	case "":
		doc.Operators = Operators()
		doc.Statements = Statements()
		doc.Errors = Errors()
	case "operators":
		doc.Operators = Operators()
	case "statements":
		doc.Statements = Statements()
	case "errors":
		doc.Errors = Errors()
	default:
		return "", fmt.Errorf("unknown docs category: %q", o.category)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func topicDocs(topic string) (string, error) {
	for _, op := range Operators() {
		if op.Operator == topic {
			data, err := json.MarshalIndent(op, "", "  ")
			return string(data), err
		}
	}
	for _, stmt := range Statements() {
		if stmt.Name == topic {
			data, err := json.MarshalIndent(stmt, "", "  ")
			return string(data), err
		}
	}
	for _, e := range Errors() {
		if e.Kind == topic {
			data, err := json.MarshalIndent(e, "", "  ")
			return string(data), err
		}
	}
	return "", fmt.Errorf("unknown docs topic: %q", topic)
}

func quickReference() string {
	var out strings.Builder
	out.WriteString("Statements:\n")
	for _, stmt := range Statements() {
		fmt.Fprintf(&out, "  %-12s %s\n", stmt.Name, stmt.Form)
	}
	out.WriteString("Operators:\n")
	ops := make([]string, 0, 10)
	for _, op := range Operators() {
		ops = append(ops, op.Operator)
	}
	fmt.Fprintf(&out, "  %s\n", strings.Join(ops, " "))
	return out.String()
}
