// Package syntax provides AST validation and transformation.
package syntax

// Config controls which syntax forms are disallowed.
// Zero value allows all forms (full language).
type Config struct {
	// Statements
	DisallowAssignment bool // x = value;
	DisallowIf         bool // if/else statements
	DisallowBareExpr   bool // expression statements like (x + 1);

	// Style
	RequireBracedBranches bool // if branches must be blocks
	DisallowEmptyBlocks   bool // {} branches
}

// Presets for common use cases.
var (
	// ExpressionOnly restricts sources to bare expression statements:
	// literals, identifiers, operators, and grouping. No assignments,
	// no control flow. Useful when embedding the language as a pure
	// expression notation.
	ExpressionOnly = Config{
		DisallowAssignment: true,
		DisallowIf:         true,
	}

	// Strict allows the full language but enforces the brace style the
	// generator emits, so accepted sources round-trip shape for shape.
	Strict = Config{
		RequireBracedBranches: true,
		DisallowEmptyBlocks:   true,
	}

	// FullLanguage allows all forms (zero value, default behavior).
	FullLanguage = Config{}
)
