// Package proof models axioms, theorems and step-wise derivations.
//
// The model is a fixed-shape illustrative structure, not a logic
// engine: Verify checks that the dependency graph of a proof is
// well-formed (every premise established before it is used), never
// that the mathematics in the justification text is sound.
package proof

// StatementKind classifies the shape of an assertion.
type StatementKind string

const (
	KindEquality   StatementKind = "equality"
	KindInequality StatementKind = "inequality"
	KindLogical    StatementKind = "logical"
)

// Statement is an atomic logical assertion. Statements are immutable
// values; identity is the description text, so two statements with
// the same description are the same assertion wherever they appear.
type Statement struct {
	Kind        StatementKind
	Description string
}

// Equality builds an equality statement.
func Equality(description string) Statement {
	return Statement{Kind: KindEquality, Description: description}
}

// Inequality builds an inequality statement.
func Inequality(description string) Statement {
	return Statement{Kind: KindInequality, Description: description}
}

// Logical builds a generic logical statement.
func Logical(description string) Statement {
	return Statement{Kind: KindLogical, Description: description}
}

func (s Statement) String() string {
	return s.Description
}

// Axiom is a statement taken as given; it needs no justification and
// is visible to every step of a proof that contains it.
type Axiom struct {
	Statement
}

// NewAxiom builds an axiom from a description.
func NewAxiom(description string) Axiom {
	return Axiom{Statement: Logical(description)}
}
