package proof

// Method names the overall strategy of a proof.
type Method string

const (
	Direct        Method = "direct"
	Induction     Method = "induction"
	Contradiction Method = "contradiction"
)

// ProofStep is a single inference: premises in, one conclusion out,
// under a named rule. A step does not validate itself; the owning
// Proof checks during Verify that every premise was established
// before the step's position.
type ProofStep struct {
	Premises      []Statement
	Conclusion    Statement
	Rule          string
	Justification string
}

// NewStep builds a proof step.
func NewStep(premises []Statement, conclusion Statement, rule, justification string) ProofStep {
	return ProofStep{
		Premises:      premises,
		Conclusion:    conclusion,
		Rule:          rule,
		Justification: justification,
	}
}

// Proof owns an ordered sequence of axioms and proof steps for
// exactly one theorem. It is mutable only through AddAxiom and
// AddStep; once the theorem is marked proven the proof should not be
// touched again (a design invariant, not enforced structurally).
type Proof struct {
	theorem *Theorem
	method  Method
	axioms  []Axiom
	steps   []ProofStep
}

// NewProof creates an empty direct proof for the given theorem.
func NewProof(t *Theorem) *Proof {
	return &Proof{theorem: t, method: Direct}
}

// NewProofByContradiction creates an empty proof whose strategy is
// assuming the negation and deriving a contradiction.
func NewProofByContradiction(t *Theorem) *Proof {
	return &Proof{theorem: t, method: Contradiction}
}

// Theorem returns the theorem this proof belongs to.
func (p *Proof) Theorem() *Theorem { return p.theorem }

// Method returns the proof strategy.
func (p *Proof) Method() Method { return p.method }

// AddAxiom appends an axiom. Axioms are visible to every step.
func (p *Proof) AddAxiom(a Axiom) {
	p.axioms = append(p.axioms, a)
}

// AddStep appends a step. Premises are not validated here; append
// order is caller-controlled and checked lazily by Verify, so a
// malformed construction surfaces as Verify() == false rather than a
// failure at append time.
func (p *Proof) AddStep(s ProofStep) {
	p.steps = append(p.steps, s)
}

// Axioms returns the axiom sequence in append order.
func (p *Proof) Axioms() []Axiom { return p.axioms }

// Steps returns the step sequence in append order.
func (p *Proof) Steps() []ProofStep { return p.steps }

// Verify walks the step sequence and confirms that every premise of
// every step is found among the axioms or among the conclusions of
// strictly earlier steps, and that the final conclusion is the
// theorem's statement. Steps are appended in topological order, so
// only backward references are ever legal; a forward or dangling
// premise makes the whole proof unverifiable.
//
// This is a structural consistency check only.
func (p *Proof) Verify() bool {
	if len(p.steps) == 0 {
		return false
	}

	resolved := make(map[string]struct{}, len(p.axioms)+len(p.steps))
	for _, a := range p.axioms {
		resolved[a.Description] = struct{}{}
	}

	for _, s := range p.steps {
		for _, premise := range s.Premises {
			if _, ok := resolved[premise.Description]; !ok {
				return false
			}
		}
		resolved[s.Conclusion.Description] = struct{}{}
	}

	if p.theorem != nil {
		last := p.steps[len(p.steps)-1]
		return last.Conclusion.Description == p.theorem.Statement.Description
	}
	return true
}
