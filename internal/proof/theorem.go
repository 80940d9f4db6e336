package proof

// Theorem is a statement with a proven flag and at most one owned
// proof. It is created unproven; callers attach a proof and set
// Proven only after the proof's step chain verifies. The transition
// is one-directional and manual.
type Theorem struct {
	Statement Statement
	Proven    bool
	Proof     *Proof
}

// NewTheorem creates an unproven theorem from a description.
func NewTheorem(description string) *Theorem {
	return &Theorem{Statement: Logical(description)}
}

func (t *Theorem) String() string {
	status := "unproven"
	if t.Proven {
		status = "proven"
	}
	return t.Statement.Description + " (" + status + ")"
}
