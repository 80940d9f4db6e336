// Package symbolic is a small deterministic expression kernel over
// exact rationals. It covers what the toolkit's CLI needs
// (polynomial simplification, substitution, differentiation and
// exact evaluation) and is not a CAS: no factoring, no symbolic
// limits, rule-based simplification only.
package symbolic

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is a symbolic expression. Implementations are immutable; every
// operation returns a new expression.
type Expr interface {
	// Simplify returns a reduced form: constants folded, identity
	// elements dropped, nested sums/products flattened.
	Simplify() Expr
	// Sub substitutes value for every occurrence of the named variable.
	Sub(name string, value Expr) Expr
	// Diff differentiates with respect to the named variable.
	Diff(name string) Expr
	// Eval reduces to an exact rational, false if variables remain.
	Eval() (*big.Rat, bool)
	String() string
}

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// N builds an integer constant.
func N(n int64) Num { return Num{val: new(big.Rat).SetInt64(n)} }

// Frac builds the rational p/q. Panics on q == 0.
func Frac(p, q int64) Num {
	if q == 0 {
		panic("symbolic: zero denominator")
	}
	return Num{val: big.NewRat(p, q)}
}

func ratNum(r *big.Rat) Num { return Num{val: new(big.Rat).Set(r)} }

func (n Num) Simplify() Expr          { return n }
func (n Num) Sub(string, Expr) Expr   { return n }
func (n Num) Diff(string) Expr        { return N(0) }
func (n Num) Eval() (*big.Rat, bool)  { return new(big.Rat).Set(n.val), true }
func (n Num) isZero() bool            { return n.val.Sign() == 0 }
func (n Num) isOne() bool             { return n.val.Cmp(big.NewRat(1, 1)) == 0 }

func (n Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// Sym is a symbolic variable.
type Sym struct{ name string }

// Var builds a variable reference.
func Var(name string) Sym { return Sym{name: name} }

func (s Sym) Simplify() Expr         { return s }
func (s Sym) Eval() (*big.Rat, bool) { return nil, false }
func (s Sym) String() string         { return s.name }

func (s Sym) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s Sym) Diff(name string) Expr {
	if s.name == name {
		return N(1)
	}
	return N(0)
}

// Sum is an n-ary sum of terms.
type Sum struct{ terms []Expr }

// Add builds and simplifies a sum.
func Add(terms ...Expr) Expr { return (Sum{terms: terms}).Simplify() }

func (a Sum) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		switch s := t.Simplify().(type) {
		case Sum:
			flat = append(flat, s.terms...)
		default:
			flat = append(flat, s)
		}
	}

	constant := new(big.Rat)
	rest := make([]Expr, 0, len(flat))
	for _, t := range flat {
		if n, ok := t.(Num); ok {
			constant.Add(constant, n.val)
			continue
		}
		rest = append(rest, t)
	}
	if constant.Sign() != 0 || len(rest) == 0 {
		rest = append(rest, ratNum(constant))
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return Sum{terms: rest}
}

func (a Sum) Sub(name string, value Expr) Expr {
	out := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.Sub(name, value)
	}
	return Add(out...)
}

func (a Sum) Diff(name string) Expr {
	out := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.Diff(name)
	}
	return Add(out...)
}

func (a Sum) Eval() (*big.Rat, bool) {
	acc := new(big.Rat)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc.Add(acc, v)
	}
	return acc, true
}

func (a Sum) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// Product is an n-ary product of factors.
type Product struct{ factors []Expr }

// Mul builds and simplifies a product.
func Mul(factors ...Expr) Expr { return (Product{factors: factors}).Simplify() }

func (m Product) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		switch s := f.Simplify().(type) {
		case Product:
			flat = append(flat, s.factors...)
		default:
			flat = append(flat, s)
		}
	}

	coeff := big.NewRat(1, 1)
	rest := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(Num); ok {
			if n.isZero() {
				return N(0)
			}
			coeff.Mul(coeff, n.val)
			continue
		}
		rest = append(rest, f)
	}
	if len(rest) == 0 {
		return ratNum(coeff)
	}
	if coeff.Cmp(big.NewRat(1, 1)) != 0 {
		rest = append([]Expr{ratNum(coeff)}, rest...)
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return Product{factors: rest}
}

func (m Product) Sub(name string, value Expr) Expr {
	out := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		out[i] = f.Sub(name, value)
	}
	return Mul(out...)
}

// Diff applies the product rule: d(f1...fn) = Σ f1...fi'...fn.
func (m Product) Diff(name string) Expr {
	terms := make([]Expr, 0, len(m.factors))
	for i := range m.factors {
		fs := make([]Expr, len(m.factors))
		copy(fs, m.factors)
		fs[i] = m.factors[i].Diff(name)
		terms = append(terms, Mul(fs...))
	}
	return Add(terms...)
}

func (m Product) Eval() (*big.Rat, bool) {
	acc := big.NewRat(1, 1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc.Mul(acc, v)
	}
	return acc, true
}

func (m Product) String() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, ok := f.(Sum); ok {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

// Power is base raised to an integer exponent.
type Power struct {
	base Expr
	exp  int
}

// Pow builds and simplifies a power with integer exponent >= 0.
func Pow(base Expr, exp int) Expr { return (Power{base: base, exp: exp}).Simplify() }

func (p Power) Simplify() Expr {
	base := p.base.Simplify()
	switch {
	case p.exp == 0:
		return N(1)
	case p.exp == 1:
		return base
	}
	if n, ok := base.(Num); ok {
		acc := big.NewRat(1, 1)
		for i := 0; i < p.exp; i++ {
			acc.Mul(acc, n.val)
		}
		return ratNum(acc)
	}
	return Power{base: base, exp: p.exp}
}

func (p Power) Sub(name string, value Expr) Expr {
	return Pow(p.base.Sub(name, value), p.exp)
}

// Diff applies the power rule with the chain rule:
// d(u^n) = n * u^(n-1) * u'.
func (p Power) Diff(name string) Expr {
	return Mul(N(int64(p.exp)), Pow(p.base, p.exp-1), p.base.Diff(name))
}

func (p Power) Eval() (*big.Rat, bool) {
	v, ok := p.base.Eval()
	if !ok {
		return nil, false
	}
	acc := big.NewRat(1, 1)
	for i := 0; i < p.exp; i++ {
		acc.Mul(acc, v)
	}
	return acc, true
}

func (p Power) String() string {
	inner := p.base.String()
	switch p.base.(type) {
	case Sum, Product:
		inner = "(" + inner + ")"
	}
	return fmt.Sprintf("%s^%d", inner, p.exp)
}
