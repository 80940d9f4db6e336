package symbolic

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// ErrParse marks a malformed expression string.
var ErrParse = errors.New("symbolic: cannot parse expression")

// ParsePolynomial parses a univariate polynomial like "3x^2 - 2x + 1"
// or "x^3 + 1/2x". It returns the expression and the variable name
// (empty when the input is constant). Coefficients may be integers,
// fractions ("3/2") or decimals.
func ParsePolynomial(input string) (Expr, string, error) {
	s := strings.ReplaceAll(input, " ", "")
	s = strings.ReplaceAll(s, "*", "")
	if s == "" {
		return nil, "", fmt.Errorf("%w: empty input", ErrParse)
	}

	varName := ""
	var terms []Expr
	i := 0
	for i < len(s) {
		sign := int64(1)
		for i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				sign = -sign
			}
			i++
		}
		start := i
		for i < len(s) && s[i] != '+' && s[i] != '-' {
			i++
		}
		raw := s[start:i]
		if raw == "" {
			return nil, "", fmt.Errorf("%w: dangling sign in %q", ErrParse, input)
		}

		term, name, err := parseTerm(raw, sign)
		if err != nil {
			return nil, "", err
		}
		if name != "" {
			if varName != "" && name != varName {
				return nil, "", fmt.Errorf("%w: multiple variables %q and %q", ErrParse, varName, name)
			}
			varName = name
		}
		terms = append(terms, term)
	}
	return Add(terms...), varName, nil
}

func parseTerm(raw string, sign int64) (Expr, string, error) {
	varAt := -1
	for j, r := range raw {
		if unicode.IsLetter(r) {
			varAt = j
			break
		}
	}

	if varAt == -1 {
		coeff, err := parseRat(raw)
		if err != nil {
			return nil, "", err
		}
		return Mul(N(sign), ratNum(coeff)), "", nil
	}

	coeff := big.NewRat(1, 1)
	if varAt > 0 {
		c, err := parseRat(raw[:varAt])
		if err != nil {
			return nil, "", err
		}
		coeff = c
	}

	rest := raw[varAt:]
	name := rest
	exp := 1
	if caret := strings.IndexByte(rest, '^'); caret >= 0 {
		name = rest[:caret]
		e, err := strconv.Atoi(rest[caret+1:])
		if err != nil || e < 0 {
			return nil, "", fmt.Errorf("%w: bad exponent in %q", ErrParse, raw)
		}
		exp = e
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return nil, "", fmt.Errorf("%w: bad variable in %q", ErrParse, raw)
		}
	}

	return Mul(N(sign), ratNum(coeff), Pow(Var(name), exp)), name, nil
}

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: bad coefficient %q", ErrParse, s)
	}
	return r, nil
}
