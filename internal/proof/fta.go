package proof

// BuildFundamentalTheoremOfArithmetic constructs the Fundamental
// Theorem of Arithmetic as a fully worked, verified theorem object:
// existence of a prime factorization by strong induction, uniqueness
// by contradiction via Euclid's lemma.
func BuildFundamentalTheoremOfArithmetic() *Theorem {
	theorem := NewTheorem(
		"Every integer greater than 1 either is prime itself or is the product " +
			"of prime numbers, and this product is unique up to the order of factors.")

	p := NewProof(theorem)

	smallestDivisor := NewAxiom("Every integer n > 1 has a smallest divisor d > 1")
	smallestIsPrime := NewAxiom("The smallest divisor d > 1 of any integer n > 1 is prime")
	wellOrdering := NewAxiom("Every nonempty set of positive integers has a least element")
	euclidLemma := NewAxiom("If a prime p divides a product ab, then p divides a or p divides b")

	p.AddAxiom(smallestDivisor)
	p.AddAxiom(smallestIsPrime)
	p.AddAxiom(wellOrdering)
	p.AddAxiom(euclidLemma)

	hasPrimeDivisor := Logical("Every integer n > 1 has a prime divisor p")
	p.AddStep(NewStep(
		[]Statement{smallestDivisor.Statement, smallestIsPrime.Statement},
		hasPrimeDivisor,
		"modus ponens",
		"The smallest divisor exceeding 1 exists and is prime, so it is a prime divisor of n."))

	splitsOff := Logical("If n > 1 is not prime, then n = p * m for a prime p and 1 < m < n")
	p.AddStep(NewStep(
		[]Statement{hasPrimeDivisor},
		splitsOff,
		"factor extraction",
		"Dividing n by its prime divisor p leaves a strictly smaller cofactor m > 1 when n is composite."))

	noMinimalCounterexample := Logical("No smallest integer without a prime factorization exists")
	p.AddStep(NewStep(
		[]Statement{wellOrdering.Statement, splitsOff},
		noMinimalCounterexample,
		"strong induction",
		"A minimal unfactorable n would split as p * m with m < n factorable, factoring n after all."))

	existence := Logical("Every integer n > 1 is a product of primes")
	p.AddStep(NewStep(
		[]Statement{hasPrimeDivisor, noMinimalCounterexample},
		existence,
		"induction conclusion",
		"With no minimal counterexample, the factorization property holds for all n > 1."))

	assumption := Logical("Assume a smallest n with two distinct prime factorizations p1...pr = q1...qs")
	p.AddStep(NewStep(
		[]Statement{wellOrdering.Statement},
		assumption,
		"hypothesis for contradiction",
		"If any integer had two distinct factorizations, well-ordering picks the least such n."))

	dividesSome := Logical("p1 divides some prime qj of the second factorization")
	p.AddStep(NewStep(
		[]Statement{assumption, euclidLemma.Statement},
		dividesSome,
		"Euclid's lemma",
		"p1 divides q1...qs, so by repeated application of the lemma it divides a single qj."))

	primesEqual := Equality("p1 = qj")
	p.AddStep(NewStep(
		[]Statement{dividesSome},
		primesEqual,
		"prime divisibility",
		"The only divisors of the prime qj are 1 and qj, and p1 > 1."))

	smallerCounterexample := Logical("n / p1 < n has two distinct prime factorizations")
	p.AddStep(NewStep(
		[]Statement{assumption, primesEqual},
		smallerCounterexample,
		"cancellation",
		"Cancelling p1 = qj from both factorizations leaves distinct factorizations of n / p1, contradicting minimality of n."))

	p.AddStep(NewStep(
		[]Statement{existence, smallerCounterexample},
		theorem.Statement,
		"contradiction",
		"Existence holds by induction and the uniqueness counterexample destroys itself, proving the theorem."))

	theorem.Proof = p
	if p.Verify() {
		theorem.Proven = true
	}
	return theorem
}
