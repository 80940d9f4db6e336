package numtheory

// Collatz returns the Collatz sequence from n down to 1, both
// endpoints included. Non-positive n returns an empty sequence.
//
// Termination relies on the Collatz conjecture holding over the
// practical input range; there is no cycle guard.
func Collatz(n int) []int {
	if n <= 0 {
		return []int{}
	}
	seq := []int{n}
	for n != 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		seq = append(seq, n)
	}
	return seq
}
