package numtheory

// Fibonacci returns the nth Fibonacci number, 0-indexed.
func Fibonacci(n int) int {
	if n <= 1 {
		if n < 0 {
			return 0
		}
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// FibonacciSequence returns the first count Fibonacci numbers.
func FibonacciSequence(count int) []int {
	if count <= 0 {
		return []int{}
	}
	seq := make([]int, count)
	if count > 1 {
		seq[1] = 1
	}
	for i := 2; i < count; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq
}
