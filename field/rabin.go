package field

// This file implements Rabin's irreducibility test over F_q using plain
// coefficient-slice polynomial arithmetic (ascending degree, trimmed of
// leading zeros). It exists only to extend the pinned irreducible
// tables in irreducible.go to (q, n) pairs they don't cover; it runs
// once per uncovered (q, n) at Field construction and is not on any hot
// path, so clarity is favoured over the bit-packed tricks used
// elsewhere in this package.

// polyTrim drops high-degree zero coefficients, keeping at least the
// constant term.
func polyTrim(p []int) []int {
	i := len(p)
	for i > 1 && p[i-1] == 0 {
		i--
	}
	return p[:i]
}

func polyIsZero(p []int) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func polyAddMod(a, b []int, q int) []int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	res := make([]int, n)
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		res[i] = (av + bv) % q
	}
	return polyTrim(res)
}

func polyMulMod(a, b []int, q int) []int {
	if polyIsZero(a) || polyIsZero(b) {
		return []int{0}
	}
	res := make([]int, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if bv == 0 {
				continue
			}
			res[i+j] = (res[i+j] + av*bv) % q
		}
	}
	return polyTrim(res)
}

// invModQ returns the multiplicative inverse of a nonzero element of
// F_q, q prime. For q in {2,3} every nonzero element is its own
// inverse, but this is written generally.
func invModQ(a, q int) int {
	a = ((a % q) + q) % q
	for b := 1; b < q; b++ {
		if (a*b)%q == 1 {
			return b
		}
	}
	return 1
}

// polyDivMod returns (quotient, remainder) of a / b over F_q.
func polyDivMod(a, b []int, q int) ([]int, []int) {
	rem := append([]int(nil), a...)
	rem = polyTrim(rem)
	if polyIsZero(b) {
		return []int{0}, rem
	}
	degB := len(b) - 1
	invLead := invModQ(b[degB], q)
	quot := make([]int, 0)
	for !polyIsZero(rem) && len(rem)-1 >= degB {
		degR := len(rem) - 1
		coeff := (rem[degR] * invLead) % q
		shift := degR - degB
		for len(quot) <= shift {
			quot = append(quot, 0)
		}
		quot[shift] = coeff
		// rem -= coeff * x^shift * b
		sub := make([]int, shift+len(b))
		for i, bv := range b {
			sub[i+shift] = (bv * coeff) % q
		}
		negSub := make([]int, len(sub))
		for i, v := range sub {
			negSub[i] = (q - v%q) % q
		}
		rem = polyAddMod(rem, negSub, q)
	}
	if len(quot) == 0 {
		quot = []int{0}
	}
	return polyTrim(quot), polyTrim(rem)
}

func polyGCD(a, b []int, q int) []int {
	a = polyTrim(append([]int(nil), a...))
	b = polyTrim(append([]int(nil), b...))
	for !polyIsZero(b) {
		_, r := polyDivMod(a, b, q)
		a, b = b, r
	}
	// normalize to monic
	deg := len(a) - 1
	if a[deg] != 0 && a[deg] != 1 {
		inv := invModQ(a[deg], q)
		for i := range a {
			a[i] = (a[i] * inv) % q
		}
	}
	return a
}

// polyPowMod computes base^exp mod modulus over F_q via square-and-
// multiply.
func polyPowMod(base []int, exp uint64, modulus []int, q int) []int {
	result := []int{1}
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = polyMulMod(result, b, q)
			_, result = polyDivMod(result, modulus, q)
		}
		b = polyMulMod(b, b, q)
		_, b = polyDivMod(b, modulus, q)
		exp >>= 1
	}
	return polyTrim(result)
}

// primeFactors returns the distinct prime factors of n.
func primeFactors(n int) []int {
	var factors []int
	m := n
	for p := 2; p*p <= m; p++ {
		if m%p == 0 {
			factors = append(factors, p)
			for m%p == 0 {
				m /= p
			}
		}
	}
	if m > 1 {
		factors = append(factors, m)
	}
	return factors
}

// isIrreducible runs Rabin's irreducibility test: f (ascending
// coefficients, monic, degree n = len(f)-1) is irreducible over F_q
// iff x^(q^n) == x (mod f) and, for every prime r dividing n,
// gcd(x^(q^(n/r)) - x, f) == 1.
func isIrreducible(f []int, q int) bool {
	n := len(f) - 1
	if n < 1 {
		return false
	}
	x := []int{0, 1}

	qn := intPow(q, n)
	xqn := polyPowMod(x, uint64(qn), f, q)
	if !polyEqual(xqn, x) {
		return false
	}

	for _, r := range primeFactors(n) {
		qnr := intPow(q, n/r)
		xqnr := polyPowMod(x, uint64(qnr), f, q)
		diff := polySubMod(xqnr, x, q)
		g := polyGCD(f, diff, q)
		if !(len(g) == 1 && g[0] == 1) {
			return false
		}
	}
	return true
}

func polySubMod(a, b []int, q int) []int {
	neg := make([]int, len(b))
	for i, v := range b {
		neg[i] = (q - v%q) % q
	}
	return polyAddMod(a, neg, q)
}

func polyEqual(a, b []int) bool {
	a = polyTrim(append([]int(nil), a...))
	b = polyTrim(append([]int(nil), b...))
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intPow(base, exp int) int {
	res := 1
	for i := 0; i < exp; i++ {
		res *= base
	}
	return res
}
