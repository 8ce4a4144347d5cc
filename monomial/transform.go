package monomial

// Coeffs is an unpacked coefficient vector in basis order: Coeffs[j] is
// the F_q coefficient (0..q-1) of the j-th basis monomial. It is the
// canonical polynomial representation used everywhere outside the
// orbit sweep's packed hot loop (curve evaluation, ioformat records).
type Coeffs []int

// Transform computes the coefficient vector, in the given basis, that
// the basis term maps to under the linear change of variables
// (x, y, z) <- m . (x, y, z), where m's rows are (a,b,c), (d,e,f),
// (g,h,i). This implements spec.md §4.2's change-of-variables action:
// (ax+by+cz)^A (dx+ey+fz)^B (gx+hy+iz)^C expanded via multinomial
// expansion and reduced mod q, ported from polynomials.rs's
// exponentiate_linear_polynomial + polynomial_product.
func Transform(term Term, m [3][3]int, idx map[[3]int]int, q int) Coeffs {
	out := make(Coeffs, len(idx))
	if term.K == 0 {
		return out
	}
	p1 := expandLinear(m[0][0], m[0][1], m[0][2], term.A, q)
	p2 := expandLinear(m[1][0], m[1][1], m[1][2], term.B, q)
	p3 := expandLinear(m[2][0], m[2][1], m[2][2], term.C, q)

	for _, t1 := range p1 {
		for _, t2 := range p2 {
			for _, t3 := range p3 {
				k := (t1.K * t2.K * t3.K * term.K) % q
				if k == 0 {
					continue
				}
				key := [3]int{t1.A + t2.A + t3.A, t1.B + t2.B + t3.B, t1.C + t2.C + t3.C}
				j, ok := idx[key]
				if !ok {
					continue
				}
				out[j] = (out[j] + k) % q
			}
		}
	}
	return out
}

// expandLinear expands (a*x + b*y + c*z)^m via the multinomial theorem,
// reduced mod q, dropping terms whose coefficient vanishes mod q or
// whose corresponding linear coefficient (a, b, or c) is zero while its
// exponent is positive.
func expandLinear(a, b, c, m, q int) []Term {
	var terms []Term
	for k1 := 0; k1 <= m; k1++ {
		for k2 := 0; k2 <= m-k1; k2++ {
			k3 := m - k1 - k2
			if k1 > 0 && a%q == 0 {
				continue
			}
			if k2 > 0 && b%q == 0 {
				continue
			}
			if k3 > 0 && c%q == 0 {
				continue
			}
			coeff := BinomialModQ(m, k1, k2, k3, q)
			if coeff == 0 {
				continue
			}
			scale := pow(a, k1, q) * pow(b, k2, q) * pow(c, k3, q) % q
			k := (coeff * scale) % q
			if k == 0 {
				continue
			}
			terms = append(terms, Term{A: k1, B: k2, C: k3, K: k})
		}
	}
	return terms
}

func pow(base, exp, q int) int {
	base = ((base % q) + q) % q
	res := 1
	for i := 0; i < exp; i++ {
		res = (res * base) % q
	}
	return res
}
