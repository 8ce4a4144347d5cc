// Package ioformat implements the orbit-list input parser and the
// smooth-representative output writer for the text formats spec.md §6
// defines. It fails hard on any structural mismatch, in the style of
// the teacher's sequential, hard-failing file-parsing code
// (setup/DuskBLS12_381/audit.go) and its fmt.Errorf wrapping
// convention (utils/utils.go).
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Chrisvossetje/smooth-polynomial-counter/curve"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
	"github.com/Chrisvossetje/smooth-polynomial-counter/orbit"
)

// ErrConfigMismatch is returned when the (D, q) embedded in an input
// file's header disagrees with the build's configuration, per
// spec.md §7's "Config mismatch (file vs build): Fatal."
var ErrConfigMismatch = errors.New("ioformat: input file header does not match build configuration")

// ErrMalformedLine is returned for any body line that does not parse,
// per spec.md §7's "Malformed input line: Fatal."
var ErrMalformedLine = errors.New("ioformat: malformed input line")

// ReadOrbitList parses an orbit-list file per spec.md §6: any number of
// leading '#' comment lines, then the "<D> | <q>" line, then any
// further comment lines, then one record per remaining line of the
// form "<term> <term> ... | <orbit_size>".
func ReadOrbitList(r io.Reader, basis []monomial.Term, q int) ([]orbit.Record, error) {
	d := 0
	if len(basis) > 0 {
		d = basis[0].A + basis[0].B + basis[0].C
	}
	idx := monomial.Index(basis)
	m := len(basis)

	scanner := bufio.NewScanner(r)
	headerSeen := false
	var records []orbit.Record

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSeen {
			gotD, gotQ, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			if gotD != d || gotQ != q {
				return nil, fmt.Errorf("%w: file declares D=%d q=%d, build expects D=%d q=%d", ErrConfigMismatch, gotD, gotQ, d, q)
			}
			headerSeen = true
			continue
		}
		rec, err := parseRecord(line, idx, m, q)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading orbit list: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("%w: missing \"<D> | <q>\" header line", ErrConfigMismatch)
	}
	return records, nil
}

func parseHeader(line string) (d, q int, err error) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformedLine, line)
	}
	d, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	q, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformedLine, line)
	}
	return d, q, nil
}

func parseRecord(line string, idx map[[3]int]int, m, q int) (orbit.Record, error) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return orbit.Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	size, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return orbit.Record{}, fmt.Errorf("%w: orbit size in %q: %v", ErrMalformedLine, line, err)
	}

	coeffs := make(monomial.Coeffs, m)
	for _, tok := range strings.Fields(parts[0]) {
		us := strings.SplitN(tok, "_", 2)
		if len(us) != 2 || len(us[1]) != 3 {
			return orbit.Record{}, fmt.Errorf("%w: term %q in %q", ErrMalformedLine, tok, line)
		}
		c, err := strconv.Atoi(us[0])
		if err != nil || c <= 0 || c >= q {
			return orbit.Record{}, fmt.Errorf("%w: coefficient in term %q", ErrMalformedLine, tok)
		}
		a, errA := digit(us[1][0])
		b, errB := digit(us[1][1])
		cc, errC := digit(us[1][2])
		if errA != nil || errB != nil || errC != nil {
			return orbit.Record{}, fmt.Errorf("%w: exponents in term %q", ErrMalformedLine, tok)
		}
		j, ok := idx[[3]int{a, b, cc}]
		if !ok {
			return orbit.Record{}, fmt.Errorf("%w: term %q is not in the configured basis", ErrMalformedLine, tok)
		}
		coeffs[j] = c
	}
	return orbit.Record{Representative: coeffs, Size: size}, nil
}

func digit(b byte) (int, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("not a digit: %q", b)
	}
	return int(b - '0'), nil
}

// WriteOrbitList renders records back to the input format (used by the
// round-trip scenario in spec.md §8; cmd/spc does not call it).
func WriteOrbitList(w io.Writer, basis []monomial.Term, q int, records []orbit.Record) error {
	d := 0
	if len(basis) > 0 {
		d = basis[0].A + basis[0].B + basis[0].C
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# generated orbit list")
	fmt.Fprintln(bw, "# smooth-polynomial-counter")
	fmt.Fprintln(bw, "# Homogeneous Degree | Field Order")
	fmt.Fprintf(bw, "%d | %d\n", d, q)
	fmt.Fprintln(bw, "# <polynomial terms> | <orbit size>")
	for _, rec := range records {
		fmt.Fprintf(bw, "%s | %d\n", FormatPolynomial(rec.Representative, basis), rec.Size)
	}
	return bw.Flush()
}

// FormatPolynomial renders a coefficient vector as space-separated
// C_XYZ terms in basis order, omitting zero coefficients.
func FormatPolynomial(coeffs monomial.Coeffs, basis []monomial.Term) string {
	var sb strings.Builder
	first := true
	for j, c := range coeffs {
		if c == 0 {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		t := basis[j]
		fmt.Fprintf(&sb, "%d_%d%d%d", c, t.A, t.B, t.C)
	}
	return sb.String()
}

// WriteResults writes the output file format: one header line, then
// one "<polynomial> | <orbit_size> | [<p1>, ..., <pNmax>]" record per
// smooth representative.
func WriteResults(w io.Writer, basis []monomial.Term, results []curve.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# polynomial | orbit size | point counts per extension level")
	for _, r := range results {
		fmt.Fprintf(bw, "%s | %d | %s\n", FormatPolynomial(r.Representative, basis), r.OrbitSize, formatPoints(r.Points))
	}
	return bw.Flush()
}

func formatPoints(points []uint64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range points {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", p)
	}
	sb.WriteByte(']')
	return sb.String()
}
