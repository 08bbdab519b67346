package enginetypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// DefaultFormat is the numeric format vectors, quaternions and rects use when none is given.
const DefaultFormat = "F1"

// FormatFloat formats f with an engine numeric format string, always with '.' as the decimal separator.
//
// Supported formats are a letter followed by an optional precision:
//
//	F, f  fixed point, default 2 digits            F3 -> 1.500
//	N, n  fixed point with ',' thousands grouping   N1 -> 12,345.7
//	E, e  exponent, default 6 digits                E2 -> 1.50E+003
//	G, g  general, shortest when no precision       G  -> 1.5
//	R, r  shortest round trip                       R  -> 0.1
//
// An empty format is DefaultFormat. Unrecognised formats also fall back to DefaultFormat.
// Infinities and NaN print as Infinity, -Infinity and NaN in every format.
func FormatFloat(f float32, format string) string {
	switch {
	case math32.IsInf(f, 1):
		return "Infinity"
	case math32.IsInf(f, -1):
		return "-Infinity"
	case math32.IsNaN(f):
		return "NaN"
	}

	if format == "" {
		format = DefaultFormat
	}

	letter := format[0]
	prec := -1
	if len(format) > 1 {
		p, err := strconv.Atoi(format[1:])
		if err != nil || p < 0 || p > 99 {
			return FormatFloat(f, DefaultFormat)
		}
		prec = p
	}

	v := float64(f)
	switch letter {
	case 'F', 'f':
		if prec < 0 {
			prec = 2
		}
		return strconv.FormatFloat(v, 'f', prec, 32)
	case 'N', 'n':
		if prec < 0 {
			prec = 2
		}
		return groupThousands(strconv.FormatFloat(v, 'f', prec, 32))
	case 'E', 'e':
		if prec < 0 {
			prec = 6
		}
		return padExponent(strconv.FormatFloat(v, 'e', prec, 32), letter)
	case 'G', 'g':
		s := strconv.FormatFloat(v, 'g', prec, 32)
		if letter == 'G' {
			s = strings.ToUpper(s)
		}
		return s
	case 'R', 'r':
		return strings.ToUpper(strconv.FormatFloat(v, 'g', -1, 32))
	default:
		return FormatFloat(f, DefaultFormat)
	}
}

// padExponent rewrites a Go exponent, 1.5e+03, with at least three exponent digits and the format's letter case.
func padExponent(s string, letter byte) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}

	mantissa, sign, digits := s[:i], s[i+1:i+2], s[i+2:]
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return mantissa + string(letter) + sign + digits
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}
	if len(whole) <= 3 || whole[0] < '0' || whole[0] > '9' {
		return sign + s
	}

	var sb strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		sb.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(whole[i : i+3])
	}
	return sign + sb.String() + frac
}

// formatTuple formats components as "(a, b, c)".
func formatTuple(format string, components ...float32) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatFloat(c, format))
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatIntTuple formats components as "(a, b, c)".
func formatIntTuple(components ...int32) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(c), 10))
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatState implements fmt.Formatter for float tuples.
// %v and %s print the default format, float verbs apply to each component, i.e. %.3f gives (1.000, 2.000).
func formatState(f fmt.State, verb rune, prefix string, components ...float32) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, prefix+formatTuple(DefaultFormat, components...))
	case 'f', 'F', 'e', 'E', 'g', 'G':
		directive := fmt.FormatString(f, verb)
		parts := make([]string, len(components))
		for i, c := range components {
			parts[i] = fmt.Sprintf(directive, c)
		}
		fmt.Fprint(f, prefix+"("+strings.Join(parts, ", ")+")")
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, prefix+formatTuple(DefaultFormat, components...))
	}
}
