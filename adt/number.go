package adt

import (
	"fmt"
	"strconv"
	"strings"
)

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDigitFor(c byte, hex bool) bool {
	if hex {
		return isHexDigit(c)
	}
	return c >= '0' && c <= '9'
}

// ParseNumber parses a numeric token starting at cursor in buf, populating n
// as an INTEGER or REAL leaf with enough metadata for PrintNumber to
// reproduce the original text. Returns the cursor just past the token (or
// past a single rejected byte, for the "not actually a number" cases
// described in spec.md §4.2). On a false-positive reject, n.Kind is left
// unchanged so the caller can tell rejection from success.
func ParseNumber(n *Node, buf []byte, cursor int) int {
	if cursor >= len(buf) {
		return cursor
	}
	start := cursor
	c := buf[cursor]

	if c == 'e' || c == 'E' {
		return cursor + 1
	}
	if c == '.' || c == '+' || c == '-' {
		next := cursor + 1
		if next >= len(buf) || !(isHexDigit(buf[next]) || buf[next] == '.') {
			return cursor + 1
		}
	}

	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		cursor++
	}

	isReal := false
	leadDigit := true
	hasLeadingDot := false
	if cursor < len(buf) && buf[cursor] == '.' {
		isReal = true
		hasLeadingDot = true
		leadDigit = false
		cursor++
	}

	isHex := false
	intStart := cursor
	intEnd := cursor
	if !hasLeadingDot {
		if cursor+1 < len(buf) && buf[cursor] == '0' && (buf[cursor+1] == 'x' || buf[cursor+1] == 'X') {
			isHex = true
			cursor += 2
			intStart = cursor
		}
		for cursor < len(buf) && isDigitFor(buf[cursor], isHex) {
			cursor++
		}
		intEnd = cursor
	}

	fracStart, fracEnd := -1, -1
	if hasLeadingDot {
		fracStart = cursor
		for cursor < len(buf) && isDigitFor(buf[cursor], isHex) {
			cursor++
		}
		fracEnd = cursor
	} else if cursor < len(buf) && buf[cursor] == '.' {
		isReal = true
		leadDigit = true
		cursor++
		fracStart = cursor
		for cursor < len(buf) && isDigitFor(buf[cursor], isHex) {
			cursor++
		}
		fracEnd = cursor
		if cursor < len(buf) && buf[cursor] == '.' {
			return start + 1
		}
	}

	hasExp := false
	expNeg := false
	expVal := 0
	if cursor < len(buf) && (buf[cursor] == 'e' || buf[cursor] == 'E') {
		save := cursor
		ec := cursor + 1
		if ec < len(buf) && (buf[ec] == '+' || buf[ec] == '-') {
			expNeg = buf[ec] == '-'
			ec++
		}
		digStart := ec
		for ec < len(buf) && buf[ec] >= '0' && buf[ec] <= '9' {
			ec++
		}
		if ec > digStart {
			hasExp = true
			expVal, _ = strconv.Atoi(string(buf[digStart:ec]))
			cursor = ec
		} else {
			cursor = save
		}
	}

	n.Props = PropNone
	n.NegZero = false
	n.HasLeadDigit = leadDigit

	baseText := ""
	if intEnd > intStart {
		baseText = string(buf[intStart:intEnd])
	}
	fracText := ""
	if fracStart >= 0 && fracEnd > fracStart {
		fracText = string(buf[fracStart:fracEnd])
	}
	n.Base = []byte(baseText)
	n.FracBase = []byte(fracText)

	fracLeadingZeros := 0
	for _, ch := range fracText {
		if ch != '0' {
			break
		}
		fracLeadingZeros++
	}
	n.FracLeadingZeros = fracLeadingZeros

	allZeroDigits := true
	for _, ch := range baseText + fracText {
		if ch != '0' {
			allZeroDigits = false
			break
		}
	}
	if neg && allZeroDigits {
		n.NegZero = true
	}

	decimalExp := expVal
	if expNeg {
		decimalExp = -expVal
	}
	n.DecimalExponent = decimalExp

	if isHex {
		n.Props |= PropIsHex
		v, _ := strconv.ParseInt(baseText, 16, 64)
		if neg {
			v = -v
		}
		if hasExp && !expNeg {
			for i := 0; i < expVal; i++ {
				v *= 10
			}
		}
		n.SetInteger(v)
		return cursor
	}

	if !isReal {
		v, _ := strconv.ParseInt(baseText, 10, 64)
		if neg {
			v = -v
		}
		if hasExp {
			if expNeg {
				isReal = true
			} else {
				for i := 0; i < expVal; i++ {
					v *= 10
				}
			}
		}
		if !isReal {
			if hasExp {
				n.Props |= PropIsExp
			}
			n.SetInteger(v)
			return cursor
		}
	}

	// Real.
	text := baseText
	if hasLeadingDot || fracText != "" {
		text += "." + fracText
	}
	if text == "" || strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	f, _ := strconv.ParseFloat(text, 64)
	if neg {
		f = -f
	}
	if hasExp {
		mul := 1.0
		digitMul := 10.0
		if expNeg {
			digitMul = 0.1
		}
		for i := 0; i < expVal; i++ {
			mul *= digitMul
		}
		f *= mul
		n.Props |= PropIsExp
	} else {
		n.Props |= PropIsParsedReal
	}
	n.SetReal(f)
	return cursor
}

// PrintNumber renders n's numeric/sentinel value per spec.md §4.2, using
// recorded metadata to reproduce the parsed form (exponent, hex, leading
// dot, negative zero) wherever it was captured. Exponent forms always print
// a '.' after the base digits (1e3 prints as 1.e3), hex digits print in
// lower case, and a leading '+' is not kept.
func PrintNumber(n *Node) string {
	s, _ := PrintNumberChecked(n)
	return s
}

// PrintNumberChecked is PrintNumber with an INVALID_TYPE error for non-numeric nodes.
func PrintNumberChecked(n *Node) (string, error) {
	switch {
	case n.Props&PropNaN != 0:
		return "NaN", nil
	case n.Props&PropNaNNeg != 0:
		return "-NaN", nil
	case n.Props&PropInfinity != 0:
		return "Infinity", nil
	case n.Props&PropInfinityNeg != 0:
		return "-Infinity", nil
	case n.Props&PropTrue != 0:
		return "true", nil
	case n.Props&PropFalse != 0:
		return "false", nil
	case n.Props&PropNull != 0:
		return "null", nil
	}

	if n.Kind != KindInteger && n.Kind != KindReal {
		return "", newErr(ErrInvalidType, "PrintNumber", nil)
	}

	var sb strings.Builder
	neg := n.NegZero
	if !neg && n.Props&(PropIsExp|PropIsParsedReal) != 0 {
		// Base holds digits only, so a negative value's sign is emitted here.
		neg = (n.Kind == KindReal && n.real < 0) || (n.Kind == KindInteger && n.integer < 0)
	}
	if neg {
		sb.WriteByte('-')
	}

	switch {
	case n.Props&PropIsExp != 0:
		fmt.Fprintf(&sb, "%s.%s%se%d", n.Base, strings.Repeat("0", n.FracLeadingZeros), trimFracBody(n), n.DecimalExponent)
	case n.Props&PropIsParsedReal != 0:
		if n.HasLeadDigit {
			fmt.Fprintf(&sb, "%s.%s%s", n.Base, strings.Repeat("0", n.FracLeadingZeros), trimFracBody(n))
		} else {
			fmt.Fprintf(&sb, ".%s%s", strings.Repeat("0", n.FracLeadingZeros), trimFracBody(n))
		}
	case n.Props&PropIsHex != 0:
		v := n.integer
		if v < 0 {
			sb.WriteByte('-')
			v = -v
		}
		fmt.Fprintf(&sb, "0x%x", v)
	case n.Kind == KindInteger:
		fmt.Fprintf(&sb, "%d", n.integer)
	default:
		fmt.Fprintf(&sb, "%f", n.real)
	}
	return sb.String(), nil
}

func trimFracBody(n *Node) string {
	if n.FracLeadingZeros >= len(n.FracBase) {
		return ""
	}
	return string(n.FracBase[n.FracLeadingZeros:])
}
