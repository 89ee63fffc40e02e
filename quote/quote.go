// Package quote reads double-quoted string literals with the escape
// sequences the script language supports.
package quote

import "strings"

// Unquote consumes a double-quoted string literal at the start of src.
// It returns the decoded value and the byte length of the literal
// (including both quotes). ok is false when src does not start with a
// complete literal.
func Unquote(src []byte) (value string, n int, ok bool) {
	if len(src) < 2 || src[0] != '"' {
		return "", 0, false
	}

	var b strings.Builder
	i := 1
	for i < len(src) {
		switch c := src[i]; c {
		case '"':
			return b.String(), i + 1, true
		case '\\':
			if i+1 >= len(src) {
				return "", 0, false
			}
			i++
			switch e := src[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '0':
				b.WriteByte(0)
			default:
				return "", 0, false
			}
			i++
		case '\n':
			// string literals do not span lines
			return "", 0, false
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, false
}

// Quote renders value as a double-quoted literal.
func Quote(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
