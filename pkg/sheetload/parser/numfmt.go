package parser

import "strings"

// isBuiltinDateFormat reports whether a built-in number format ID is a date
// or time format (ECMA-376 18.8.30, including the CJK ranges).
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// isDateFormat reports whether a custom number format code renders a date or
// time. Quoted literals, escaped characters and bracketed colors or conditions
// are ignored; elapsed-time tokens such as [h] count as time.
func isDateFormat(code string) bool {
	// Only the first (positive) section decides.
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}
	code = strings.ToLower(code)
	if code == "" || code == "general" || code == "@" {
		return false
	}

	var b strings.Builder
	inQuote := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				i = len(code)
				continue
			}
			token := code[i+1 : i+end]
			if token == "h" || token == "hh" || token == "m" || token == "mm" || token == "s" || token == "ss" {
				return true
			}
			i += end
		default:
			b.WriteByte(ch)
		}
	}

	return strings.ContainsAny(b.String(), "ymdhs")
}
