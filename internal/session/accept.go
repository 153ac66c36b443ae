package session

// Accept returns the accepted prefix of raw for code. Input longer than code
// is truncated, and input stops at the first position where code expects a
// newline that raw does not supply. Wrong characters elsewhere are kept.
func Accept(code, raw []rune) []rune {
	n := len(raw)
	if n > len(code) {
		n = len(code)
	}
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		if code[i] == '\n' && raw[i] != '\n' {
			break
		}
		out = append(out, raw[i])
	}
	return out
}
