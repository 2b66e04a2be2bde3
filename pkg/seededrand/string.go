package seededrand

// Alphabets for String.
const (
	Numeric      = "0123456789"
	AlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NumericString is a shorthand for String(g, l, Numeric).
func NumericString(g *Generator, l int) string {
	return String(g, l, Numeric)
}

// AlphaNumericString is a shorthand for String(g, l, AlphaNumeric).
func AlphaNumericString(g *Generator, l int) string {
	return String(g, l, AlphaNumeric)
}

// String generates a string of length l containing only bytes from
// alphabet. An empty alphabet or l <= 0 yields "".
func String(g *Generator, l int, alphabet string) string {
	if l <= 0 || alphabet == "" {
		return ""
	}
	b := make([]byte, l)
	for i := range b {
		b[i] = alphabet[g.Intn(len(alphabet))]
	}
	return string(b)
}
