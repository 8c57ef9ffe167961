package validate

const (
	maxNonceLength    = 128
	minUsernameLength = 3
	maxUsernameLength = 50
)

// IsNonce reports whether s is usable as a payment request nonce. Nonces are
// caller-chosen opaque identifiers; they only need to be non-empty, bounded
// and URL-safe.
func IsNonce(s string) bool {
	if s == "" || len(s) > maxNonceLength {
		return false
	}
	for _, c := range s {
		if !isNonceChar(c) {
			return false
		}
	}
	return true
}

func IsUsername(s string) bool {
	if len(s) < minUsernameLength || len(s) > maxUsernameLength {
		return false
	}
	for _, c := range s {
		if !isUsernameChar(c) {
			return false
		}
	}
	return true
}

func isNonceChar(c rune) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.'
}

func isUsernameChar(c rune) bool {
	return c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.'
}
