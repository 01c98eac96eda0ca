package ledger

import "encoding/base64"

// The password surrogate is reversible text encoding carried over from
// the demo credential flow. It provides no confidentiality or integrity
// guarantee and must not be treated as a security mechanism. Replace
// with a real credential scheme before exposing this beyond a single
// local user.

// EncodeSecret encodes a secret into its stored surrogate form.
func EncodeSecret(secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(secret))
}

// DecodeSecret recovers the secret from its surrogate. Malformed
// surrogates decode to the empty string, which never matches a
// non-empty supplied secret.
func DecodeSecret(surrogate string) string {
	b, err := base64.StdEncoding.DecodeString(surrogate)
	if err != nil {
		return ""
	}
	return string(b)
}
