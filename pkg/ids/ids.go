// pkg/ids/ids.go
package ids

import "github.com/google/uuid"

// New generates a fresh random (version 4) identifier in canonical textual form.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed identifier in canonical textual form:
// 36 characters, hyphenated hexadecimal groups, RFC 4122 variant, version 1-5.
// uuid.Parse alone is too permissive for this purpose (it also accepts URN and
// braced forms), so the length and bit-pattern checks are explicit.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if u.Variant() != uuid.RFC4122 {
		return false
	}
	v := u.Version()
	return v >= 1 && v <= 5
}
