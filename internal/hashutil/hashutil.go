package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ShortID creates a deterministic 7-character hex ID from the given parts.
// Parts are joined with a NUL byte so ("ab", "c") and ("a", "bc") differ.
func ShortID(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(hash[:4])[:7]
}

// RouteID is the ID given to a route that does not declare one.
func RouteID(name string) string {
	return ShortID("route", strings.TrimSpace(name))
}
