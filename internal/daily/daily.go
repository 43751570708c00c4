// apps/solver/internal/daily/daily.go
//
// Deterministic target selection.
//
// Targets are never drawn from process-wide random state: a target is
// picked by HMAC(salt, key) % n, where key is either a UTC date (the
// daily word) or an explicit per-session seed.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns the daily index for date.
func WordIndex(date time.Time, salt string, answersLen int) int {
	return SeedIndex(DateKey(date), salt, answersLen)
}

// SeedIndex returns a deterministic index in [0, answersLen) for seed.
func SeedIndex(seed, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(seed))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
