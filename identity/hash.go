// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintHash creates the salted one-way hash of a stored
// fingerprint seed. Deterministic: the same seed and salt always
// produce the same actor key, so votes deduplicate across sessions.
// Returns first 8 bytes (16 hex chars) - enough for deduplication.
func FingerprintHash(seed, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(seed))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
