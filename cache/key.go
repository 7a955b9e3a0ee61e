package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key derives the cache key for (text, targetLang) as
// "{targetLang}:{sha256(text)}". Hashing the text keeps key memory bounded
// for arbitrarily long inputs; callers are expected to pass pre-cleaned
// text so that equivalent messages share a key.
func Key(text, targetLang string) string {
	sum := sha256.Sum256([]byte(text))
	return targetLang + ":" + hex.EncodeToString(sum[:])
}
