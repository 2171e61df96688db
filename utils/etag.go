package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateETag derives a stable entity tag from a record id and its most
// recent timestamp, for If-None-Match conditional GETs.
func GenerateETag(id string, t time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s-%d", id, t.UnixNano())))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
