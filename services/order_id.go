package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateOrderID creates the poptávka order number.
// Format: HH-{yyyymmdd}-{6 hex chars}, e.g. "HH-20260830-3FA2C1".
// There is no database sequence to count against — orders live in hash
// tokens — so uniqueness comes from the random suffix.
func GenerateOrderID(now time.Time) string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// fall back to a time-derived suffix rather than failing the order
		return fmt.Sprintf("HH-%s-%06d", now.Format("20060102"), now.UnixNano()%1000000)
	}
	return fmt.Sprintf("HH-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(b)))
}
