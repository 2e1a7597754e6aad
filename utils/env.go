package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateBookingReference builds a human-readable reference from the
// current epoch-millisecond clock, e.g. "BK493820". Two requests inside the
// same millisecond window can produce the same reference; the store does
// not enforce uniqueness on it.
func GenerateBookingReference() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "BK" + ms[len(ms)-6:]
}
