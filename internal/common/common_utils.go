package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NormalizeICAO upper-cases and trims an airport code
func NormalizeICAO(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
