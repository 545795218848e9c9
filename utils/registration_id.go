package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRegistrationID builds a human-readable registration token of the
// form REG-<unix-millis>-<random>. Uniqueness rests on the timestamp plus the
// random suffix; there is no collision retry, collisions at this scale are
// astronomically unlikely.
func GenerateRegistrationID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("REG-%d-%s", time.Now().UnixMilli(), suffix)
}
