package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID builds an entity id from a type prefix, the current unix
// millisecond timestamp and nine random characters. Uniqueness is
// probabilistic, not guaranteed; the store rejects the (negligible)
// collision case on insert.
func GenerateID(prefix string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), random)
}
