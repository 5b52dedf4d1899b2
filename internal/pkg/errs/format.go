package errs

import (
	"fmt"
	"strings"
)

// sanitize flattens values into a single line so messages stay log friendly.
func sanitize(v any) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", v))
}
