package customer

import "strings"

func isValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	return at > 0 && at < len(trimmed)-1
}
