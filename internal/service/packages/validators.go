package packages

import "strings"

func isValidPackageID(packageID string) bool {
	return strings.TrimSpace(packageID) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "received", "processing", "shipped", "arrived", "delivered":
		return true
	default:
		return false
	}
}
