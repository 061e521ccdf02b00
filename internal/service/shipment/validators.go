package shipment

import "strings"

func isValidTrackingNumber(trackingNumber string) bool {
	return strings.TrimSpace(trackingNumber) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "processing", "shipped", "in_transit", "arrived", "delivered":
		return true
	default:
		return false
	}
}
