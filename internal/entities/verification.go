package entities

import "time"

// VerificationLogEntry — неизменяемая запись аудита одной попытки выдачи.
type VerificationLogEntry struct {
	ID            int64
	PackageID     int64
	StaffID       int64
	SuiteEntered  string
	CodeEntered   string
	Verified      bool
	FailureReason *string
	CreatedAt     time.Time
}

// VerificationResult — типизированный результат VerifyAndDeliver.
// Отказ валидации не является ошибкой, только Verified == false.
type VerificationResult struct {
	Verified          bool
	FailureReason     string
	Package           *Package
	ShipmentDelivered bool
}
