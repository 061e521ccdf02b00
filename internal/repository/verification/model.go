package verification

import "time"

type VerificationLogEntryDB struct {
	ID            int64
	PackageID     int64
	StaffID       int64
	SuiteEntered  string
	CodeEntered   string
	Verified      bool
	FailureReason *string
	CreatedAt     time.Time
}
