package verification

import (
	"service/internal/entities"
)

func ToDomain(e *VerificationLogEntryDB) *entities.VerificationLogEntry {
	if e == nil {
		return nil
	}

	return &entities.VerificationLogEntry{
		ID:            e.ID,
		PackageID:     e.PackageID,
		StaffID:       e.StaffID,
		SuiteEntered:  e.SuiteEntered,
		CodeEntered:   e.CodeEntered,
		Verified:      e.Verified,
		FailureReason: e.FailureReason,
		CreatedAt:     e.CreatedAt,
	}
}
