package staff

import (
	"service/internal/entities"
)

func ToDomain(s *StaffDB) *entities.Staff {
	if s == nil {
		return nil
	}

	return &entities.Staff{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
