package staff

import "time"

type StaffDB struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
