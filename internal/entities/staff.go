package entities

import "time"

// Staff — сотрудник склада, проводящий выдачу посылок.
type Staff struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
