package auth

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("missing or malformed actor identity")
	ErrUnknownRole     = errors.New("unknown actor role")
)

type RoleType string

const (
	RoleStaff    RoleType = "staff"
	RoleCustomer RoleType = "customer"
)

func (r RoleType) String() string {
	return string(r)
}

// Capability — личность вызывающего, восстановленная из заголовков
// запроса. Проверку подлинности выполняет внешний шлюз, здесь только
// разбор и проверка полномочий.
type Capability struct {
	ActorID int64
	Role    RoleType
}

func (c Capability) IsStaff() bool {
	return c.Role == RoleStaff
}

// CanActFor разрешает операцию над данными клиента: сотрудникам — над
// любыми, клиенту — только над своими.
func (c Capability) CanActFor(customerID int64) bool {
	if c.IsStaff() {
		return true
	}
	return c.Role == RoleCustomer && c.ActorID == customerID
}

// Resolve разбирает пару заголовков идентичности в Capability.
func Resolve(actorIDHeader, roleHeader string) (Capability, error) {
	actorID, err := strconv.ParseInt(strings.TrimSpace(actorIDHeader), 10, 64)
	if err != nil || actorID <= 0 {
		return Capability{}, ErrUnauthenticated
	}

	role := RoleType(strings.ToLower(strings.TrimSpace(roleHeader)))
	switch role {
	case RoleStaff, RoleCustomer:
	default:
		return Capability{}, ErrUnknownRole
	}

	return Capability{ActorID: actorID, Role: role}, nil
}
