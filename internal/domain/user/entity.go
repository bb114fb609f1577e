package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

var RoleValues = []string{
	string(RoleEmployee),
	string(RoleManager),
	string(RoleAdmin),
}

// IsManagerTier reports whether the role may review requests, edit shifts and
// record attendance.
func (r Role) IsManagerTier() bool {
	return r == RoleManager || r == RoleAdmin
}

// User is the read-side identity contract the scheduling engine consumes.
// Authentication and profile CRUD live elsewhere; the engine only needs the
// role, the pay rate and the vacation allotment.
type User struct {
	ID                 string
	Email              string
	Name               string
	Role               Role
	PositionID         *string
	HourlyRate         decimal.Decimal
	AnnualVacationDays int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	PositionName *string
}
