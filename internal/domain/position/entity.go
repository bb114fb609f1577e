package position

import "time"

// Position is a catalog entry shifts and requests reference by id.
type Position struct {
	ID        string
	Name      string
	Color     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
