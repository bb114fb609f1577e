package user

type UserResponse struct {
	ID                 string  `json:"id"`
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	PositionID         *string `json:"position_id,omitempty"`
	PositionName       *string `json:"position_name,omitempty"`
	HourlyRate         string  `json:"hourly_rate"`
	AnnualVacationDays int     `json:"annual_vacation_days"`
	IsActive           bool    `json:"is_active"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               string(u.Role),
		PositionID:         u.PositionID,
		PositionName:       u.PositionName,
		HourlyRate:         u.HourlyRate.String(),
		AnnualVacationDays: u.AnnualVacationDays,
		IsActive:           u.IsActive,
	}
}
