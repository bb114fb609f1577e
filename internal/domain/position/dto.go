package position

import "github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"

type CreatePositionRequest struct {
	Name  string  `json:"position_name"`
	Color *string `json:"position_color,omitempty"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_name",
			Message: "position_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "position_name",
			Message: "position_name must not exceed 255 characters",
		})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_color",
			Message: "position_color must be a #RRGGBB hex color",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePositionRequest struct {
	ID       string  `json:"position_id"`
	Name     *string `json:"position_name,omitempty"`
	Color    *string `json:"position_color,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_name",
			Message: "position_name must not be empty",
		})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_color",
			Message: "position_color must be a #RRGGBB hex color",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"position_name"`
	Color    *string `json:"position_color,omitempty"`
	IsActive bool    `json:"is_active"`
}

func NewPositionResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:       p.ID,
		Name:     p.Name,
		Color:    p.Color,
		IsActive: p.IsActive,
	}
}
