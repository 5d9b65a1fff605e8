package holiday

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // YYYY-MM-DD
	Type        string `json:"type"`
	IsRecurring bool   `json:"is_recurring"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if HolidayType(r.Type) != HolidayRegular && HolidayType(r.Type) != HolidaySpecial {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be regular or special"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	IsRecurring bool   `json:"is_recurring"`
}
