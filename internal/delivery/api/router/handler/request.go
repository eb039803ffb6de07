package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"atelier/internal/delivery/api/response"
	"atelier/internal/delivery/api/validator"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// stringList accepts either a single string or an array of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		if single == "" {
			*l = stringList{}

			return nil
		}
		*l = stringList{single}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many

	return nil
}

type shippingAddressRequest struct {
	Street     string `json:"street" validate:"max=256"`
	Apartment  string `json:"apartment" validate:"max=256"`
	City       string `json:"city" validate:"max=128"`
	State      string `json:"state" validate:"max=128"`
	PostalCode string `json:"postalCode" validate:"max=32"`
	Country    string `json:"country" validate:"max=128"`
}

func (r *shippingAddressRequest) toEntity() *entity.ShippingAddress {
	if r == nil {
		return nil
	}

	return &entity.ShippingAddress{
		Street:     r.Street,
		Apartment:  r.Apartment,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// purchaseAddress accepts the buyer's address as a single line or as an address object.
type purchaseAddress struct {
	Line       string `validate:"max=1024"`
	Structured *shippingAddressRequest
}

func (a *purchaseAddress) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*a = purchaseAddress{}

		return nil
	case bytes.HasPrefix(trimmed, []byte(`"`)):
		*a = purchaseAddress{}

		return json.Unmarshal(trimmed, &a.Line)
	}

	var structured shippingAddressRequest
	if err := json.Unmarshal(trimmed, &structured); err != nil {
		return err
	}
	*a = purchaseAddress{Structured: &structured}

	return nil
}

// validationError renders a failed c.Validate call with the offending fields as details.
func validationError(c echo.Context, err error) error {
	var details any
	if fields := validator.FieldErrors(err); fields != nil {
		details = fields
	}

	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		details,
	)
}

func bindingError(c echo.Context) error {
	return response.BindingError(c, "INVALID_INPUT", "Request body is malformed")
}

func invalidIDError(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

func unauthenticated(c echo.Context) error {
	return response.HandleAppError(c, domainerrors.ErrAccessDenied)
}

func deleted(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, messageView{Message: message})
}
