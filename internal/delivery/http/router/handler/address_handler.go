package handler

import (
	"net/http"

	"servicemap/internal/delivery/http/response"
	"servicemap/internal/domain/address"
	"servicemap/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// AddressHandler renders postal addresses.
type AddressHandler struct{}

// NewAddressHandler creates a new AddressHandler instance
func NewAddressHandler() *AddressHandler {
	return &AddressHandler{}
}

// FormatAddressResponse is a one-line address.
type FormatAddressResponse struct {
	Line string `json:"line"`
}

// Format renders an address as a single line. Omitted fields are absent, "" is present but empty.
func (h *AddressHandler) Format(c echo.Context) error {
	var req entity.PostalAddress
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	return response.Success(c, http.StatusOK, FormatAddressResponse{Line: address.Format(req)}, "")
}
