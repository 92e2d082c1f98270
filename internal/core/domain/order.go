package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields = errors.New("please fill in all required fields")
	ErrInvalidPhone  = errors.New("please enter a valid phone number")
	ErrEmptyCart     = errors.New("cart is empty")
)

// OrderForm is the customer data collected at checkout. Email is
// optional; the rest is required.
type OrderForm struct {
	Name    string
	Phone   string
	Address string
	Email   string
}

const minPhoneLen = 10

// Validate reports the first user-visible problem with the form.
// Failures block submission and are fully recoverable by re-entry.
func (f OrderForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Phone) == "" ||
		strings.TrimSpace(f.Address) == "" {
		return ErrMissingFields
	}
	if len(f.Phone) < minPhoneLen {
		return ErrInvalidPhone
	}
	return nil
}
