package kernel

import (
	"regexp"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// Customer contact invariants: phone numbers are exactly 10 digits, postal
// codes exactly 6 digits, and email addresses follow a local@domain pattern.
var (
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
	postalCodePattern = regexp.MustCompile(`^\d{6}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"phone must be created via NewPhone")

// Phone is a validated 10-digit phone number.
type Phone struct { //nolint:recvcheck //using for validation
	number string
	guard  guard.ConstructorGuard
}

// NewPhone creates a Phone from a string of exactly 10 digits.
func NewPhone(number string) (Phone, error) {
	p := Phone{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setNumber(number); err != nil {
		return Phone{}, err
	}

	return p, nil
}

// Validate checks that the Phone was created through NewPhone.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// String returns the digits of the phone number.
func (p Phone) String() string {
	return p.number
}

// IsEqual reports whether two phone numbers are the same.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

func (p *Phone) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(number) {
		return errs.NewValueIsInvalidError("phone")
	}

	p.number = number
	return nil
}

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail")

// Email is a validated email address.
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates an Email from a local@domain formatted string.
func NewEmail(address string) (Email, error) {
	e := Email{
		guard: guard.NewConstructorGuard(),
	}

	if err := e.setAddress(address); err != nil {
		return Email{}, err
	}

	return e, nil
}

// Validate checks that the Email was created through NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// String returns the email address.
func (e Email) String() string {
	return e.address
}

// IsEqual reports whether two email addresses are the same.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

func (e *Email) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(address) {
		return errs.NewValueIsInvalidError("email")
	}

	e.address = address
	return nil
}

// ErrPostalCodeIsNotConstructed is returned when validating a zero-value PostalCode.
var ErrPostalCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"postal code must be created via NewPostalCode")

// PostalCode is a validated 6-digit postal code.
type PostalCode struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewPostalCode creates a PostalCode from a string of exactly 6 digits.
func NewPostalCode(code string) (PostalCode, error) {
	p := PostalCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setCode(code); err != nil {
		return PostalCode{}, err
	}

	return p, nil
}

// Validate checks that the PostalCode was created through NewPostalCode.
func (p PostalCode) Validate() error {
	return p.guard.Validate(ErrPostalCodeIsNotConstructed)
}

// String returns the digits of the postal code.
func (p PostalCode) String() string {
	return p.code
}

// IsEqual reports whether two postal codes are the same.
func (p PostalCode) IsEqual(other PostalCode) bool {
	return p.code == other.code
}

func (p *PostalCode) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	if !postalCodePattern.MatchString(code) {
		return errs.NewValueIsInvalidError("postalCode")
	}

	p.code = code
	return nil
}
