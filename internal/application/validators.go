package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator holds the contact form validation rules.
type Validator struct{}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// ValidateEmail checks the email format.
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email %q is not valid", email)
	}

	return nil
}

// ValidatePhone checks the phone format after stripping separators.
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}

	cleanPhone := strings.ReplaceAll(phone, " ", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "-", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "(", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, ")", "")

	if !phoneRegex.MatchString(cleanPhone) {
		return fmt.Errorf("phone %q must have between 7 and 15 digits", phone)
	}

	return nil
}

// ValidateName checks that a name is present and of reasonable length.
func (v *Validator) ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) < 2 {
		return fmt.Errorf("name must have at least 2 characters")
	}
	if len(name) > 80 {
		return fmt.Errorf("name cannot exceed 80 characters")
	}

	return nil
}

// ValidateMessage checks the free-text message bounds.
func (v *Validator) ValidateMessage(message string) error {
	message = strings.TrimSpace(message)

	if message == "" {
		return fmt.Errorf("message is required")
	}
	if len(message) > 2000 {
		return fmt.Errorf("message cannot exceed 2000 characters")
	}

	return nil
}

// ValidateContactRequest validates every field, collecting all errors.
func (v *Validator) ValidateContactRequest(name, email, phone, message string) []error {
	var errs []error

	if err := v.ValidateName(name); err != nil {
		errs = append(errs, err)
	}
	if err := v.ValidateEmail(email); err != nil {
		errs = append(errs, err)
	}
	// Phone is optional on the contact form.
	if phone != "" {
		if err := v.ValidatePhone(phone); err != nil {
			errs = append(errs, err)
		}
	}
	if err := v.ValidateMessage(message); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// FormatValidationErrors joins a list of validation errors into one message.
func (v *Validator) FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}

	return strings.Join(parts, "; ")
}
