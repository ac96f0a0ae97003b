package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInfo is the customer contact block attached to a booking.
type ContactInfo struct {
	Name       string `bson:"name" json:"name"`
	Phone      string `bson:"phone" json:"phone"`
	Email      string `bson:"email" json:"email"`
	Newsletter bool   `bson:"newsletter" json:"newsletter"`
}

// StripNonDigits removes everything but 0-9 from a phone number.
func StripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate returns a map of field name to error message. An empty map means
// the contact info is acceptable.
func (c ContactInfo) Validate() map[string]string {
	errs := make(map[string]string)
	// Counted in runes so multi-byte names are measured by character.
	if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < 2 {
		errs["name"] = "name must be at least 2 characters"
	}
	if len(StripNonDigits(c.Phone)) < 10 {
		errs["phone"] = "phone must contain at least 10 digits"
	}
	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		errs["email"] = "email address is not valid"
	}
	return errs
}
