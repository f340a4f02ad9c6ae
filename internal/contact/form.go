package contact

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode"

	"github.com/blackstone-contractors/website/internal/content"
)

const minPhoneDigits = 10

// FormFromValues reads a form from posted values, trimming whitespace.
func FormFromValues(v url.Values) Form {
	return Form{
		Name:    strings.TrimSpace(v.Get("name")),
		Email:   strings.TrimSpace(v.Get("email")),
		Phone:   strings.TrimSpace(v.Get("phone")),
		Service: strings.TrimSpace(v.Get("service")),
		Message: strings.TrimSpace(v.Get("message")),
	}
}

// Validate checks required fields and formats. It returns nil when the form
// can be accepted.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Please enter your name."
	}
	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		errs["email"] = "Please enter your email address."
	case !validEmail(email):
		errs["email"] = "Please enter a valid email address."
	}
	switch {
	case strings.TrimSpace(f.Phone) == "":
		errs["phone"] = "Please enter your phone number."
	case len(PhoneDigits(f.Phone)) < minPhoneDigits:
		errs["phone"] = "Please enter a phone number with area code."
	}
	if f.Service != "" && !knownService(f.Service) {
		errs["service"] = "Please choose a service from the list."
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Please tell us about your project."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ServiceLabel returns the display label of the selected service, or "" when
// none was chosen.
func (f Form) ServiceLabel() string {
	for _, o := range content.ServiceOptions() {
		if o.Value == f.Service {
			return o.Label
		}
	}
	return ""
}

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validEmail accepts a bare address only, not "Name <addr>".
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}

func knownService(value string) bool {
	for _, o := range content.ServiceOptions() {
		if o.Value == value {
			return true
		}
	}
	return false
}
