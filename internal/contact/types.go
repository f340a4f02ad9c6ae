// Package contact handles estimate requests submitted through the contact
// page.
package contact

import "time"

// Form is the contact form as filled in by a visitor.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// FieldErrors maps a form field name to a message suitable for display next
// to the input.
type FieldErrors map[string]string

// Inquiry is an accepted submission.
type Inquiry struct {
	ID         string    `json:"id"`
	Form
	RemoteAddr string    `json:"remote_addr,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
