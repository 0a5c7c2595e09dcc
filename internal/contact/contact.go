// Package contact implements the contact form pipeline: validation and
// transactional email delivery.
package contact

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Subject categorizes a contact message. Values follow the Hungarian form
// options used on the wire.
type Subject string

const (
	SubjectAppraisal Subject = "ertekbecsles"
	SubjectPawn      Subject = "zalog"
	SubjectBuyout    Subject = "felvasarlas"
	SubjectOther     Subject = "egyeb"
)

// Valid reports whether the subject is a recognized value.
func (s Subject) Valid() bool {
	switch s {
	case SubjectAppraisal, SubjectPawn, SubjectBuyout, SubjectOther:
		return true
	}
	return false
}

// Label returns the display label for the subject.
func (s Subject) Label() string {
	switch s {
	case SubjectAppraisal:
		return "Értékbecslés"
	case SubjectPawn:
		return "Zálog ügyintézés"
	case SubjectBuyout:
		return "Felvásárlás"
	default:
		return "Egyéb kérdés"
	}
}

// Message is a single contact form submission. Not persisted; validated and
// forwarded as email.
type Message struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Subject        Subject `json:"subject"`
	Body           string  `json:"message"`
	PrivacyConsent bool    `json:"privacyConsent"`
}

// Validate enforces field constraints. Error text is user-facing Hungarian copy.
func (m Message) Validate() error {
	if utf8.RuneCountInString(m.Name) < 2 {
		return fmt.Errorf("%w: A név megadása kötelező (min. 2 karakter)", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: Érvényes email címet adjon meg", ErrInvalidMessage)
	}
	if !m.Subject.Valid() {
		return fmt.Errorf("%w: unrecognized subject %q", ErrInvalidMessage, m.Subject)
	}
	if utf8.RuneCountInString(m.Body) < 10 {
		return fmt.Errorf("%w: Az üzenet legalább 10 karakter legyen", ErrInvalidMessage)
	}
	if !m.PrivacyConsent {
		return fmt.Errorf("%w: Az adatkezelési tájékoztató elfogadása kötelező", ErrInvalidMessage)
	}
	return nil
}
