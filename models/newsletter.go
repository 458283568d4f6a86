package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultSubscriberName, isim verilmeden abone olunduğunda backend'e gönderilen isim.
const DefaultSubscriberName = "Subscriber"

// NewsletterSubscription, bülten aboneliği. Tekrar abonelik (dedup) backend'de engellenir.
type NewsletterSubscription struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Validate, email'i trim'leyip basit pattern ile kontrol eder.
func (s *NewsletterSubscription) Validate() error {
	s.Email = strings.TrimSpace(s.Email)
	if !IsValidEmail(s.Email) {
		return fmt.Errorf("a valid email address is required")
	}

	s.Name = strings.TrimSpace(s.Name)
	if utf8.RuneCountInString(s.Name) > 200 {
		return fmt.Errorf("name must be at most 200 characters")
	}

	return nil
}

// WithDefaultName, isim boşsa DefaultSubscriberName ile doldurulmuş kopyayı döner.
func (s NewsletterSubscription) WithDefaultName() NewsletterSubscription {
	if strings.TrimSpace(s.Name) == "" {
		s.Name = DefaultSubscriberName
	}
	return s
}

// UnsubscribeRequest, abonelikten çıkma isteği.
type UnsubscribeRequest struct {
	Email string `json:"email"`
}

// Validate, email'i kontrol eder.
func (r *UnsubscribeRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if !IsValidEmail(r.Email) {
		return fmt.Errorf("a valid email address is required")
	}
	return nil
}

// UnsubscribeResult, backend'in abonelikten çıkma yanıtı.
type UnsubscribeResult struct {
	Message string `json:"message"`
}

// PartnerInquiry, "partner olun" formundan gelen başvuru. Backend'e değil,
// ekibin iletişim adresine email olarak gider.
type PartnerInquiry struct {
	Organization string `json:"organization"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
}

// Validate, başvuru formunu kontrol eder.
func (p *PartnerInquiry) Validate() error {
	p.Organization = strings.TrimSpace(p.Organization)
	if n := utf8.RuneCountInString(p.Organization); n < 1 || n > 200 {
		return fmt.Errorf("organization must be between 1 and 200 characters")
	}

	p.ContactName = strings.TrimSpace(p.ContactName)
	if n := utf8.RuneCountInString(p.ContactName); n < 1 || n > 200 {
		return fmt.Errorf("contact name must be between 1 and 200 characters")
	}

	p.Email = strings.TrimSpace(p.Email)
	if !IsValidEmail(p.Email) {
		return fmt.Errorf("a valid email address is required")
	}

	p.Message = strings.TrimSpace(p.Message)
	if n := utf8.RuneCountInString(p.Message); n < 1 || n > 5000 {
		return fmt.Errorf("message must be between 1 and 5000 characters")
	}

	return nil
}
