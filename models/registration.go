package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern, frontend formundaki basit email kontrolü ile aynı.
// Tam RFC doğrulaması backend'in işi.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail, email'in basit pattern'e uyup uymadığını kontrol eder.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ExperienceLevel, katılımcının Django deneyim seviyesi.
// Kapalı küme, backend'deki Django choices ile aynı üç değer.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceAdvanced     ExperienceLevel = "Advanced"
)

// ExperienceLevels, izin verilen tüm değerler (sıralı).
var ExperienceLevels = []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

// ParseExperienceLevel, büyük/küçük harf ve boşluk farklarını normalize eder.
// "  beginner " → Beginner. Bilinmeyen değer → error.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	normalized := strings.TrimSpace(s)
	for _, lvl := range ExperienceLevels {
		if strings.EqualFold(normalized, string(lvl)) {
			return lvl, nil
		}
	}
	return "", fmt.Errorf("experience level must be one of Beginner, Intermediate, Advanced (got %q)", s)
}

// UnmarshalJSON, sadece bilinen seviyeleri kabul eder.
// null no-op'tur; boş seviye request tarafında Registration.Validate'e takılır.
func (l *ExperienceLevel) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("experience level must be a string: %w", err)
	}

	lvl, err := ParseExperienceLevel(s)
	if err != nil {
		return err
	}

	*l = lvl
	return nil
}

// Registration, bir workshop kaydı.
// Form gönderiminde oluşur; POST dışında client tarafında bir yaşam döngüsü yok.
type Registration struct {
	ID                 int             `json:"id,omitempty"`
	Workshop           int             `json:"workshop"`
	WorkshopName       string          `json:"workshop_name,omitempty"`
	WorkshopDate       string          `json:"workshop_date,omitempty"`
	UserName           string          `json:"user_name"`
	UserEmail          string          `json:"user_email"`
	PhoneNumber        string          `json:"phone_number"`
	WillAttendPhysical bool            `json:"will_attend_physical"`
	DjangoExperience   ExperienceLevel `json:"django_experience"`
	RegistrationDate   string          `json:"registration_date,omitempty"`
}

// Validate, kayıt formunu backend'e göndermeden önce kontrol eder.
// İsim/email/telefon trim'lenir.
func (r *Registration) Validate() error {
	if r.Workshop <= 0 {
		return fmt.Errorf("workshop is required")
	}

	r.UserName = strings.TrimSpace(r.UserName)
	nameLen := utf8.RuneCountInString(r.UserName)
	if nameLen < 1 || nameLen > 200 {
		return fmt.Errorf("name must be between 1 and 200 characters")
	}

	r.UserEmail = strings.TrimSpace(r.UserEmail)
	if !IsValidEmail(r.UserEmail) {
		return fmt.Errorf("a valid email address is required")
	}

	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	if r.PhoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}

	lvl, err := ParseExperienceLevel(string(r.DjangoExperience))
	if err != nil {
		return err
	}
	r.DjangoExperience = lvl

	return nil
}

// RegistrationStatus, check-registration endpoint'inin yanıtı.
type RegistrationStatus struct {
	IsRegistered bool `json:"is_registered"`
}
