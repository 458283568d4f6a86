package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/djangocampus/campus/pkg"
)

// DuplicateSubscriptionMessage, zaten abone olan kullanıcıya gösterilen bilgilendirici mesaj.
const DuplicateSubscriptionMessage = "You're already subscribed to our newsletter! We'll keep you updated with our latest workshops."

// duplicateMarker, backend'in unique constraint mesajındaki ortak ifade:
// "Newsletter Subscriber with this Email Address already exists."
const duplicateMarker = "already exists"

// jsonFragment, hata mesajına gömülü ilk "{" ile son "}" arasını yakalar.
// Ör: `API Error: 400 Bad Request - {"email":["... already exists."]}`
var jsonFragment = regexp.MustCompile(`(?s)\{.*\}`)

// DuplicateSubscriptionError, email zaten abone olduğunda dönen ayırt edilebilir error.
// Mesajı kullanıcıya gösterilebilir; ham backend hatası Cause'da saklanır.
type DuplicateSubscriptionError struct {
	Message string
	Cause   error
}

func (e *DuplicateSubscriptionError) Error() string { return e.Message }

func (e *DuplicateSubscriptionError) Unwrap() error { return e.Cause }

// Is, errors.Is(err, pkg.ErrAlreadyExists) için true döner.
func (e *DuplicateSubscriptionError) Is(target error) bool {
	return target == pkg.ErrAlreadyExists
}

// HTTPStatus, pkg.StatusCoder, frontend'e 409 Conflict.
func (e *DuplicateSubscriptionError) HTTPStatus() int {
	return http.StatusConflict
}

// ClassifySubscribeError, abonelik hatasını sınıflandırır: duplicate email ise
// *DuplicateSubscriptionError, değilse err'in kendisi döner. nil → nil.
//
// Saf fonksiyondur: aynı girdi her zaman aynı sınıfı üretir.
func ClassifySubscribeError(err error) error {
	if err == nil {
		return nil
	}

	var dup *DuplicateSubscriptionError
	if errors.As(err, &dup) {
		return err
	}

	if IsDuplicateSubscriptionMessage(err.Error()) {
		return &DuplicateSubscriptionError{
			Message: DuplicateSubscriptionMessage,
			Cause:   err,
		}
	}

	return err
}

// IsDuplicateSubscriptionMessage, hata metninin "already exists" durumunu anlatıp
// anlatmadığını kontrol eder.
//
// İki kontrol:
//  1. Metin doğrudan "already exists" içeriyor mu?
//  2. Metne gömülü bir JSON objesi varsa, "email" listesindeki herhangi bir mesaj
//     (büyük/küçük harf duyarsız) "already exists" içeriyor mu?
//
// JSON parse edilemezse sessizce false döner.
func IsDuplicateSubscriptionMessage(msg string) bool {
	if strings.Contains(msg, duplicateMarker) {
		return true
	}

	fragment := jsonFragment.FindString(msg)
	if fragment == "" {
		return false
	}

	var body struct {
		Email []string `json:"email"`
	}
	if err := json.Unmarshal([]byte(fragment), &body); err != nil {
		return false
	}

	for _, m := range body.Email {
		if strings.Contains(strings.ToLower(m), duplicateMarker) {
			return true
		}
	}

	return false
}
