// Package models, backend API'si ile alınıp verilen domain veri yapılarını tanımlar.
//
// Bu struct'lar kalıcı state taşımaz, her biri backend'in döndüğü JSON'un Go karşılığıdır.
// `json:"workshop_name"` gibi tag'ler Django serializer'ındaki alan adlarıyla birebir aynıdır.
//
// Backend'den gelen veriye körü körüne güvenilmez: zorunlu alanlar Validate() ile
// service sınırında kontrol edilir.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingPayload, envelope'ta beklenen results/data alanı yoksa döner.
var ErrMissingPayload = errors.New("response payload missing")

// LooseCount, backend'in sayıyı string olarak gönderdiği alanlar için tip.
// "5", 5, null veya çöp değer, hepsi decode edilir, hiçbiri hata vermez.
// Sayısal değer Int() ile okunur; parse edilemeyen her şey 0'dır.
type LooseCount string

// UnmarshalJSON, string, number ve null kabul eder.
func (c *LooseCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = ""
			return nil
		}
		*c = LooseCount(s)
		return nil
	}

	// Number, bool veya obje, ham metni sakla, Int() gerisini halleder.
	*c = LooseCount(data)
	return nil
}

// Int, değeri tam sayıya çevirir. Parse hatası veya negatif değer → 0.
func (c LooseCount) Int() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(c)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Workshop, bir ücretsiz programlama workshop'unu temsil eder.
type Workshop struct {
	ID                 int        `json:"id"`
	Name               string     `json:"workshop_name"`
	Date               string     `json:"workshop_date"`
	Time               string     `json:"workshop_time,omitempty"`
	Location           string     `json:"workshop_location"`
	Venue              string     `json:"venue,omitempty"`
	Description        string     `json:"workshop_description"`
	ImageHeader        string     `json:"workshop_image_header,omitempty"`
	IsEnded            bool       `json:"is_ended"`
	RegistrationsCount LooseCount `json:"registrations_count"` // Backend string gönderir: "42"
	Capacity           *int       `json:"capacity,omitempty"`
	IsActive           *bool      `json:"is_active,omitempty"`
	Requirements       []string   `json:"requirements,omitempty"`
	WhatIncluded       []string   `json:"what_included,omitempty"`
	CreatedAt          string     `json:"created_at,omitempty"`
	UpdatedAt          string     `json:"updated_at,omitempty"`
}

// Registrations, kayıt sayısını int olarak döner (parse edilemezse 0).
func (w *Workshop) Registrations() int {
	return w.RegistrationsCount.Int()
}

// SeatsLeft, kapasite biliniyorsa kalan yer sayısını döner.
// Kapasite yoksa ok=false.
func (w *Workshop) SeatsLeft() (left int, ok bool) {
	if w.Capacity == nil {
		return 0, false
	}
	left = *w.Capacity - w.Registrations()
	if left < 0 {
		left = 0
	}
	return left, true
}

// Validate, backend'den gelen workshop'un zorunlu alanlarını kontrol eder.
func (w *Workshop) Validate() error {
	if w.ID <= 0 {
		return fmt.Errorf("workshop id must be positive, got %d", w.ID)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("workshop %d has no name", w.ID)
	}
	return nil
}
