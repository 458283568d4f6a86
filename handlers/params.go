// Package handlers, HTTP endpoint'lerini barındırır.
//
// Thin handler prensibi: Parse → Service → Response.
// Tüm upstream çağrıları ve hata sınıflandırması service katmanındadır;
// handler sadece path/query/body'yi okur ve pkg.JSON / pkg.Error ile yanıt verir.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/djangocampus/campus/pkg"
)

// maxBodyBytes, form body'leri için üst sınır.
const maxBodyBytes = 64 << 10

// pathID, {id} path parametresini pozitif int olarak okur.
func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", pkg.ErrBadRequest, raw)
	}
	return id, nil
}

// queryBool, "?active=true" gibi bayrakları okur. Tanınmayan değer false sayılır.
func queryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}

// decodeBody, JSON body'yi dst'ye çözer. Hatalı body → pkg.ErrBadRequest,
// decoder mesajı (ör: bilinmeyen deneyim seviyesi) client'a kadar taşınır.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", pkg.ErrBadRequest, err)
	}
	return nil
}
