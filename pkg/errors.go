// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Sabit error değişkenleri sayesinde karşılaştırma string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrBadRequest) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları (wrap ederek) döner, handler yakalar.
var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrAlreadyExists   = errors.New("already exists")
	ErrTooManyRequests = errors.New("too many requests")
	ErrUnavailable     = errors.New("service unavailable")
	ErrUpstream        = errors.New("upstream error")
	ErrInternal        = errors.New("internal error")
)
