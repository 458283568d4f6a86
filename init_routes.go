// Package main: HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Form POST'ları (kayıt, bülten, partner başvurusu) IP bazlı rate limit'ten geçer;
// GET'ler serbesttir.
package main

import (
	"net/http"

	"github.com/djangocampus/campus/middleware"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
func initRoutes(mux *http.ServeMux, h *Handlers, limiters *RateLimiters) {
	// ─── Middleware ───
	formMw := middleware.NewFormRateLimitMiddleware(limiters.Form, limiters.TrustProxy)

	// ─── Middleware Chain Helpers ───
	form := func(handler http.HandlerFunc) http.Handler {
		return formMw.Require(http.HandlerFunc(handler))
	}

	// Health
	mux.HandleFunc("GET /api/health", h.Health.Health)

	// Home, paralel özet
	mux.HandleFunc("GET /api/home", h.Home.Overview)

	// Workshops
	mux.HandleFunc("GET /api/workshops", h.Workshop.List)
	mux.Handle("POST /api/workshops/register", form(h.Workshop.Register))
	mux.HandleFunc("GET /api/workshops/{id}", h.Workshop.Get)
	mux.HandleFunc("GET /api/workshops/{id}/registration", h.Workshop.CheckRegistration)

	// Team
	mux.HandleFunc("GET /api/team", h.Team.List)
	mux.HandleFunc("GET /api/team/{id}", h.Team.Get)

	// Partners: ?active=true destekli
	mux.HandleFunc("GET /api/partners", h.Partner.List)
	mux.Handle("POST /api/partners/inquiry", form(h.Partnership.Inquiry))
	mux.HandleFunc("GET /api/partners/{id}", h.Partner.Get)

	// Contributors & supporters
	mux.HandleFunc("GET /api/contributors", h.Contributor.List)
	mux.HandleFunc("GET /api/contributors/{id}", h.Contributor.Get)
	mux.HandleFunc("GET /api/supporters", h.Supporter.List)
	mux.HandleFunc("GET /api/supporters/{id}", h.Supporter.Get)

	// Community
	mux.HandleFunc("GET /api/community/members", h.Community.Members)
	mux.HandleFunc("GET /api/community/testimonials", h.Community.Testimonials)

	// Newsletter
	mux.Handle("POST /api/newsletter/subscribe", form(h.Newsletter.Subscribe))
	mux.Handle("POST /api/newsletter/unsubscribe", form(h.Newsletter.Unsubscribe))
}
