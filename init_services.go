// Package main: Service katmanı başlatma.
//
// initServices, upstream API client'ını ve tüm service'leri oluşturur.
// Her service Backend interface'ini constructor injection ile alır;
// testlerde aynı service'ler httptest backend'e bağlanır.
package main

import (
	"fmt"

	"github.com/djangocampus/campus/config"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/email"
	"github.com/djangocampus/campus/pkg/logger"
	"github.com/djangocampus/campus/pkg/ratelimit"
	"github.com/djangocampus/campus/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Workshop    services.WorkshopService
	Team        services.TeamService
	Partner     services.PartnerService
	Contributor services.ContributorService
	Supporter   services.SupporterService
	Community   services.CommunityService
	Newsletter  services.NewsletterService
	Partnership services.PartnershipService
	Home        services.HomeService
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Form       *ratelimit.FormRateLimiter
	TrustProxy bool // X-Forwarded-For / X-Real-IP limit anahtarı olarak kullanılsın mı
}

// newAPIClient, config'e göre upstream client'ı kurar. CLI de bunu kullanır.
func newAPIClient(cfg *config.Config, lggr logger.Logger) (*apiclient.Client, error) {
	opts := []apiclient.Option{
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogger(logger.Named(lggr, "apiclient")),
	}
	if cfg.API.RetryAttempts > 1 {
		opts = append(opts, apiclient.WithRetry(cfg.API.RetryAttempts, retryDelay))
	}

	api, err := apiclient.New(cfg.API.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL: %w", err)
	}
	return api, nil
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
func initServices(api services.Backend, cfg *config.Config, lggr logger.Logger) (*Services, *RateLimiters) {
	svcLog := logger.Named(lggr, "services")

	// ─── Email (opsiyonel) ───
	var emailSender email.EmailSender
	if cfg.Email.Enabled() {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.InquiryTo)
		lggr.Infow("partner inquiry email enabled", "from", cfg.Email.From)
	} else {
		lggr.Infow("partner inquiry email disabled (RESEND_API_KEY, RESEND_FROM or PARTNER_INQUIRY_TO not set)")
	}

	workshop := services.NewWorkshopService(api, svcLog)
	team := services.NewTeamService(api, svcLog)
	partner := services.NewPartnerService(api, svcLog)

	svcs := &Services{
		Workshop:    workshop,
		Team:        team,
		Partner:     partner,
		Contributor: services.NewContributorService(api, svcLog),
		Supporter:   services.NewSupporterService(api, svcLog),
		Community:   services.NewCommunityService(api, svcLog),
		Newsletter:  services.NewNewsletterService(api, svcLog),
		Partnership: services.NewPartnershipService(emailSender, svcLog),
		Home:        services.NewHomeService(workshop, partner, team, svcLog),
	}

	limiters := &RateLimiters{
		Form:       ratelimit.NewFormRateLimiter(cfg.RateLimit.FormRequests, cfg.RateLimit.Window),
		TrustProxy: cfg.RateLimit.TrustProxyHeaders,
	}

	return svcs, limiters
}
