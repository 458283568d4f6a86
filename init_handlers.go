// Package main: Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Handler'lar "thin" dir, sadece HTTP parse + service call + response write.
package main

import (
	"github.com/djangocampus/campus/config"
	"github.com/djangocampus/campus/handlers"
	"github.com/djangocampus/campus/models"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Health      *handlers.HealthHandler
	Workshop    *handlers.WorkshopHandler
	Team        *handlers.TeamHandler
	Partner     *handlers.CollectionHandler[models.Partner]
	Contributor *handlers.CollectionHandler[models.Contributor]
	Supporter   *handlers.CollectionHandler[models.Supporter]
	Community   *handlers.CommunityHandler
	Newsletter  *handlers.NewsletterHandler
	Partnership *handlers.PartnershipHandler
	Home        *handlers.HomeHandler
}

// initHandlers, tüm handler'ları service dependency'leri ile oluşturur.
func initHandlers(svcs *Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Health:      handlers.NewHealthHandler(cfg.API.BaseURL),
		Workshop:    handlers.NewWorkshopHandler(svcs.Workshop),
		Team:        handlers.NewTeamHandler(svcs.Team),
		Partner:     handlers.NewCollectionHandler(svcs.Partner),
		Contributor: handlers.NewCollectionHandler(svcs.Contributor),
		Supporter:   handlers.NewCollectionHandler(svcs.Supporter),
		Community:   handlers.NewCommunityHandler(svcs.Community),
		Newsletter:  handlers.NewNewsletterHandler(svcs.Newsletter),
		Partnership: handlers.NewPartnershipHandler(svcs.Partnership),
		Home:        handlers.NewHomeHandler(svcs.Home),
	}
}
