package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg/logger"
)

// HomeOverview, ana sayfanın ihtiyaç duyduğu üç bağımsız veri parçası.
// Her parça kendi başına çözülür; biri başarısız olursa boş kalır, diğerleri etkilenmez.
type HomeOverview struct {
	NextWorkshop *models.Workshop    `json:"next_workshop"`
	Partners     []models.Partner    `json:"partners"`
	Team         []models.TeamMember `json:"team"`
}

// HomeService, ana sayfa verilerini paralel çeker.
type HomeService interface {
	Overview(ctx context.Context) *HomeOverview
}

type homeService struct {
	workshops WorkshopService
	partners  PartnerService
	team      TeamService
	lggr      logger.Logger
}

// NewHomeService, constructor.
func NewHomeService(workshops WorkshopService, partners PartnerService, team TeamService, lggr logger.Logger) HomeService {
	return &homeService{
		workshops: workshops,
		partners:  partners,
		team:      team,
		lggr:      lggr,
	}
}

// Overview, üç isteği aynı anda başlatır. Aralarında sıralama yok; her goroutine
// sadece kendi alanına yazar. ctx iptal edilirse (ör. client bağlantıyı kapattı)
// devam eden istekler de iptal olur.
func (s *homeService) Overview(ctx context.Context) *HomeOverview {
	overview := &HomeOverview{
		Partners: []models.Partner{},
		Team:     []models.TeamMember{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		upcoming, err := s.workshops.ListUpcoming(gctx)
		if err != nil {
			s.lggr.Warnw("home: upcoming workshops unavailable", "error", err)
			return nil
		}
		if len(upcoming) > 0 {
			overview.NextWorkshop = &upcoming[0]
		}
		return nil
	})

	g.Go(func() error {
		page, err := s.partners.List(gctx)
		if err != nil {
			s.lggr.Warnw("home: partners unavailable", "error", err)
			return nil
		}
		overview.Partners = models.FilterActive(page.Items())
		return nil
	})

	g.Go(func() error {
		overview.Team = models.FilterActive(s.team.List(gctx))
		return nil
	})

	// Goroutine'ler error dönmez: Wait sadece hepsinin bitmesini bekler.
	_ = g.Wait()

	return overview
}
