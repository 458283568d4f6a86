package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/logger"
)

const (
	workshopsPath        = "/workshops/"
	upcomingWorkshopPath = "/workshops/?is_ended=false"
	registerPath         = "/workshops/register/"
)

// WorkshopService, workshop listeleme ve kayıt işlemleri.
type WorkshopService interface {
	// List, tüm workshop'ları backend'in sırasıyla döner. results yoksa boş liste.
	// Transport/HTTP hataları caller'a döner.
	List(ctx context.Context) ([]models.Workshop, error)

	// ListUpcoming, bitmemiş workshop'ları döner (is_ended=false). List ile aynı policy.
	ListUpcoming(ctx context.Context) ([]models.Workshop, error)

	// Get, tek bir workshop'u envelope'un data alanından döner.
	Get(ctx context.Context, id int) (*models.Workshop, error)

	// Register, kayıt formunu gönderir. Validation hatası → pkg.ErrBadRequest.
	Register(ctx context.Context, reg *models.Registration) (*models.Registration, error)

	// CheckRegistration, email'in workshop'a kayıtlı olup olmadığını döner.
	// Hata durumunda false (fallback policy).
	CheckRegistration(ctx context.Context, workshopID int, email string) bool
}

type workshopService struct {
	api  Backend
	lggr logger.Logger
}

// NewWorkshopService, constructor.
func NewWorkshopService(api Backend, lggr logger.Logger) WorkshopService {
	return &workshopService{
		api:  api,
		lggr: lggr,
	}
}

func (s *workshopService) List(ctx context.Context) ([]models.Workshop, error) {
	return s.list(ctx, workshopsPath)
}

func (s *workshopService) ListUpcoming(ctx context.Context) ([]models.Workshop, error) {
	return s.list(ctx, upcomingWorkshopPath)
}

func (s *workshopService) list(ctx context.Context, path string) ([]models.Workshop, error) {
	var env models.Envelope[models.Workshop]
	if err := s.api.Get(ctx, path, &env); err != nil {
		s.lggr.Errorw("failed to fetch workshops", "path", path, "error", err)
		return nil, err
	}

	workshops := env.List()
	for i := range workshops {
		if err := workshops[i].Validate(); err != nil {
			return nil, invalidResponse(path, err)
		}
	}

	return workshops, nil
}

func (s *workshopService) Get(ctx context.Context, id int) (*models.Workshop, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid workshop id", pkg.ErrBadRequest)
	}

	path := fmt.Sprintf("%s%d/", workshopsPath, id)

	var env models.Envelope[models.Workshop]
	if err := s.api.Get(ctx, path, &env); err != nil {
		s.lggr.Errorw("failed to fetch workshop", "id", id, "error", err)
		return nil, err
	}

	workshop, err := env.Item()
	if err != nil {
		return nil, invalidResponse(path, err)
	}
	if err := workshop.Validate(); err != nil {
		return nil, invalidResponse(path, err)
	}

	return workshop, nil
}

func (s *workshopService) Register(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	var env models.Envelope[models.Registration]
	if err := s.api.Post(ctx, registerPath, reg, &env); err != nil {
		s.lggr.Errorw("workshop registration failed", "workshop", reg.Workshop, "error", err)
		return nil, err
	}

	created, err := env.Item()
	if err != nil {
		return nil, invalidResponse(registerPath, err)
	}

	s.lggr.Infow("registered for workshop", "workshop", reg.Workshop)
	return created, nil
}

func (s *workshopService) CheckRegistration(ctx context.Context, workshopID int, email string) bool {
	path := fmt.Sprintf("%s%d/check-registration/?email=%s", workshopsPath, workshopID, url.QueryEscape(email))

	return apiclient.Fallback(s.lggr, "workshops.check_registration", false, func() (bool, error) {
		var status models.RegistrationStatus
		if err := s.api.Get(ctx, path, &status); err != nil {
			return false, err
		}
		return status.IsRegistered, nil
	})
}
