package services

import (
	"context"
	"fmt"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/logger"
)

const (
	partnersPath     = "/partners/"
	contributorsPath = "/contributors/"
	supportersPath   = "/supporters/"
)

// CollectionService, sayfalanmış bir koleksiyon endpoint'i üzerindeki okuma operasyonları.
// List envelope'u açmadan Page olarak döner, is_active filtrelemesi
// models.FilterActive ile caller'da yapılır. Hatalar caller'a döner.
type CollectionService[T any] interface {
	List(ctx context.Context) (*models.Page[T], error)
	Get(ctx context.Context, id int) (*T, error)
}

// PartnerService, /partners/ koleksiyonu.
type PartnerService = CollectionService[models.Partner]

// ContributorService, /contributors/ koleksiyonu.
type ContributorService = CollectionService[models.Contributor]

// SupporterService, /supporters/ koleksiyonu.
type SupporterService = CollectionService[models.Supporter]

type collectionService[T any] struct {
	api      Backend
	path     string
	resource string
	lggr     logger.Logger
}

// NewPartnerService, constructor.
func NewPartnerService(api Backend, lggr logger.Logger) PartnerService {
	return newCollectionService[models.Partner](api, partnersPath, "partner", lggr)
}

// NewContributorService, constructor.
func NewContributorService(api Backend, lggr logger.Logger) ContributorService {
	return newCollectionService[models.Contributor](api, contributorsPath, "contributor", lggr)
}

// NewSupporterService, constructor.
func NewSupporterService(api Backend, lggr logger.Logger) SupporterService {
	return newCollectionService[models.Supporter](api, supportersPath, "supporter", lggr)
}

func newCollectionService[T any](api Backend, path, resource string, lggr logger.Logger) *collectionService[T] {
	return &collectionService[T]{
		api:      api,
		path:     path,
		resource: resource,
		lggr:     lggr,
	}
}

func (s *collectionService[T]) List(ctx context.Context) (*models.Page[T], error) {
	var page models.Page[T]
	if err := s.api.Get(ctx, s.path, &page); err != nil {
		s.lggr.Errorw("failed to fetch collection", "resource", s.resource, "error", err)
		return nil, err
	}

	if page.Results == nil {
		page.Results = []T{}
	}

	return &page, nil
}

func (s *collectionService[T]) Get(ctx context.Context, id int) (*T, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid %s id", pkg.ErrBadRequest, s.resource)
	}

	var item T
	if err := s.api.Get(ctx, fmt.Sprintf("%s%d/", s.path, id), &item); err != nil {
		s.lggr.Errorw("failed to fetch item", "resource", s.resource, "id", id, "error", err)
		return nil, err
	}

	return &item, nil
}
