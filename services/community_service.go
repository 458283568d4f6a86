package services

import (
	"context"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg/logger"
)

const (
	communityMembersPath     = "/community/members/"
	featuredTestimonialsPath = "/community/testimonials/featured/"
)

// CommunityService, topluluk üyeleri ve öne çıkan testimonial'lar.
// Her iki liste de results alanından açılır; hatalar caller'a döner.
type CommunityService interface {
	ListMembers(ctx context.Context) ([]models.CommunityMember, error)
	ListFeaturedTestimonials(ctx context.Context) ([]models.CommunityMember, error)
}

type communityService struct {
	api  Backend
	lggr logger.Logger
}

// NewCommunityService, constructor.
func NewCommunityService(api Backend, lggr logger.Logger) CommunityService {
	return &communityService{
		api:  api,
		lggr: lggr,
	}
}

func (s *communityService) ListMembers(ctx context.Context) ([]models.CommunityMember, error) {
	return s.list(ctx, communityMembersPath)
}

func (s *communityService) ListFeaturedTestimonials(ctx context.Context) ([]models.CommunityMember, error) {
	return s.list(ctx, featuredTestimonialsPath)
}

func (s *communityService) list(ctx context.Context, path string) ([]models.CommunityMember, error) {
	var env models.Envelope[models.CommunityMember]
	if err := s.api.Get(ctx, path, &env); err != nil {
		s.lggr.Errorw("failed to fetch community", "path", path, "error", err)
		return nil, err
	}
	return env.List(), nil
}
