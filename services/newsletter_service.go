package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/logger"
)

const (
	subscribersPath = "/subscribers/"
	unsubscribePath = "/subscribers/unsubscribe/"
)

// NewsletterService, bülten aboneliği. İki operasyon da action'dır, her zaman error döner.
type NewsletterService interface {
	// Subscribe, aboneliği /subscribers/'a gönderir. İsim yoksa "Subscriber" kullanılır.
	// Email zaten kayıtlıysa *DuplicateSubscriptionError döner.
	Subscribe(ctx context.Context, sub *models.NewsletterSubscription) (*models.NewsletterSubscription, error)

	// Unsubscribe, email'i bültenden çıkarır.
	Unsubscribe(ctx context.Context, email string) (*models.UnsubscribeResult, error)
}

type newsletterService struct {
	api  Backend
	lggr logger.Logger
}

// NewNewsletterService, constructor.
func NewNewsletterService(api Backend, lggr logger.Logger) NewsletterService {
	return &newsletterService{
		api:  api,
		lggr: lggr,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, sub *models.NewsletterSubscription) (*models.NewsletterSubscription, error) {
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	payload := sub.WithDefaultName()

	var created models.NewsletterSubscription
	if err := s.api.Post(ctx, subscribersPath, payload, &created); err != nil {
		classified := ClassifySubscribeError(err)

		var dup *DuplicateSubscriptionError
		if errors.As(classified, &dup) {
			s.lggr.Infow("newsletter subscription already exists")
		} else {
			s.lggr.Errorw("newsletter subscription failed", "error", err)
		}

		return nil, classified
	}

	if created.Email == "" {
		created = payload
	}

	return &created, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) (*models.UnsubscribeResult, error) {
	req := models.UnsubscribeRequest{Email: email}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	var result models.UnsubscribeResult
	if err := s.api.Post(ctx, unsubscribePath, req, &result); err != nil {
		s.lggr.Errorw("newsletter unsubscribe failed", "error", err)
		return nil, err
	}

	return &result, nil
}
