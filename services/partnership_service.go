package services

import (
	"context"
	"fmt"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/email"
	"github.com/djangocampus/campus/pkg/logger"
)

// PartnershipService, "partner olun" başvurularını ekibe iletir.
type PartnershipService interface {
	// SendInquiry, başvuruyu doğrular ve email olarak gönderir.
	// Email yapılandırılmamışsa pkg.ErrUnavailable döner.
	SendInquiry(ctx context.Context, inquiry *models.PartnerInquiry) error
}

type partnershipService struct {
	sender email.EmailSender // nil olabilir, email opsiyonel
	lggr   logger.Logger
}

// NewPartnershipService, constructor. sender nil ise başvurular reddedilir.
func NewPartnershipService(sender email.EmailSender, lggr logger.Logger) PartnershipService {
	return &partnershipService{
		sender: sender,
		lggr:   lggr,
	}
}

func (s *partnershipService) SendInquiry(ctx context.Context, inquiry *models.PartnerInquiry) error {
	if err := inquiry.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if s.sender == nil {
		return fmt.Errorf("%w: partner inquiries are not configured", pkg.ErrUnavailable)
	}

	if err := s.sender.SendPartnerInquiry(ctx, inquiry); err != nil {
		s.lggr.Errorw("partner inquiry email failed", "organization", inquiry.Organization, "error", err)
		return fmt.Errorf("%w: %w", pkg.ErrUnavailable, err)
	}

	s.lggr.Infow("partner inquiry sent", "organization", inquiry.Organization)
	return nil
}
