// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile gönderim detayları soyutlanır. Şu anki implementasyon
// Resend API kullanır; farklı bir sağlayıcı için yeni bir implementasyon yazmak yeterli.
package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/djangocampus/campus/models"
)

// EmailSender, email gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend implementasyonuna değil.
type EmailSender interface {
	// SendPartnerInquiry, partnerlik başvurusunu ekibin iletişim adresine iletir.
	// Reply-To başvuranın adresidir, böylece ekip doğrudan yanıtlayabilir.
	SendPartnerInquiry(ctx context.Context, inquiry *models.PartnerInquiry) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi: Resend'de doğrulanmış domain altında olmalı
	toEmail   string // Başvuruların düştüğü ekip adresi
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
func NewResendSender(apiKey, fromEmail, toEmail string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

func (s *resendSender) SendPartnerInquiry(ctx context.Context, inquiry *models.PartnerInquiry) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Django Campus <%s>", s.fromEmail),
		To:      []string{s.toEmail},
		ReplyTo: inquiry.Email,
		Subject: fmt.Sprintf("Partnership inquiry: %s", inquiry.Organization),
		Html:    RenderPartnerInquiry(inquiry),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send partner inquiry email: %w", err)
	}

	return nil
}

// RenderPartnerInquiry, başvuruyu basit bir HTML gövdesine çevirir.
// Kullanıcıdan gelen tüm alanlar escape edilir.
func RenderPartnerInquiry(inquiry *models.PartnerInquiry) string {
	message := strings.ReplaceAll(html.EscapeString(inquiry.Message), "\n", "<br>")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;color:#1f2937;">
  <h2 style="margin:0 0 16px 0;">New partnership inquiry</h2>
  <p><strong>Organization:</strong> %s</p>
  <p><strong>Contact:</strong> %s &lt;%s&gt;</p>
  <p style="line-height:1.6;">%s</p>
</body>
</html>`,
		html.EscapeString(inquiry.Organization),
		html.EscapeString(inquiry.ContactName),
		html.EscapeString(inquiry.Email),
		message,
	)
}
