package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/logger"
)

func TestHomeService_Overview(t *testing.T) {
	t.Parallel()

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/workshops/":
			_, _ = w.Write([]byte(`{"results":[{"id":5,"workshop_name":"Soon"},{"id":6,"workshop_name":"Later"}]}`))
		case "/api/partners/":
			_, _ = w.Write([]byte(`{"count":2,"results":[{"id":1,"name":"A","is_active":true},{"id":2,"name":"B","is_active":false}]}`))
		case "/api/teams/":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Kofi","is_active":false},{"id":2,"name":"Esi","is_active":true}]`))
		}
	})

	lggr := logger.Test(t)
	svc := NewHomeService(
		NewWorkshopService(api, lggr),
		NewPartnerService(api, lggr),
		NewTeamService(api, lggr),
		lggr,
	)

	overview := svc.Overview(t.Context())
	require.NotNil(t, overview.NextWorkshop)
	assert.Equal(t, 5, overview.NextWorkshop.ID)
	require.Len(t, overview.Partners, 1)
	assert.Equal(t, "A", overview.Partners[0].Name)
	require.Len(t, overview.Team, 1)
	assert.Equal(t, "Esi", overview.Team[0].Name)
}

func TestHomeService_Overview_PartialFailure(t *testing.T) {
	t.Parallel()

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/partners/":
			_, _ = w.Write([]byte(`{"count":1,"results":[{"id":1,"name":"A","is_active":true}]}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})

	lggr := logger.Test(t)
	svc := NewHomeService(
		NewWorkshopService(api, lggr),
		NewPartnerService(api, lggr),
		NewTeamService(api, lggr),
		lggr,
	)

	overview := svc.Overview(t.Context())
	assert.Nil(t, overview.NextWorkshop)
	assert.Len(t, overview.Partners, 1)
	assert.NotNil(t, overview.Team)
	assert.Empty(t, overview.Team)
}

type fakeSender struct {
	sent []*models.PartnerInquiry
	err  error
}

func (f *fakeSender) SendPartnerInquiry(_ context.Context, inquiry *models.PartnerInquiry) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, inquiry)
	return nil
}

func validInquiry() *models.PartnerInquiry {
	return &models.PartnerInquiry{
		Organization: "  Acme  ",
		ContactName:  "Kwame",
		Email:        "kwame@acme.io",
		Message:      "We'd like to host a workshop.",
	}
}

func TestPartnershipService_SendInquiry(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := NewPartnershipService(sender, logger.Test(t))

	require.NoError(t, svc.SendInquiry(t.Context(), validInquiry()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Acme", sender.sent[0].Organization)
}

func TestPartnershipService_SendInquiry_Errors(t *testing.T) {
	t.Parallel()

	invalid := validInquiry()
	invalid.Email = "kwame"

	tests := []struct {
		name    string
		sender  *fakeSender
		inquiry *models.PartnerInquiry
		wantErr error
	}{
		{"invalid inquiry", &fakeSender{}, invalid, pkg.ErrBadRequest},
		{"not configured", nil, validInquiry(), pkg.ErrUnavailable},
		{"provider failure", &fakeSender{err: errors.New("resend: 500")}, validInquiry(), pkg.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewPartnershipService(nil, logger.Test(t))
			if tt.sender != nil {
				svc = NewPartnershipService(tt.sender, logger.Test(t))
			}

			err := svc.SendInquiry(t.Context(), tt.inquiry)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
