package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/logger"
	"github.com/djangocampus/campus/services"
)

// envelope, pkg.APIResponse'un test tarafı; Data ham bırakılır.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// fakeBackend, Django API'yi taklit eder.
func fakeBackend(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/workshops/" && r.URL.Query().Get("is_ended") == "false":
		_, _ = w.Write([]byte(`{"results":[{"id":2,"workshop_name":"Upcoming"}]}`))
	case r.URL.Path == "/api/workshops/":
		_, _ = w.Write([]byte(`{"results":[{"id":1,"workshop_name":"Past","is_ended":true},{"id":2,"workshop_name":"Upcoming"}]}`))
	case r.URL.Path == "/api/workshops/2/":
		_, _ = w.Write([]byte(`{"data":{"id":2,"workshop_name":"Upcoming","registrations_count":"12"}}`))
	case r.URL.Path == "/api/workshops/2/check-registration/":
		_, _ = w.Write([]byte(`{"is_registered":true}`))
	case r.URL.Path == "/api/workshops/register/":
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":10,"workshop":2,"user_name":"Ama","user_email":"ama@example.com","phone_number":"1","django_experience":"Advanced"}}`))
	case r.URL.Path == "/api/teams/":
		_, _ = w.Write([]byte(`[{"id":1,"name":"Kofi","is_active":true}]`))
	case r.URL.Path == "/api/teams/1/":
		_, _ = w.Write([]byte(`{"id":1,"name":"Kofi"}`))
	case r.URL.Path == "/api/partners/":
		_, _ = w.Write([]byte(`{"count":2,"next":null,"previous":null,"results":[{"id":1,"name":"Old","is_active":false},{"id":2,"name":"New","is_active":true}]}`))
	case r.URL.Path == "/api/community/members/":
		_, _ = w.Write([]byte(`{"results":[{"id":1,"name":"Abena"}]}`))
	case r.URL.Path == "/api/community/testimonials/featured/":
		_, _ = w.Write([]byte(`{"results":[]}`))
	case r.URL.Path == "/api/subscribers/":
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email":["Newsletter Subscriber with this Email Address already exists."]}`))
	case r.URL.Path == "/api/subscribers/unsubscribe/":
		_, _ = w.Write([]byte(`{"message":"Successfully unsubscribed"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
	}
}

type stubSender struct{}

func (stubSender) SendPartnerInquiry(context.Context, *models.PartnerInquiry) error { return nil }

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(fakeBackend))
	t.Cleanup(backend.Close)

	lggr := logger.Test(t)
	api, err := apiclient.New(backend.URL+"/api", apiclient.WithLogger(lggr))
	require.NoError(t, err)

	workshopSvc := services.NewWorkshopService(api, lggr)
	teamSvc := services.NewTeamService(api, lggr)
	partnerSvc := services.NewPartnerService(api, lggr)

	workshops := NewWorkshopHandler(workshopSvc)
	team := NewTeamHandler(teamSvc)
	partners := NewCollectionHandler(partnerSvc)
	community := NewCommunityHandler(services.NewCommunityService(api, lggr))
	newsletter := NewNewsletterHandler(services.NewNewsletterService(api, lggr))
	partnership := NewPartnershipHandler(services.NewPartnershipService(stubSender{}, lggr))
	home := NewHomeHandler(services.NewHomeService(workshopSvc, partnerSvc, teamSvc, lggr))
	health := NewHealthHandler(backend.URL + "/api")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("GET /api/workshops", workshops.List)
	mux.HandleFunc("POST /api/workshops/register", workshops.Register)
	mux.HandleFunc("GET /api/workshops/{id}", workshops.Get)
	mux.HandleFunc("GET /api/workshops/{id}/registration", workshops.CheckRegistration)
	mux.HandleFunc("GET /api/team", team.List)
	mux.HandleFunc("GET /api/team/{id}", team.Get)
	mux.HandleFunc("GET /api/partners", partners.List)
	mux.HandleFunc("POST /api/partners/inquiry", partnership.Inquiry)
	mux.HandleFunc("GET /api/partners/{id}", partners.Get)
	mux.HandleFunc("GET /api/community/members", community.Members)
	mux.HandleFunc("GET /api/community/testimonials", community.Testimonials)
	mux.HandleFunc("POST /api/newsletter/subscribe", newsletter.Subscribe)
	mux.HandleFunc("POST /api/newsletter/unsubscribe", newsletter.Unsubscribe)
	mux.HandleFunc("GET /api/home", home.Overview)

	return mux
}

func serve(t *testing.T, mux *http.ServeMux, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestHandlers_Status(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"workshops", http.MethodGet, "/api/workshops", "", http.StatusOK},
		{"workshop by id", http.MethodGet, "/api/workshops/2", "", http.StatusOK},
		{"workshop bad id", http.MethodGet, "/api/workshops/abc", "", http.StatusBadRequest},
		{"workshop upstream 404", http.MethodGet, "/api/workshops/99", "", http.StatusNotFound},
		{"check registration", http.MethodGet, "/api/workshops/2/registration?email=a@b.com", "", http.StatusOK},
		{"check registration no email", http.MethodGet, "/api/workshops/2/registration", "", http.StatusBadRequest},
		{"register", http.MethodPost, "/api/workshops/register",
			`{"workshop":2,"user_name":"Ama","user_email":"ama@example.com","phone_number":"1","will_attend_physical":false,"django_experience":"advanced"}`,
			http.StatusCreated},
		{"register bad body", http.MethodPost, "/api/workshops/register", `{`, http.StatusBadRequest},
		{"register invalid email", http.MethodPost, "/api/workshops/register",
			`{"workshop":2,"user_name":"Ama","user_email":"nope","phone_number":"1","django_experience":"Beginner"}`,
			http.StatusBadRequest},
		{"team", http.MethodGet, "/api/team", "", http.StatusOK},
		{"team member", http.MethodGet, "/api/team/1", "", http.StatusOK},
		{"team member missing", http.MethodGet, "/api/team/5", "", http.StatusNotFound},
		{"partners", http.MethodGet, "/api/partners", "", http.StatusOK},
		{"partner upstream 404", http.MethodGet, "/api/partners/3", "", http.StatusNotFound},
		{"community members", http.MethodGet, "/api/community/members", "", http.StatusOK},
		{"testimonials", http.MethodGet, "/api/community/testimonials", "", http.StatusOK},
		{"unsubscribe", http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"a@b.com"}`, http.StatusOK},
		{"inquiry", http.MethodPost, "/api/partners/inquiry",
			`{"organization":"Acme","contact_name":"Kwame","email":"k@acme.io","message":"Hello"}`,
			http.StatusAccepted},
		{"inquiry invalid", http.MethodPost, "/api/partners/inquiry", `{"organization":"Acme"}`, http.StatusBadRequest},
		{"home", http.MethodGet, "/api/home", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := serve(t, mux, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantStatus < 400, env.Success)
			if !env.Success {
				assert.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestWorkshopHandler_Register_UnknownExperience(t *testing.T) {
	t.Parallel()

	rec, env := serve(t, newTestMux(t), http.MethodPost, "/api/workshops/register",
		`{"workshop":2,"user_name":"Ama","user_email":"ama@example.com","phone_number":"1","django_experience":"Guru"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "invalid request body")
	assert.Contains(t, env.Error, "experience level must be one of Beginner, Intermediate, Advanced")
}

func TestWorkshopHandler_Upcoming(t *testing.T) {
	t.Parallel()

	_, env := serve(t, newTestMux(t), http.MethodGet, "/api/workshops?upcoming=true", "")

	var workshops []models.Workshop
	require.NoError(t, json.Unmarshal(env.Data, &workshops))
	require.Len(t, workshops, 1)
	assert.Equal(t, "Upcoming", workshops[0].Name)
}

func TestWorkshopHandler_CountNormalized(t *testing.T) {
	t.Parallel()

	_, env := serve(t, newTestMux(t), http.MethodGet, "/api/workshops/2", "")

	var workshop models.Workshop
	require.NoError(t, json.Unmarshal(env.Data, &workshop))
	assert.Equal(t, 12, workshop.Registrations())
}

func TestCollectionHandler_ActiveFilter(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	_, env := serve(t, mux, http.MethodGet, "/api/partners", "")
	var all models.Page[models.Partner]
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Equal(t, 2, all.Count)
	assert.Len(t, all.Results, 2)

	_, env = serve(t, mux, http.MethodGet, "/api/partners?active=true", "")
	var active models.Page[models.Partner]
	require.NoError(t, json.Unmarshal(env.Data, &active))
	assert.Equal(t, 1, active.Count)
	require.Len(t, active.Results, 1)
	assert.Equal(t, "New", active.Results[0].Name)
}

func TestNewsletterHandler_Duplicate(t *testing.T) {
	t.Parallel()

	rec, env := serve(t, newTestMux(t), http.MethodPost, "/api/newsletter/subscribe", `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, services.DuplicateSubscriptionMessage, env.Error)
}

func TestCheckRegistration_Body(t *testing.T) {
	t.Parallel()

	_, env := serve(t, newTestMux(t), http.MethodGet, "/api/workshops/2/registration?email=a@b.com", "")

	var status models.RegistrationStatus
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.IsRegistered)
}

func TestHomeHandler_Overview(t *testing.T) {
	t.Parallel()

	_, env := serve(t, newTestMux(t), http.MethodGet, "/api/home", "")

	var overview services.HomeOverview
	require.NoError(t, json.Unmarshal(env.Data, &overview))
	require.NotNil(t, overview.NextWorkshop)
	assert.Equal(t, 2, overview.NextWorkshop.ID)
	assert.Len(t, overview.Partners, 1)
	assert.Len(t, overview.Team, 1)
}

func TestPartnershipHandler_Unconfigured(t *testing.T) {
	t.Parallel()

	h := NewPartnershipHandler(services.NewPartnershipService(nil, logger.Test(t)))
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/partners/inquiry", h.Inquiry)

	rec, env := serve(t, mux, http.MethodPost, "/api/partners/inquiry",
		`{"organization":"Acme","contact_name":"Kwame","email":"k@acme.io","message":"Hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, env.Success)
}
