package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/logger"
)

const teamsPath = "/teams/"

// TeamService, ekip üyeleri. Ekip bölümü sayfada opsiyonel olduğu için
// her iki operasyon da fallback policy kullanır, asla error dönmez.
type TeamService interface {
	// List, results alanını, yoksa yanıtın kendisini liste olarak döner. Hata → [].
	List(ctx context.Context) []models.TeamMember

	// Get, tek bir ekip üyesi. Hata → nil.
	Get(ctx context.Context, id int) *models.TeamMember
}

type teamService struct {
	api  Backend
	lggr logger.Logger
}

// NewTeamService, constructor.
func NewTeamService(api Backend, lggr logger.Logger) TeamService {
	return &teamService{
		api:  api,
		lggr: lggr,
	}
}

func (s *teamService) List(ctx context.Context) []models.TeamMember {
	return apiclient.Fallback(s.lggr, "teams.list", []models.TeamMember{}, func() ([]models.TeamMember, error) {
		var raw json.RawMessage
		if err := s.api.Get(ctx, teamsPath, &raw); err != nil {
			return nil, err
		}
		return decodeListOrEnvelope[models.TeamMember](teamsPath, raw)
	})
}

func (s *teamService) Get(ctx context.Context, id int) *models.TeamMember {
	path := fmt.Sprintf("%s%d/", teamsPath, id)

	return apiclient.Fallback(s.lggr, "teams.get", (*models.TeamMember)(nil), func() (*models.TeamMember, error) {
		var member models.TeamMember
		if err := s.api.Get(ctx, path, &member); err != nil {
			return nil, err
		}
		return &member, nil
	})
}
