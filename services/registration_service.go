package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

const (
	minRosterSize = 2
	maxRosterSize = 6
)

// ParticipantInput is the wire shape of one roster entry. The site frontend
// historically sent camelCase keys, so the canonical snake_case names accept
// their camelCase aliases during decoding; everything past this boundary is
// naming-convention-agnostic.
type ParticipantInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Branch   string `json:"branch"`
	Section  string `json:"section"`
	Year     string `json:"year"`
}

// strictUnmarshal decodes into dst rejecting unknown keys, preserving the
// behavior callers get from readJSON even though a custom UnmarshalJSON
// re-decodes the raw bytes.
func strictUnmarshal(data []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (p *ParticipantInput) UnmarshalJSON(data []byte) error {
	type plain ParticipantInput
	aux := struct {
		*plain
		FullNameAlias string `json:"fullName"`
	}{plain: (*plain)(p)}
	if err := strictUnmarshal(data, &aux); err != nil {
		return err
	}
	if p.FullName == "" {
		p.FullName = aux.FullNameAlias
	}
	return nil
}

type RegisterTeamInput struct {
	TeamName string             `json:"team_name"`
	Leader   ParticipantInput   `json:"leader"`
	Members  []ParticipantInput `json:"members"`
}

func (in *RegisterTeamInput) UnmarshalJSON(data []byte) error {
	type plain RegisterTeamInput
	aux := struct {
		*plain
		TeamNameAlias string `json:"teamName"`
	}{plain: (*plain)(in)}
	if err := strictUnmarshal(data, &aux); err != nil {
		return err
	}
	if in.TeamName == "" {
		in.TeamName = aux.TeamNameAlias
	}
	return nil
}

type RegisterHackathonTeamInput struct {
	TeamName         string             `json:"team_name"`
	ParticipantCount int                `json:"participant_count"`
	Leader           ParticipantInput   `json:"leader"`
	Members          []ParticipantInput `json:"members"`
}

func (in *RegisterHackathonTeamInput) UnmarshalJSON(data []byte) error {
	type plain RegisterHackathonTeamInput
	aux := struct {
		*plain
		TeamNameAlias         string `json:"teamName"`
		ParticipantCountAlias int    `json:"participantCount"`
	}{plain: (*plain)(in)}
	if err := strictUnmarshal(data, &aux); err != nil {
		return err
	}
	if in.TeamName == "" {
		in.TeamName = aux.TeamNameAlias
	}
	if in.ParticipantCount == 0 {
		in.ParticipantCount = aux.ParticipantCountAlias
	}
	return nil
}

type RegistrationService interface {
	RegisterTeam(ctx context.Context, input RegisterTeamInput) (*models.Team, error)
	RegisterHackathonTeam(ctx context.Context, input RegisterHackathonTeamInput) (*models.HackathonTeam, error)
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	GetHackathonTeam(ctx context.Context, id int) (*models.HackathonTeam, error)
}

type registrationService struct {
	teams          repositories.TeamRepository
	hackathonTeams repositories.HackathonTeamRepository
}

func NewRegistrationService(teams repositories.TeamRepository, hackathonTeams repositories.HackathonTeamRepository) RegistrationService {
	return &registrationService{
		teams:          teams,
		hackathonTeams: hackathonTeams,
	}
}

func (s *registrationService) RegisterTeam(ctx context.Context, input RegisterTeamInput) (*models.Team, error) {
	return registerRoster(ctx, input.TeamName, input.Leader, input.Members, s.teams.CreateWithRoster)
}

func (s *registrationService) RegisterHackathonTeam(ctx context.Context, input RegisterHackathonTeamInput) (*models.HackathonTeam, error) {
	if input.ParticipantCount != 1+len(input.Members) {
		return nil, newValidationError("participant_count",
			fmt.Sprintf("declared participant count %d does not match roster size %d", input.ParticipantCount, 1+len(input.Members)))
	}
	return registerRoster(ctx, input.TeamName, input.Leader, input.Members, s.hackathonTeams.CreateWithRoster)
}

func (s *registrationService) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return team, nil
}

func (s *registrationService) GetHackathonTeam(ctx context.Context, id int) (*models.HackathonTeam, error) {
	team, err := s.hackathonTeams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrHackathonTeamNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon team %d: %w", id, err)
	}
	return team, nil
}

// registerRoster is the single roster-registration routine shared by both
// team variants, parameterized by the aggregate type and an atomic creator.
// It validates every participant, the roster size and email uniqueness, then
// hands the normalized roster to create, which must persist the whole
// aggregate in one transaction or not at all.
func registerRoster[A any](
	ctx context.Context,
	teamName string,
	leader ParticipantInput,
	members []ParticipantInput,
	create func(ctx context.Context, name string, roster []models.RosterMember) (*A, error),
) (*A, error) {
	ve := &ValidationError{}

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		ve.add("team_name", "team name is required")
	}

	roster := make([]models.RosterMember, 0, 1+len(members))
	roster = append(roster, validateParticipant(ve, "leader", leader, true))
	for i, m := range members {
		roster = append(roster, validateParticipant(ve, fmt.Sprintf("members[%d]", i), m, false))
	}
	if !ve.empty() {
		return nil, ve
	}

	if total := len(roster); total < minRosterSize || total > maxRosterSize {
		return nil, newValidationError("members",
			fmt.Sprintf("team must have between %d and %d participants including the leader, got %d", minRosterSize, maxRosterSize, total))
	}

	seen := make(map[string]struct{}, len(roster))
	for _, m := range roster {
		key := strings.ToLower(m.Email)
		if _, dup := seen[key]; dup {
			return nil, newValidationError("members", fmt.Sprintf("duplicate participant email %s", m.Email))
		}
		seen[key] = struct{}{}
	}

	aggregate, err := create(ctx, teamName, roster)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrParticipantEmailConflict):
			return nil, ErrParticipantEmailConflict
		}
		return nil, fmt.Errorf("failed to register team %q: %w", teamName, err)
	}
	return aggregate, nil
}
