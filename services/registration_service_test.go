package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

type fakeTeamRepo struct {
	createCalls int
	createErr   error
	lastName    string
	lastRoster  []models.RosterMember
}

func (f *fakeTeamRepo) CreateWithRoster(_ context.Context, name string, roster []models.RosterMember) (*models.Team, error) {
	f.createCalls++
	f.lastName = name
	f.lastRoster = roster
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Team{ID: 1, Name: name, CreatedAt: time.Now()}, nil
}

func (f *fakeTeamRepo) GetByID(context.Context, int) (*models.Team, error) {
	return nil, repositories.ErrTeamNotFound
}

func (f *fakeTeamRepo) List(context.Context, string) ([]models.TeamListing, error) {
	return nil, nil
}

func (f *fakeTeamRepo) Count(context.Context) (int, error) { return 0, nil }

type fakeHackathonRepo struct {
	createCalls int
	createErr   error
	lastRoster  []models.RosterMember
}

func (f *fakeHackathonRepo) CreateWithRoster(_ context.Context, name string, roster []models.RosterMember) (*models.HackathonTeam, error) {
	f.createCalls++
	f.lastRoster = roster
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.HackathonTeam{ID: 1, Name: name, ParticipantCount: len(roster), CreatedAt: time.Now()}, nil
}

func (f *fakeHackathonRepo) GetByID(context.Context, int) (*models.HackathonTeam, error) {
	return nil, repositories.ErrHackathonTeamNotFound
}

func (f *fakeHackathonRepo) List(context.Context, string) ([]models.TeamListing, error) {
	return nil, nil
}

func (f *fakeHackathonRepo) Count(context.Context) (int, error) { return 0, nil }

func participant(n int) ParticipantInput {
	return ParticipantInput{
		FullName: fmt.Sprintf("Member %d", n),
		Email:    fmt.Sprintf("member%d@example.com", n),
		Phone:    fmt.Sprintf("98765432%02d", n),
		Branch:   "CSE",
		Section:  "A",
		Year:     "3rd",
	}
}

func teamInput(memberCount int) RegisterTeamInput {
	input := RegisterTeamInput{
		TeamName: "Falcons",
		Leader:   participant(0),
	}
	for i := 1; i <= memberCount; i++ {
		input.Members = append(input.Members, participant(i))
	}
	return input
}

func TestRegisterTeam_Success(t *testing.T) {
	teams := &fakeTeamRepo{}
	svc := NewRegistrationService(teams, &fakeHackathonRepo{})

	team, err := svc.RegisterTeam(context.Background(), teamInput(3))
	require.NoError(t, err)
	require.NotNil(t, team)
	assert.Equal(t, "Falcons", team.Name)
	assert.Equal(t, 1, teams.createCalls)
	require.Len(t, teams.lastRoster, 4)
	assert.True(t, teams.lastRoster[0].Leader)
	for _, m := range teams.lastRoster[1:] {
		assert.False(t, m.Leader)
	}
}

func TestRegisterTeam_RosterSizeBounds(t *testing.T) {
	tests := []struct {
		name    string
		members int
		wantErr bool
	}{
		{"leader alone is too small", 0, true},
		{"two total is the minimum", 1, false},
		{"six total is the maximum", 5, false},
		{"seven total is too large", 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := &fakeTeamRepo{}
			svc := NewRegistrationService(teams, &fakeHackathonRepo{})

			_, err := svc.RegisterTeam(context.Background(), teamInput(tt.members))
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Fields, "members")
				assert.Zero(t, teams.createCalls, "storage must not be touched on rejection")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRegisterTeam_DuplicateEmailIsRejected(t *testing.T) {
	teams := &fakeTeamRepo{}
	svc := NewRegistrationService(teams, &fakeHackathonRepo{})

	input := teamInput(2)
	input.Members[1].Email = "MEMBER1@example.com" // case-insensitive duplicate of members[0]

	_, err := svc.RegisterTeam(context.Background(), input)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, teams.createCalls)
}

func TestRegisterTeam_FieldErrorsAreCollectedAcrossRoster(t *testing.T) {
	teams := &fakeTeamRepo{}
	svc := NewRegistrationService(teams, &fakeHackathonRepo{})

	input := teamInput(2)
	input.TeamName = "   "
	input.Leader.Phone = "12"
	input.Members[1].Branch = "MECH"

	_, err := svc.RegisterTeam(context.Background(), input)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "team_name")
	assert.Contains(t, ve.Fields, "leader.phone")
	assert.Contains(t, ve.Fields, "members[1].branch")
	assert.Zero(t, teams.createCalls)
}

func TestRegisterTeam_ConflictMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"team name conflict", repositories.ErrTeamNameConflict, ErrTeamNameConflict},
		{"participant email conflict", repositories.ErrParticipantEmailConflict, ErrParticipantEmailConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := &fakeTeamRepo{createErr: tt.repoErr}
			svc := NewRegistrationService(teams, &fakeHackathonRepo{})

			_, err := svc.RegisterTeam(context.Background(), teamInput(2))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterTeam_RetryAfterFailureIsClean(t *testing.T) {
	teams := &fakeTeamRepo{createErr: repositories.ErrTeamNameConflict}
	svc := NewRegistrationService(teams, &fakeHackathonRepo{})

	_, err := svc.RegisterTeam(context.Background(), teamInput(2))
	require.ErrorIs(t, err, ErrTeamNameConflict)

	teams.createErr = nil
	team, err := svc.RegisterTeam(context.Background(), teamInput(2))
	require.NoError(t, err)
	assert.Equal(t, "Falcons", team.Name)
	assert.Equal(t, 2, teams.createCalls)
}

func hackathonInput(memberCount int) RegisterHackathonTeamInput {
	base := teamInput(memberCount)
	return RegisterHackathonTeamInput{
		TeamName:         base.TeamName,
		ParticipantCount: 1 + memberCount,
		Leader:           base.Leader,
		Members:          base.Members,
	}
}

func TestRegisterHackathonTeam_Success(t *testing.T) {
	hackathons := &fakeHackathonRepo{}
	svc := NewRegistrationService(&fakeTeamRepo{}, hackathons)

	team, err := svc.RegisterHackathonTeam(context.Background(), hackathonInput(3))
	require.NoError(t, err)
	assert.Equal(t, 4, team.ParticipantCount)
	require.Len(t, hackathons.lastRoster, 4)
	assert.True(t, hackathons.lastRoster[0].Leader)
}

func TestRegisterHackathonTeam_DeclaredCountMustMatchRoster(t *testing.T) {
	hackathons := &fakeHackathonRepo{}
	svc := NewRegistrationService(&fakeTeamRepo{}, hackathons)

	input := hackathonInput(3)
	input.ParticipantCount = 6

	_, err := svc.RegisterHackathonTeam(context.Background(), input)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "participant_count")
	assert.Zero(t, hackathons.createCalls)
}

func TestInputAliases(t *testing.T) {
	t.Run("team payload accepts camelCase keys", func(t *testing.T) {
		var input RegisterTeamInput
		payload := []byte(`{"teamName":"Falcons","leader":{"fullName":"Priya Sharma","email":"priya@example.com","phone":"9876543210","branch":"CSE","section":"A","year":"3rd"},"members":[]}`)
		require.NoError(t, input.UnmarshalJSON(payload))
		assert.Equal(t, "Falcons", input.TeamName)
		assert.Equal(t, "Priya Sharma", input.Leader.FullName)
	})

	t.Run("hackathon payload accepts camelCase keys", func(t *testing.T) {
		var input RegisterHackathonTeamInput
		payload := []byte(`{"teamName":"Falcons","participantCount":2,"leader":{},"members":[{}]}`)
		require.NoError(t, input.UnmarshalJSON(payload))
		assert.Equal(t, "Falcons", input.TeamName)
		assert.Equal(t, 2, input.ParticipantCount)
	})

	t.Run("snake_case keys win when both are present", func(t *testing.T) {
		var input RegisterTeamInput
		payload := []byte(`{"team_name":"Falcons","teamName":"Ignored","leader":{},"members":[]}`)
		require.NoError(t, input.UnmarshalJSON(payload))
		assert.Equal(t, "Falcons", input.TeamName)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		var input RegisterTeamInput
		payload := []byte(`{"team_name":"Falcons","mascot":"hawk","leader":{},"members":[]}`)
		assert.Error(t, input.UnmarshalJSON(payload))
	})

	t.Run("unknown participant keys are rejected", func(t *testing.T) {
		var input ParticipantInput
		payload := []byte(`{"full_name":"Priya Sharma","nickname":"pri"}`)
		assert.Error(t, input.UnmarshalJSON(payload))
	})
}
