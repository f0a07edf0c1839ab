package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexora-labs/website-backend/models"
)

// These tests run against a real Postgres with the schema already migrated.
// They are skipped unless TEST_DATABASE_URL is set.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set; skipping integration tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))

	_, err = db.Exec(`TRUNCATE participants, teams, hackathon_participants, hackathon_teams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return db
}

func testRoster(size int) []models.RosterMember {
	roster := make([]models.RosterMember, 0, size)
	for i := 0; i < size; i++ {
		roster = append(roster, models.RosterMember{
			FullName: fmt.Sprintf("Member %d", i),
			Email:    fmt.Sprintf("member%d@example.com", i),
			Phone:    fmt.Sprintf("98765432%02d", i),
			Branch:   models.BranchCSE,
			Section:  models.SectionA,
			Year:     models.YearThird,
			Leader:   i == 0,
		})
	}
	return roster
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestTeamRepository_CreateWithRoster(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresTeamRepository(db)
	ctx := context.Background()

	team, err := repo.CreateWithRoster(ctx, "Falcons", testRoster(4))
	require.NoError(t, err)
	require.NotZero(t, team.ID)
	require.Len(t, team.Participants, 4)
	assert.True(t, team.Participants[0].IsLeader)

	assert.Equal(t, 1, countRows(t, db, "teams"))
	assert.Equal(t, 4, countRows(t, db, "participants"))
}

func TestTeamRepository_NameConflict(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresTeamRepository(db)
	ctx := context.Background()

	_, err := repo.CreateWithRoster(ctx, "Falcons", testRoster(2))
	require.NoError(t, err)

	_, err = repo.CreateWithRoster(ctx, "Falcons", testRoster(2))
	require.ErrorIs(t, err, ErrTeamNameConflict)

	// The failed registration must leave no rows behind.
	assert.Equal(t, 1, countRows(t, db, "teams"))
	assert.Equal(t, 2, countRows(t, db, "participants"))
}

func TestTeamRepository_RollbackOnMidRosterFailure(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresTeamRepository(db)
	ctx := context.Background()

	// Third member repeats the first email, tripping the (team_id, email)
	// constraint after two participant rows were already inserted.
	roster := testRoster(4)
	roster[2].Email = roster[0].Email

	_, err := repo.CreateWithRoster(ctx, "Falcons", roster)
	require.ErrorIs(t, err, ErrParticipantEmailConflict)

	assert.Equal(t, 0, countRows(t, db, "teams"))
	assert.Equal(t, 0, countRows(t, db, "participants"))

	// The name is still free after the rollback.
	_, err = repo.CreateWithRoster(ctx, "Falcons", testRoster(2))
	require.NoError(t, err)
}

func TestTeamRepository_ListProjection(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresTeamRepository(db)
	ctx := context.Background()

	_, err := repo.CreateWithRoster(ctx, "Falcons", testRoster(3))
	require.NoError(t, err)

	listings, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Member 0", listings[0].LeaderName)
	assert.Equal(t, 3, listings[0].ParticipantsCount)
	assert.Equal(t, "Member 0, Member 1, Member 2", listings[0].ParticipantNames)

	listings, err = repo.List(ctx, "member1@example.com")
	require.NoError(t, err)
	assert.Len(t, listings, 1)

	listings, err = repo.List(ctx, "no-such-team")
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestHackathonRepository_CreateWithRoster(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresHackathonTeamRepository(db)
	ctx := context.Background()

	team, err := repo.CreateWithRoster(ctx, "Night Owls", testRoster(5))
	require.NoError(t, err)
	assert.Equal(t, 5, team.ParticipantCount)
	require.Len(t, team.Participants, 5)
	assert.Equal(t, models.HackathonRoleLeader, team.Participants[0].Role)
	for _, p := range team.Participants[1:] {
		assert.Equal(t, models.HackathonRoleMember, p.Role)
	}
}

func TestHackathonRepository_RollbackOnMidRosterFailure(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresHackathonTeamRepository(db)
	ctx := context.Background()

	roster := testRoster(3)
	roster[2].Email = roster[1].Email

	_, err := repo.CreateWithRoster(ctx, "Night Owls", roster)
	require.ErrorIs(t, err, ErrParticipantEmailConflict)

	assert.Equal(t, 0, countRows(t, db, "hackathon_teams"))
	assert.Equal(t, 0, countRows(t, db, "hackathon_participants"))
}

func TestSameTeamNameAllowedAcrossVariants(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := NewPostgresTeamRepository(db).CreateWithRoster(ctx, "Falcons", testRoster(2))
	require.NoError(t, err)

	// Uniqueness is per table, not shared between the two registries.
	_, err = NewPostgresHackathonTeamRepository(db).CreateWithRoster(ctx, "Falcons", testRoster(2))
	require.NoError(t, err)
}
