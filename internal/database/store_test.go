package database

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warroom/war-server/internal/models"
)

// testStore connects to the database named by DATABASE_URL, skipping the test
// when none is configured.
func testStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping database tests")
	}

	s, err := Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func TestSeedDeckIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedDeck(ctx))
	require.NoError(t, s.SeedDeck(ctx))

	n, err := s.CountCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 52, n)

	cards, err := s.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 52)

	seen := make(map[string]bool, 52)
	for _, c := range cards {
		key := c.Suit.String() + "/" + string(c.Rank)
		assert.False(t, seen[key], "duplicate card %s", key)
		seen[key] = true
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// unique per run so reruns against a shared test DB don't collide
	username := "dup-" + uuid.NewString()

	u1 := &models.User{Username: username, Email: "first@test.com"}
	require.NoError(t, s.CreateUser(ctx, u1, "password"))

	u2 := &models.User{Username: username, Email: "second@test.com"}
	err := s.CreateUser(ctx, u2, "password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateAndLookup(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	username := "auth-" + uuid.NewString()
	u := &models.User{Username: username, Email: "auth@test.com"}
	require.NoError(t, s.CreateUser(ctx, u, "password"))

	got, err := s.Authenticate(ctx, username, "password")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(ctx, username, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.UserByUsername(ctx, "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecordAndTallyGames(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	u := &models.User{Username: "tally-" + uuid.NewString(), Email: "tally@test.com"}
	require.NoError(t, s.CreateUser(ctx, u, "password"))

	for _, result := range []models.GameResult{models.ResultWin, models.ResultLoss} {
		g := &models.WarGame{
			PlayerID:   u.ID,
			Result:     result,
			PlayerCard: "jack of clubs",
			DealerCard: "ten of clubs",
		}
		require.NoError(t, s.RecordGame(ctx, g))
	}

	games, err := s.GamesByPlayer(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, games, 2)

	tally, err := s.TallyByPlayer(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Tally{Wins: 1, Losses: 1}, tally)
	assert.Equal(t, 2, tally.Played())
}
