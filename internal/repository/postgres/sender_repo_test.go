package postgres_test

import (
	"context"
	"os"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func TestSenderRepositoryCreate(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	repo := postgres.NewSenderRepository(pool)

	countSenders := func() int64 {
		var n int64
		require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM senders`).Scan(&n))
		return n
	}
	before := countSenders()

	first := &domain.Sender{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	second := &domain.Sender{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	assert.Equal(t, before+2, countSenders())
}
