package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/pereval-api/internal/migrations"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// setupTestDB поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDB(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test: requires docker")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("pereval"),
		postgres.WithUsername("fstr"),
		postgres.WithPassword("fstr"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn, WithQueryTimeout(10*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = storage.Close()
	})

	migrationsPath, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	return storage
}

func ptr[T any](v T) *T {
	return &v
}

// newSubmission возвращает корректную заявку, которую тесты правят под свой случай.
func newSubmission(email string) models.Submission {
	lat, lon, height := models.Float(45.3842), models.Float(7.1525), models.Int(1200)
	return models.Submission{
		BeautyTitle: "пер. ",
		Title:       "Пхия",
		OtherTitles: "Триев",
		Connect:     "",
		AddTime:     "2021-09-22 13:18:13",
		User: &models.UserInput{
			Email: email,
			Phone: "+79031234567",
			Fam:   "Пупкин",
			Name:  "Василий",
			Otc:   "Иванович",
		},
		Coords: &models.CoordsInput{
			Latitude:  &lat,
			Longitude: &lon,
			Height:    &height,
		},
		Level: models.Level{Summer: "1А", Autumn: "1А"},
	}
}

// setStatus переводит перевал в другой статус модерации напрямую в базе.
func setStatus(t *testing.T, s *Storage, id int64, status models.Status) {
	t.Helper()
	_, err := s.DB.Exec(`UPDATE pereval_added SET status = $1 WHERE id = $2`, status.String(), id)
	require.NoError(t, err)
}

func countUsers(t *testing.T, s *Storage, email string) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&n))
	return n
}
