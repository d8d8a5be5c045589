package plots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ts := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, crop, area_ha, updated_at FROM plots ORDER BY name, id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "crop", "area_ha", "updated_at"}).
			AddRow("p2", "East", "wheat", 3.2, ts).
			AddRow("p1", "North", "corn", 1.5, ts))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "East", got[0].Name)
	require.InDelta(t, 1.5, got[1].AreaHa, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Error(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM plots`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "failed to select plots: boom")
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO plots .* ON CONFLICT \(id\)\s+DO UPDATE SET`).
		WithArgs("p1", "North", "corn", 1.5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), &models.Plot{ID: "p1", Name: "North", Crop: "corn", AreaHa: 1.5}))
	require.NoError(t, mock.ExpectationsWereMet())
}
