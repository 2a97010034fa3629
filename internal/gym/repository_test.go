package gym

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func gymRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{
		"id", "name", "slug", "location", "phone", "email", "hours", "image", "admin_code", "password_hash", "created_at",
	})
}

func TestCreateAndGetGym(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gyms (name, slug, location, phone, email, hours, image, admin_code)")).
		WithArgs("Tessalp Centro", "tessalp-centro", "Av. Principal 123", "+52 555 123 4567", "centro@tessalpgyms.com", "5:00-23:00", nil, "GYM001").
		WillReturnRows(gymRows(t).AddRow(1, "Tessalp Centro", "tessalp-centro", "Av. Principal 123", "+52 555 123 4567", "centro@tessalpgyms.com", "5:00-23:00", nil, "GYM001", nil, now))

	g, err := repo.CreateGym(context.Background(), &Gym{
		Name:      "Tessalp Centro",
		Slug:      "tessalp-centro",
		Location:  "Av. Principal 123",
		Phone:     "+52 555 123 4567",
		Email:     "centro@tessalpgyms.com",
		Hours:     "5:00-23:00",
		AdminCode: "GYM001",
	})
	require.NoError(t, err)
	require.Equal(t, 1, g.ID)
	require.Equal(t, "tessalp-centro", g.Slug)

	mock.ExpectQuery(regexp.QuoteMeta("FROM gyms WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(gymRows(t).AddRow(1, "Tessalp Centro", "tessalp-centro", "Av. Principal 123", "+52 555 123 4567", "centro@tessalpgyms.com", "5:00-23:00", nil, "GYM001", nil, now))

	got, err := repo.GetGymByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Tessalp Centro", got.Name)
}

func TestGetGymBySlug(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM gyms WHERE slug = $1")).
		WithArgs("tessalp-norte").
		WillReturnRows(gymRows(t).AddRow(2, "Tessalp Norte", "tessalp-norte", "Blvd. Norte 456", "x", "norte@tessalpgyms.com", "h", nil, "GYM002", nil, time.Now()))

	g, err := repo.GetGymBySlug(context.Background(), "tessalp-norte")
	require.NoError(t, err)
	require.Equal(t, 2, g.ID)
}

func TestFindGymByNameTakesLowestID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name ILIKE '%' || $1 || '%' ORDER BY id ASC LIMIT 1")).
		WithArgs("tessalp").
		WillReturnRows(gymRows(t).AddRow(1, "Tessalp Centro", "tessalp-centro", "l", "p", "e", "h", nil, "GYM001", nil, time.Now()))

	g, err := repo.FindGymByName(context.Background(), "tessalp")
	require.NoError(t, err)
	require.Equal(t, 1, g.ID)
}

func TestSlugExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM gyms WHERE slug = $1 AND id <> $2)")).
		WithArgs("tessalp-centro", 0).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists(context.Background(), "tessalp-centro", 0)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestReplaceSchedulesIsTransactional(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gym_schedules WHERE gym_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gym_schedules (gym_id, day_of_week, open_time, close_time, is_closed)")).
		WithArgs(1, "lunes", "05:00", "23:00", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_id", "day_of_week", "open_time", "close_time", "is_closed"}).
			AddRow(10, 1, "lunes", "05:00", "23:00", false))
	mock.ExpectCommit()

	schedules, err := repo.ReplaceSchedules(context.Background(), 1, []ScheduleInput{
		{DayOfWeek: "lunes", OpenTime: "05:00", CloseTime: "23:00", IsClosed: false},
	})
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	require.Equal(t, "lunes", schedules[0].DayOfWeek)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceSchedulesRollsBackOnFailure(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gym_schedules WHERE gym_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gym_schedules")).
		WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	_, err := repo.ReplaceSchedules(context.Background(), 1, []ScheduleInput{
		{DayOfWeek: "lunes", OpenTime: "05:00", CloseTime: "23:00"},
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
