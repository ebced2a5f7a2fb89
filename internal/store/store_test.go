package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"arrivals-backend/internal/model"
)

// newTestDB opens an in-memory SQLite database with migrations applied.
func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.Report{}, &model.Guest{}, &model.PushSubscription{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func TestSaveReportAndListGuests(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	report := &model.Report{ID: "rep-1", FileName: "arrivals_0315.txt", LineCount: 12, GuestCount: 3}
	guests := []model.Guest{
		{Tag: "000", LastName: "SMITH", RoomNumber: "101", NumberOfGuests: 2, ArrivalDay: "15", DepartureDay: "18", BookingCode: "1234"},
		{Tag: "001", LastName: "SMITH", RoomNumber: "101", NumberOfGuests: 2, ArrivalDay: "15", DepartureDay: "18", BookingCode: "1234"},
		{Tag: "002", LastName: "SMITH", RoomNumber: "102", NumberOfGuests: 1, ArrivalDay: "15", DepartureDay: "18", BookingCode: "1234"},
	}

	require.NoError(t, s.SaveReport(ctx, report, guests))

	stored, err := s.GetReport(ctx, "rep-1")
	require.NoError(t, err)
	assert.Equal(t, "arrivals_0315.txt", stored.FileName)
	assert.Equal(t, 3, stored.GuestCount)

	listed, err := s.ListGuests(ctx, "rep-1")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// Tag order survives the round trip.
	assert.Equal(t, "000", listed[0].Tag)
	assert.Equal(t, "002", listed[2].Tag)
	assert.Equal(t, "rep-1", listed[0].ReportID)
}

func TestSaveReportWithoutGuests(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	report := &model.Report{ID: "rep-empty", FileName: "empty.txt"}
	require.NoError(t, s.SaveReport(ctx, report, nil))

	listed, err := s.ListGuests(ctx, "rep-empty")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListReportsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	require.NoError(t, s.SaveReport(ctx, &model.Report{ID: "rep-a", FileName: "a.txt"}, nil))
	require.NoError(t, s.SaveReport(ctx, &model.Report{ID: "rep-b", FileName: "b.txt"}, nil))

	// Force distinct timestamps; sqlite time resolution can collapse them.
	require.NoError(t, db.Model(&model.Report{ID: "rep-b"}).
		Update("created_at", gorm.Expr("datetime(created_at, '+1 hour')")).Error)

	reports, err := s.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "rep-b", reports[0].ID)
}

func TestDeleteReportRemovesGuests(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	report := &model.Report{ID: "rep-del", FileName: "del.txt", GuestCount: 1}
	guests := []model.Guest{{Tag: "000", LastName: "COLE", RoomNumber: "305", NumberOfGuests: 1}}
	require.NoError(t, s.SaveReport(ctx, report, guests))

	require.NoError(t, s.DeleteReport(ctx, "rep-del"))

	_, err := s.GetReport(ctx, "rep-del")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	listed, err := s.ListGuests(ctx, "rep-del")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteReportUnknownID(t *testing.T) {
	s := NewGormStore(newTestDB(t))

	err := s.DeleteReport(context.Background(), "no-such-report")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
