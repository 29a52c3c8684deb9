package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	dbPath := filepath.Join(t.TempDir(), "rigreport.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTestWell(t *testing.T, repo *SQLiteRepository, name string, spud *time.Time) *Well {
	well := &Well{Name: name, SpudDate: spud}
	err := repo.CreateWell(context.Background(), well)
	require.NoError(t, err)
	require.Greater(t, well.ID, int64(0))
	return well
}

func createTestReport(t *testing.T, repo *SQLiteRepository, wellID, sectionID int64, date time.Time) *DailyReport {
	report := &DailyReport{
		ReportUID:    fmt.Sprintf("uid-%d-%s", sectionID, date.Format("2006-01-02")),
		WellID:       wellID,
		SectionID:    sectionID,
		ReportDate:   date,
		ReportNumber: 1,
		RigDay:       1,
		Status:       "draft",
	}
	err := repo.CreateReport(context.Background(), report)
	require.NoError(t, err)
	require.Greater(t, report.ID, int64(0))
	return report
}

func TestCreateWell(t *testing.T) {
	repo := setupTestDB(t)

	spud := testDate(2024, 1, 1)
	well := createTestWell(t, repo, "Well A-1", &spud)

	retrieved, err := repo.GetWell(context.Background(), well.ID)
	require.NoError(t, err)
	assert.Equal(t, well.ID, retrieved.ID)
	assert.Equal(t, "Well A-1", retrieved.Name)
	require.NotNil(t, retrieved.SpudDate)
	assert.True(t, spud.Equal(*retrieved.SpudDate))
}

func TestCreateWell_NoSpudDate(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well B-2", nil)

	retrieved, err := repo.GetWell(context.Background(), well.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved.SpudDate)
}

func TestGetWell_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetWell(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListWells(t *testing.T) {
	repo := setupTestDB(t)

	createTestWell(t, repo, "Zulu-1", nil)
	createTestWell(t, repo, "Alpha-1", nil)

	wells, err := repo.ListWells(context.Background())
	require.NoError(t, err)
	require.Len(t, wells, 2)

	// Ordered by name
	assert.Equal(t, "Alpha-1", wells[0].Name)
	assert.Equal(t, "Zulu-1", wells[1].Name)
}

func TestUpdateWell(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)

	spud := testDate(2024, 2, 15)
	well.Name = "Well A-1 ST2"
	well.SpudDate = &spud
	err := repo.UpdateWell(context.Background(), well)
	require.NoError(t, err)

	retrieved, err := repo.GetWell(context.Background(), well.ID)
	require.NoError(t, err)
	assert.Equal(t, "Well A-1 ST2", retrieved.Name)
	require.NotNil(t, retrieved.SpudDate)
	assert.True(t, spud.Equal(*retrieved.SpudDate))
}

func TestUpdateWell_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.UpdateWell(context.Background(), &Well{ID: 999, Name: "Ghost"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateReport(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	retrieved, err := repo.GetReport(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ReportUID, retrieved.ReportUID)
	assert.Equal(t, well.ID, retrieved.WellID)
	assert.Equal(t, int64(10), retrieved.SectionID)
	assert.True(t, testDate(2024, 1, 10).Equal(retrieved.ReportDate))
	assert.Equal(t, 1, retrieved.ReportNumber)
	assert.Equal(t, 1, retrieved.RigDay)
}

func TestCreateReport_DuplicateSectionDate(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	// One report per section per calendar date
	dup := &DailyReport{
		ReportUID:  "uid-dup",
		WellID:     well.ID,
		SectionID:  10,
		ReportDate: testDate(2024, 1, 10),
	}
	err := repo.CreateReport(context.Background(), dup)
	assert.Error(t, err)
}

func TestGetReportBySectionDate(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))
	createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 11))

	retrieved, err := repo.GetReportBySectionDate(context.Background(), 10, testDate(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, report.ID, retrieved.ID)

	_, err = repo.GetReportBySectionDate(context.Background(), 10, testDate(2024, 1, 12))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListReports(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	other := createTestWell(t, repo, "Well B-2", nil)

	createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 11))
	createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))
	createTestReport(t, repo, other.ID, 20, testDate(2024, 1, 10))

	reports, err := repo.ListReports(context.Background(), well.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Ordered by report date
	assert.True(t, testDate(2024, 1, 10).Equal(reports[0].ReportDate))
	assert.True(t, testDate(2024, 1, 11).Equal(reports[1].ReportDate))
}

func TestUpdateReport(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	report.ReportNumber = 5
	report.RigDay = 3
	report.DepthStart = 1250.5
	report.DepthEnd = 1410.0
	report.Status = "final"
	report.Summary = "Drilled 12 1/4\" section"
	err := repo.UpdateReport(context.Background(), report)
	require.NoError(t, err)

	retrieved, err := repo.GetReport(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, retrieved.ReportNumber)
	assert.Equal(t, 3, retrieved.RigDay)
	assert.Equal(t, 1250.5, retrieved.DepthStart)
	assert.Equal(t, 1410.0, retrieved.DepthEnd)
	assert.Equal(t, "final", retrieved.Status)
	assert.Equal(t, "Drilled 12 1/4\" section", retrieved.Summary)
}

func TestDeleteReport(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	err := repo.ReplaceEntries(context.Background(), report.ID, []*TimeLogEntry{
		{LogKind: "full_day", Position: 0, TimeFrom: "00:00", TimeTo: "06:00", DurationHours: 6.0},
	})
	require.NoError(t, err)

	err = repo.DeleteReport(context.Background(), report.ID)
	require.NoError(t, err)

	_, err = repo.GetReport(context.Background(), report.ID)
	assert.Error(t, err)

	// Entries cascade with the report
	entries, err := repo.ListEntries(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReplaceEntries_RoundTrip(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	entries := []*TimeLogEntry{
		{
			LogKind:       "full_day",
			Position:      0,
			TimeFrom:      "00:00",
			TimeTo:        "06:30",
			MainPhase:     "DRL",
			MainCode:      "21",
			SubCode:       "a",
			Status:        "done",
			Description:   "Drilling ahead",
			DurationHours: 6.5,
		},
		{
			LogKind:       "full_day",
			Position:      1,
			TimeFrom:      "06:30",
			TimeTo:        "00:00",
			IsTo2400:      true,
			MainPhase:     "CIR",
			IsNPT:         true,
			Description:   "Circulating, waiting on cement",
			DurationHours: 17.5,
		},
	}

	err := repo.ReplaceEntries(context.Background(), report.ID, entries)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Greater(t, e.ID, int64(0))
		assert.Equal(t, report.ID, e.ReportID)
	}

	stored, err := repo.ListEntries(context.Background(), report.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	assert.Equal(t, "00:00", stored[0].TimeFrom)
	assert.Equal(t, "06:30", stored[0].TimeTo)
	assert.False(t, stored[0].IsFrom2400)
	assert.False(t, stored[0].IsTo2400)
	assert.Equal(t, "DRL", stored[0].MainPhase)
	assert.Equal(t, 6.5, stored[0].DurationHours)

	// The end-of-day flag survives the round trip; without it the stored
	// "00:00" would read back as midnight.
	assert.Equal(t, "00:00", stored[1].TimeTo)
	assert.True(t, stored[1].IsTo2400)
	assert.True(t, stored[1].IsNPT)
}

func TestReplaceEntries_ReplacesExisting(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	err := repo.ReplaceEntries(context.Background(), report.ID, []*TimeLogEntry{
		{LogKind: "full_day", Position: 0, TimeFrom: "00:00", TimeTo: "08:00", DurationHours: 8.0},
		{LogKind: "full_day", Position: 1, TimeFrom: "08:00", TimeTo: "12:00", DurationHours: 4.0},
	})
	require.NoError(t, err)

	err = repo.ReplaceEntries(context.Background(), report.ID, []*TimeLogEntry{
		{LogKind: "full_day", Position: 0, TimeFrom: "00:00", TimeTo: "10:00", DurationHours: 10.0},
	})
	require.NoError(t, err)

	stored, err := repo.ListEntries(context.Background(), report.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "10:00", stored[0].TimeTo)
}

func TestListEntries_Order(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	// Inserted out of position order across both logs
	err := repo.ReplaceEntries(context.Background(), report.ID, []*TimeLogEntry{
		{LogKind: "morning_tour", Position: 1, TimeFrom: "03:00", TimeTo: "06:00", DurationHours: 3.0},
		{LogKind: "full_day", Position: 1, TimeFrom: "12:00", TimeTo: "18:00", DurationHours: 6.0},
		{LogKind: "full_day", Position: 0, TimeFrom: "00:00", TimeTo: "12:00", DurationHours: 12.0},
		{LogKind: "morning_tour", Position: 0, TimeFrom: "00:00", TimeTo: "03:00", DurationHours: 3.0},
	})
	require.NoError(t, err)

	stored, err := repo.ListEntries(context.Background(), report.ID)
	require.NoError(t, err)
	require.Len(t, stored, 4)

	assert.Equal(t, "full_day", stored[0].LogKind)
	assert.Equal(t, 0, stored[0].Position)
	assert.Equal(t, "full_day", stored[1].LogKind)
	assert.Equal(t, 1, stored[1].Position)
	assert.Equal(t, "morning_tour", stored[2].LogKind)
	assert.Equal(t, 0, stored[2].Position)
	assert.Equal(t, "morning_tour", stored[3].LogKind)
	assert.Equal(t, 1, stored[3].Position)
}

func TestListReportRecords(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)

	r1 := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 11))
	r2 := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))
	createTestReport(t, repo, well.ID, 20, testDate(2024, 1, 10))

	records, err := repo.ListReportRecords(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, r2.ID, records[0].ID)
	assert.Equal(t, r1.ID, records[1].ID)
	assert.True(t, testDate(2024, 1, 10).Equal(records[0].ReportDate))
	assert.Equal(t, well.ID, records[0].WellID)
}

func TestGetReportRecordByDate(t *testing.T) {
	repo := setupTestDB(t)

	well := createTestWell(t, repo, "Well A-1", nil)
	report := createTestReport(t, repo, well.ID, 10, testDate(2024, 1, 10))

	record, err := repo.GetReportRecordByDate(context.Background(), 10, testDate(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, report.ID, record.ID)
	assert.Equal(t, report.ReportNumber, record.ReportNumber)
	assert.Equal(t, report.RigDay, record.RigDay)

	_, err = repo.GetReportRecordByDate(context.Background(), 10, testDate(2024, 1, 11))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
