package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"arrivals-backend/config"
	"arrivals-backend/internal/ingest"
	"arrivals-backend/internal/model"
	"arrivals-backend/internal/store"
)

const sampleReport = `Room Arrival Report Seite 1
Matchcode 15.03.24
SMITH_JOHN/1234 aa 101(2) bb 15.03.24, 18.03.24, cc
O
210 T(1)
AHMAD_WASEEM_XXD/2521/1 dd 305(1) ee 16.03.24, 20.03.24, ff
98765
`

// TestInboxIngestionLifecycle drops a report file into a temporary inbox,
// runs one scan cycle and verifies the persisted rows plus the archiving of
// the processed file.
func TestInboxIngestionLifecycle(t *testing.T) {
	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	err = testDB.AutoMigrate(&model.Report{}, &model.Guest{}, &model.PushSubscription{})
	require.NoError(t, err)

	// 2. Create a mock configuration with a temporary inbox.
	inboxDir := t.TempDir()
	processedDir := t.TempDir()
	mockConfig := &config.Config{
		Ingest: config.IngestConfig{
			Enabled:      true,
			InboxDir:     inboxDir,
			ProcessedDir: processedDir,
		},
	}
	mockConfig.WorkerPool.Size = 4

	// 3. Drop a report file into the inbox. A non-txt file must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(inboxDir, "arrivals_0315.txt"), []byte(sampleReport), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inboxDir, "notes.pdf"), []byte("binary"), 0o644))

	appStore := store.NewGormStore(testDB)
	svc := ingest.NewService(mockConfig, appStore)

	svc.ScanOnce(context.Background())

	// 4. Verify the persisted report.
	reports, err := appStore.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "arrivals_0315.txt", reports[0].FileName)
	assert.Equal(t, 4, reports[0].GuestCount)

	guests, err := appStore.ListGuests(context.Background(), reports[0].ID)
	require.NoError(t, err)
	require.Len(t, guests, 4)

	// SMITH occupies rooms 101(2) and, via the continuation line, 210 T(1).
	assert.Equal(t, "SMITH", guests[0].LastName)
	assert.Equal(t, "101", guests[0].RoomNumber)
	assert.Equal(t, "SMITH", guests[2].LastName)
	assert.Equal(t, "210 T", guests[2].RoomNumber)
	assert.Equal(t, "AHMAD", guests[3].LastName)
	assert.Equal(t, "XXD/2521/1", guests[3].BookingCode)
	assert.Equal(t, []string{"000", "001", "002", "003"},
		[]string{guests[0].Tag, guests[1].Tag, guests[2].Tag, guests[3].Tag})

	// 5. The report file moved to the processed directory, the pdf stayed.
	_, err = os.Stat(filepath.Join(processedDir, "arrivals_0315.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(inboxDir, "arrivals_0315.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(inboxDir, "notes.pdf"))
	assert.NoError(t, err)
}

// TestInboxScanSkipsUnparsableFiles verifies that a file yielding no guest
// records is reported as an error and left in the inbox.
func TestInboxScanSkipsUnparsableFiles(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()
	require.NoError(t, testDB.AutoMigrate(&model.Report{}, &model.Guest{}, &model.PushSubscription{}))

	inboxDir := t.TempDir()
	mockConfig := &config.Config{
		Ingest: config.IngestConfig{
			Enabled:      true,
			InboxDir:     inboxDir,
			ProcessedDir: t.TempDir(),
		},
	}
	mockConfig.WorkerPool.Size = 1

	require.NoError(t, os.WriteFile(filepath.Join(inboxDir, "noise.txt"), []byte("Arrivals\n12345\n"), 0o644))

	appStore := store.NewGormStore(testDB)
	svc := ingest.NewService(mockConfig, appStore)
	svc.ScanOnce(context.Background())

	reports, err := appStore.ListReports(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reports)

	_, err = os.Stat(filepath.Join(inboxDir, "noise.txt"))
	assert.NoError(t, err, "unparsable files stay in the inbox")
}
