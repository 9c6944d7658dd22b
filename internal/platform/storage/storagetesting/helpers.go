package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/model"
	"github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
// It skips the test when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("set DATABASE_URL environment variable to run database tests")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertMonitors is a helper test function to insert monitors.
func InsertMonitors(t *testing.T, exc qrm.Executable, monitors ...pgmodels.Monitor) {
	t.Helper()

	if len(monitors) == 0 {
		return
	}

	toInsert := make([]pgmodels.Monitor, 0, len(monitors))
	toInsert = append(toInsert, monitors...)

	_, err := table.Monitor.INSERT(table.Monitor.AllColumns).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert monitors", err)
	}
}

// InsertListings is a helper test function to insert listings.
func InsertListings(t *testing.T, exc qrm.Executable, listings ...pgmodels.Listing) {
	t.Helper()

	if len(listings) == 0 {
		return
	}

	toInsert := make([]pgmodels.Listing, 0, len(listings))
	toInsert = append(toInsert, listings...)

	_, err := table.Listing.INSERT(table.Listing.AllColumns.Except(table.Listing.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert listings", err)
	}
}

// InsertNotifications is a helper test function to insert notifications.
func InsertNotifications(t *testing.T, exc qrm.Executable, notifications ...pgmodels.Notification) {
	t.Helper()

	if len(notifications) == 0 {
		return
	}

	toInsert := make([]pgmodels.Notification, 0, len(notifications))
	toInsert = append(toInsert, notifications...)

	_, err := table.Notification.INSERT(table.Notification.AllColumns.Except(table.Notification.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert notifications", err)
	}
}

// InsertSearchRuns is a helper test function to insert search runs.
func InsertSearchRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.SearchRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.SearchRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.SearchRun.INSERT(table.SearchRun.AllColumns.Except(table.SearchRun.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert search runs", err)
	}
}

// GetMonitors is a helper test function to get all monitors.
func GetMonitors(t *testing.T, queryable qrm.Queryable) []pgmodels.Monitor {
	t.Helper()

	monitors := []pgmodels.Monitor{}
	err := table.Monitor.SELECT(table.Monitor.AllColumns).
		WHERE(table.Monitor.ID.IS_NOT_NULL()).
		Query(queryable, &monitors)
	if err != nil {
		t.Fatal("can't get monitors", err)
	}

	return monitors
}

// GetListings is a helper test function to get all listings.
func GetListings(t *testing.T, queryable qrm.Queryable) []pgmodels.Listing {
	t.Helper()

	listings := []pgmodels.Listing{}
	err := table.Listing.SELECT(table.Listing.AllColumns).
		WHERE(table.Listing.ID.IS_NOT_NULL()).
		Query(queryable, &listings)
	if err != nil {
		t.Fatal("can't get listings", err)
	}

	return listings
}

// GetNotifications is a helper test function to get all notifications.
func GetNotifications(t *testing.T, queryable qrm.Queryable) []pgmodels.Notification {
	t.Helper()

	notifications := []pgmodels.Notification{}
	err := table.Notification.SELECT(table.Notification.AllColumns).
		WHERE(table.Notification.ID.IS_NOT_NULL()).
		Query(queryable, &notifications)
	if err != nil {
		t.Fatal("can't get notifications", err)
	}

	return notifications
}

// GetSearchRuns is a helper test function to get all search runs.
func GetSearchRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.SearchRun {
	t.Helper()

	runs := []pgmodels.SearchRun{}
	err := table.SearchRun.SELECT(table.SearchRun.AllColumns).
		WHERE(table.SearchRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get search runs", err)
	}

	return runs
}

// CleanupData removes all rows from all tables.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Notification.DELETE().WHERE(table.Notification.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete notifications data", err)
	}

	_, err = table.SearchRun.DELETE().WHERE(table.SearchRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete search runs data", err)
	}

	_, err = table.Listing.DELETE().WHERE(table.Listing.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete listings data", err)
	}

	_, err = table.Monitor.DELETE().WHERE(table.Monitor.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete monitors data", err)
	}
}
