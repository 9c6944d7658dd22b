package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/marketradar-pl/marketradar/internal/platform"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for monitors, listings, search runs and notifications.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// CreateMonitor inserts new monitor and sets its ID and creation time.
func (p Postgres) CreateMonitor(ctx context.Context, monitor *models.Monitor) error {
	newMonitor, err := toDBMonitor(monitor)
	if err != nil {
		return fmt.Errorf("can't convert monitor: %w", err)
	}

	err = table.Monitor.INSERT(table.Monitor.AllColumns.Except(table.Monitor.ID, table.Monitor.CreatedAt)).
		MODEL(newMonitor).
		RETURNING(table.Monitor.ID, table.Monitor.CreatedAt).
		QueryContext(ctx, p.db, newMonitor)
	if err != nil {
		return fmt.Errorf("can't insert monitor into database: %w", err)
	}

	monitor.ID = int(newMonitor.ID)
	monitor.CreatedAt = newMonitor.CreatedAt

	return nil
}

// GetMonitor returns monitor by its ID.
// It returns ErrMonitorNotFound if monitor doesn't exist.
func (p Postgres) GetMonitor(ctx context.Context, id int) (*models.Monitor, error) {
	var dbMonitor pgmodels.Monitor
	err := table.Monitor.SELECT(table.Monitor.AllColumns).
		WHERE(table.Monitor.ID.EQ(pg.Int32(int32(id)))).
		QueryContext(ctx, p.db, &dbMonitor)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrMonitorNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get monitor from database: %w", err)
	}

	return fromDBMonitor(&dbMonitor)
}

// ListMonitors returns all monitors ordered by ID.
func (p Postgres) ListMonitors(ctx context.Context) ([]models.Monitor, error) {
	dbMonitors := []pgmodels.Monitor{}
	err := table.Monitor.SELECT(table.Monitor.AllColumns).
		ORDER_BY(table.Monitor.ID.ASC()).
		QueryContext(ctx, p.db, &dbMonitors)
	if err != nil {
		return nil, fmt.Errorf("can't get monitors from database: %w", err)
	}

	monitors := make([]models.Monitor, 0, len(dbMonitors))
	for ix := range dbMonitors {
		monitor, err := fromDBMonitor(&dbMonitors[ix])
		if err != nil {
			return nil, err
		}
		monitors = append(monitors, *monitor)
	}

	return monitors, nil
}

// UpdateMonitor updates all mutable monitor fields.
// It returns ErrMonitorNotFound if monitor doesn't exist.
func (p Postgres) UpdateMonitor(ctx context.Context, monitor *models.Monitor) error {
	dbMonitor, err := toDBMonitor(monitor)
	if err != nil {
		return fmt.Errorf("can't convert monitor: %w", err)
	}

	columnList := table.Monitor.AllColumns.Except(table.Monitor.ID, table.Monitor.CreatedAt)

	result, err := table.Monitor.UPDATE(columnList).
		MODEL(dbMonitor).
		WHERE(table.Monitor.ID.EQ(pg.Int32(int32(monitor.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update monitor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update monitor: %w", err)
	}
	if rowsAffected == 0 {
		return platform.ErrMonitorNotFound
	}

	return nil
}

// DeleteMonitor deletes monitor with its listings and notifications.
// It returns ErrMonitorNotFound if monitor doesn't exist.
func (p Postgres) DeleteMonitor(ctx context.Context, id int) error {
	result, err := table.Monitor.DELETE().
		WHERE(table.Monitor.ID.EQ(pg.Int32(int32(id)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete monitor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't delete monitor: %w", err)
	}
	if rowsAffected == 0 {
		return platform.ErrMonitorNotFound
	}

	return nil
}

// ListDueMonitors returns active monitors whose check interval elapsed at the given time.
func (p Postgres) ListDueMonitors(ctx context.Context, now time.Time) ([]models.Monitor, error) {
	dbMonitors := []pgmodels.Monitor{}
	err := table.Monitor.SELECT(table.Monitor.AllColumns).
		WHERE(table.Monitor.IsActive.IS_TRUE()).
		ORDER_BY(table.Monitor.ID.ASC()).
		QueryContext(ctx, p.db, &dbMonitors)
	if err != nil {
		return nil, fmt.Errorf("can't get monitors from database: %w", err)
	}

	monitors := make([]models.Monitor, 0, len(dbMonitors))
	for ix := range dbMonitors {
		if !monitorDue(&dbMonitors[ix], now) {
			continue
		}
		monitor, err := fromDBMonitor(&dbMonitors[ix])
		if err != nil {
			return nil, err
		}
		monitors = append(monitors, *monitor)
	}

	return monitors, nil
}

// SetMonitorChecked updates monitor's last check time.
// It returns ErrMonitorNotFound if monitor doesn't exist.
func (p Postgres) SetMonitorChecked(ctx context.Context, id int, checkedAt time.Time) error {
	result, err := table.Monitor.UPDATE().
		SET(
			table.Monitor.LastCheckedAt.SET(pg.TimestampzT(checkedAt)),
		).
		WHERE(table.Monitor.ID.EQ(pg.Int32(int32(id)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update monitor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update monitor: %w", err)
	}
	if rowsAffected == 0 {
		return platform.ErrMonitorNotFound
	}

	return nil
}

// UpsertListings stores search results of a monitor, updating listings already
// seen by URL. It returns listings stored for the first time and listings whose
// price moved since the previous check.
func (p Postgres) UpsertListings(
	ctx context.Context,
	monitorID int,
	listings []models.Listing,
) ([]models.Listing, []models.PriceChange, error) {
	var (
		created      []models.Listing
		priceChanged []models.PriceChange
	)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		unique := lo.UniqBy(listings, func(listing models.Listing) string {
			return listing.URL
		})

		urls := lo.Map(unique, func(_ models.Listing, ix int) string {
			return unique[ix].URL
		})
		stored, err := getStoredListings(ctx, tx, int32(monitorID), urls)
		if err != nil {
			return fmt.Errorf("can't get existing listings: %w", err)
		}

		newListings, changedListings := compareListings(unique, stored)

		ids, err := upsertListings(ctx, tx, unique, stored, int32(monitorID))
		if err != nil {
			return err
		}

		for ix := range newListings {
			newListings[ix].ID = int(ids[newListings[ix].URL])
			newListings[ix].MonitorID = lo.ToPtr(monitorID)
		}
		for ix := range changedListings {
			changedListings[ix].Listing.ID = int(ids[changedListings[ix].Listing.URL])
			changedListings[ix].Listing.MonitorID = lo.ToPtr(monitorID)
		}

		created = newListings
		priceChanged = changedListings

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return created, priceChanged, nil
}

// ListListings returns monitor's listings ordered from the most recently seen.
func (p Postgres) ListListings(ctx context.Context, monitorID int) ([]models.Listing, error) {
	dbListings := []pgmodels.Listing{}
	err := table.Listing.SELECT(table.Listing.AllColumns).
		WHERE(table.Listing.MonitorID.EQ(pg.Int32(int32(monitorID)))).
		ORDER_BY(table.Listing.LastSeenAt.DESC(), table.Listing.ID.ASC()).
		QueryContext(ctx, p.db, &dbListings)
	if err != nil {
		return nil, fmt.Errorf("can't get listings from database: %w", err)
	}

	listings := make([]models.Listing, 0, len(dbListings))
	for ix := range dbListings {
		listings = append(listings, fromDBListing(&dbListings[ix]))
	}

	return listings, nil
}

// SaveSearchRun stores the outcome of a single marketplace search and sets run's ID.
func (p Postgres) SaveSearchRun(ctx context.Context, run *models.SearchRun) error {
	newRun := toDBSearchRun(run)
	err := table.SearchRun.INSERT(table.SearchRun.AllColumns.Except(table.SearchRun.ID, table.SearchRun.CreatedAt)).
		MODEL(newRun).
		RETURNING(table.SearchRun.ID).
		QueryContext(ctx, p.db, newRun)
	if err != nil {
		return fmt.Errorf("can't insert search run into database: %w", err)
	}

	run.ID = int(newRun.ID)

	return nil
}

// ListSearchRuns returns monitor's search runs, most recent first.
func (p Postgres) ListSearchRuns(ctx context.Context, monitorID int) ([]models.SearchRun, error) {
	dbRuns := []pgmodels.SearchRun{}
	err := table.SearchRun.SELECT(table.SearchRun.AllColumns).
		WHERE(table.SearchRun.MonitorID.EQ(pg.Int32(int32(monitorID)))).
		ORDER_BY(table.SearchRun.CreatedAt.DESC(), table.SearchRun.ID.DESC()).
		QueryContext(ctx, p.db, &dbRuns)
	if err != nil {
		return nil, fmt.Errorf("can't get search runs from database: %w", err)
	}

	runs := make([]models.SearchRun, 0, len(dbRuns))
	for ix := range dbRuns {
		runs = append(runs, fromDBSearchRun(&dbRuns[ix]))
	}

	return runs, nil
}

// SaveNotifications stores notifications and returns them with IDs and creation times set.
func (p Postgres) SaveNotifications(ctx context.Context, notifications []models.Notification) ([]models.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	dbNotifications := make([]pgmodels.Notification, 0, len(notifications))
	for ix := range notifications {
		dbNotifications = append(dbNotifications, *toDBNotification(&notifications[ix]))
	}

	saved := []pgmodels.Notification{}
	err := table.Notification.INSERT(table.Notification.AllColumns.Except(table.Notification.ID, table.Notification.CreatedAt)).
		MODELS(dbNotifications).
		RETURNING(table.Notification.AllColumns).
		QueryContext(ctx, p.db, &saved)
	if err != nil {
		return nil, fmt.Errorf("can't insert notifications into database: %w", err)
	}

	result := make([]models.Notification, 0, len(saved))
	for ix := range saved {
		result = append(result, fromDBNotification(&saved[ix]))
	}

	return result, nil
}

// MarkNotificationsSent flags notifications as delivered.
func (p Postgres) MarkNotificationsSent(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	idExpressions := make([]pg.Expression, 0, len(ids))
	for _, id := range ids {
		idExpressions = append(idExpressions, pg.Int32(int32(id)))
	}

	_, err := table.Notification.UPDATE().
		SET(
			table.Notification.IsSent.SET(pg.Bool(true)),
		).
		WHERE(table.Notification.ID.IN(idExpressions...)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update notifications: %w", err)
	}

	return nil
}

// ListNotifications returns monitor's notifications, most recent first.
func (p Postgres) ListNotifications(ctx context.Context, monitorID int) ([]models.Notification, error) {
	dbNotifications := []pgmodels.Notification{}
	err := table.Notification.SELECT(table.Notification.AllColumns).
		WHERE(table.Notification.MonitorID.EQ(pg.Int32(int32(monitorID)))).
		ORDER_BY(table.Notification.CreatedAt.DESC(), table.Notification.ID.DESC()).
		QueryContext(ctx, p.db, &dbNotifications)
	if err != nil {
		return nil, fmt.Errorf("can't get notifications from database: %w", err)
	}

	notifications := make([]models.Notification, 0, len(dbNotifications))
	for ix := range dbNotifications {
		notifications = append(notifications, fromDBNotification(&dbNotifications[ix]))
	}

	return notifications, nil
}

func compareListings(parsed []models.Listing, stored map[string]pgmodels.Listing) ([]models.Listing, []models.PriceChange) {
	newListings := make([]models.Listing, 0, len(parsed))
	priceChanged := lo.FilterMap(parsed, func(_ models.Listing, ix int) (models.PriceChange, bool) {
		storedListing, ok := stored[parsed[ix].URL]
		if !ok {
			newListings = append(newListings, parsed[ix])
			return models.PriceChange{}, false
		}
		if parsed[ix].Price == storedListing.Price {
			return models.PriceChange{}, false
		}
		return models.PriceChange{Listing: parsed[ix], PreviousPrice: storedListing.Price}, true
	})

	return newListings, priceChanged
}

func upsertListings(
	ctx context.Context,
	db qrm.DB,
	listings []models.Listing,
	stored map[string]pgmodels.Listing,
	monitorID int32,
) (map[string]int32, error) {
	if len(listings) == 0 {
		return map[string]int32{}, nil
	}

	columnList := table.Listing.AllColumns.Except(table.Listing.ID, table.Listing.LastSeenAt, table.Listing.CreatedAt)

	dbListings := make([]pgmodels.Listing, 0, len(listings))
	for ix := range listings {
		dbListing := ToDBListing(&listings[ix], int(monitorID), nil)
		if storedListing, ok := stored[listings[ix].URL]; ok {
			if storedListing.Price == listings[ix].Price {
				dbListing.PreviousPrice = storedListing.PreviousPrice
				dbListing.PriceChanged = storedListing.PriceChanged
			} else {
				dbListing.PreviousPrice = lo.ToPtr(storedListing.Price)
				dbListing.PriceChanged = true
			}
		}
		dbListings = append(dbListings, *dbListing)
	}

	excludedExpressions := make([]pg.Expression, 0, len(columnList)) // converting to expression
	for _, col := range table.Listing.EXCLUDED.AllColumns.Except(table.Listing.ID, table.Listing.LastSeenAt, table.Listing.CreatedAt) {
		excludedExpressions = append(excludedExpressions, col)
	}

	_, err := table.Listing.INSERT(columnList).
		MODELS(dbListings).
		ON_CONFLICT(table.Listing.MonitorID, table.Listing.URL).
		DO_UPDATE(
			pg.SET(
				columnList.SET(pg.ROW(excludedExpressions...)),
				table.Listing.LastSeenAt.SET(pg.TimestampzT(time.Now())),
			),
		).
		ExecContext(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("can't upsert listings into database: %w", err)
	}

	urls := make([]pg.Expression, 0, len(listings))
	for ix := range listings {
		urls = append(urls, pg.String(listings[ix].URL))
	}

	upsertedIDs := make([]pgmodels.Listing, 0, len(listings))
	err = table.Listing.SELECT(table.Listing.ID, table.Listing.URL).
		WHERE(pg.AND(
			table.Listing.MonitorID.EQ(pg.Int32(monitorID)),
			table.Listing.URL.IN(urls...),
		)).
		QueryContext(ctx, db, &upsertedIDs)
	if err != nil {
		return nil, fmt.Errorf("can't get upserted listings ids: %w", err)
	}

	ids := make(map[string]int32, len(upsertedIDs))
	for ix := range upsertedIDs {
		ids[upsertedIDs[ix].URL] = upsertedIDs[ix].ID
	}

	return ids, nil
}

func getStoredListings(ctx context.Context, db qrm.DB, monitorID int32, urls []string) (map[string]pgmodels.Listing, error) {
	if len(urls) == 0 {
		return map[string]pgmodels.Listing{}, nil
	}

	urlExpressions := make([]pg.Expression, 0, len(urls))
	for ix := range urls {
		urlExpressions = append(urlExpressions, pg.String(urls[ix]))
	}

	listings := make([]pgmodels.Listing, 0, len(urls))
	err := table.Listing.SELECT(
		table.Listing.URL,
		table.Listing.Price,
		table.Listing.PreviousPrice,
		table.Listing.PriceChanged,
	).
		WHERE(pg.AND(
			table.Listing.MonitorID.EQ(pg.Int32(monitorID)),
			table.Listing.URL.IN(urlExpressions...),
		)).
		QueryContext(ctx, db, &listings)
	if err != nil {
		return nil, err
	}

	result := make(map[string]pgmodels.Listing, len(listings))
	for ix := range listings {
		result[listings[ix].URL] = listings[ix]
	}

	return result, nil
}

func monitorDue(monitor *pgmodels.Monitor, now time.Time) bool {
	if monitor.LastCheckedAt == nil {
		return true
	}
	interval := time.Duration(monitor.IntervalMinutes) * time.Minute
	return !now.Before(monitor.LastCheckedAt.Add(interval))
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
