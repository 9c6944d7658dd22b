package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBMonitor(monitor *models.Monitor) (*pgmodels.Monitor, error) {
	filters, err := json.Marshal(monitor.Filters)
	if err != nil {
		return nil, fmt.Errorf("can't encode monitor filters: %w", err)
	}

	return &pgmodels.Monitor{
		ID:              int32(monitor.ID),
		Name:            monitor.Name,
		Keywords:        toDBList(monitor.Keywords),
		Marketplaces:    toDBList(monitor.Marketplaces),
		Filters:         string(filters),
		IntervalMinutes: int32(monitor.IntervalMinutes),
		TelegramChatID:  monitor.TelegramChatID,
		IsActive:        monitor.IsActive,
		LastCheckedAt:   monitor.LastCheckedAt,
	}, nil
}

func fromDBMonitor(dbMonitor *pgmodels.Monitor) (*models.Monitor, error) {
	var filters models.Filters
	if dbMonitor.Filters != "" {
		if err := json.Unmarshal([]byte(dbMonitor.Filters), &filters); err != nil {
			return nil, fmt.Errorf("can't decode monitor filters: %w", err)
		}
	}

	return &models.Monitor{
		ID:              int(dbMonitor.ID),
		Name:            dbMonitor.Name,
		Keywords:        fromDBList(dbMonitor.Keywords),
		Marketplaces:    fromDBList(dbMonitor.Marketplaces),
		Filters:         filters,
		IntervalMinutes: int(dbMonitor.IntervalMinutes),
		TelegramChatID:  dbMonitor.TelegramChatID,
		IsActive:        dbMonitor.IsActive,
		LastCheckedAt:   dbMonitor.LastCheckedAt,
		CreatedAt:       dbMonitor.CreatedAt,
	}, nil
}

// ToDBListing converts models.Listing into postgres listing model.
func ToDBListing(listing *models.Listing, monitorID int, id *int32) *pgmodels.Listing {
	dbListing := pgmodels.Listing{
		MonitorID:     int32(monitorID),
		Title:         listing.Title,
		Price:         listing.Price,
		PreviousPrice: listing.PreviousPrice,
		PriceChanged:  listing.PriceChanged,
		Currency:      listing.Currency,
		URL:           listing.URL,
		ImageURL:      listing.ImageURL,
		Marketplace:   listing.Marketplace,
		Location:      listing.Location,
		Description:   listing.Description,
		PropertyType:  listing.PropertyType,
		AreaSize:      listing.AreaSize,
		Rooms:         toDBIntPtr(listing.Rooms),
		Floor:         listing.Floor,
		SellerName:    listing.SellerName,
		SellerType:    listing.SellerType,
		Condition:     listing.Condition,
	}

	if id != nil {
		dbListing.ID = *id
	}

	return &dbListing
}

func fromDBListing(dbListing *pgmodels.Listing) models.Listing {
	return models.Listing{
		ID:            int(dbListing.ID),
		MonitorID:     lo.ToPtr(int(dbListing.MonitorID)),
		Title:         dbListing.Title,
		Price:         dbListing.Price,
		PreviousPrice: dbListing.PreviousPrice,
		PriceChanged:  dbListing.PriceChanged,
		Currency:      dbListing.Currency,
		URL:           dbListing.URL,
		ImageURL:      dbListing.ImageURL,
		Marketplace:   dbListing.Marketplace,
		Location:      dbListing.Location,
		Description:   dbListing.Description,
		PropertyType:  dbListing.PropertyType,
		AreaSize:      dbListing.AreaSize,
		Rooms:         fromDBIntPtr(dbListing.Rooms),
		Floor:         dbListing.Floor,
		SellerName:    dbListing.SellerName,
		SellerType:    dbListing.SellerType,
		Condition:     dbListing.Condition,
	}
}

func toDBSearchRun(run *models.SearchRun) *pgmodels.SearchRun {
	return &pgmodels.SearchRun{
		MonitorID:     toDBIntPtr(run.MonitorID),
		Marketplace:   run.Marketplace,
		Query:         run.Query,
		ResultCount:   int32(run.ResultCount),
		IsSuccess:     run.IsSuccess,
		StatusMessage: run.StatusMessage,
	}
}

func fromDBSearchRun(dbRun *pgmodels.SearchRun) models.SearchRun {
	return models.SearchRun{
		ID:            int(dbRun.ID),
		MonitorID:     fromDBIntPtr(dbRun.MonitorID),
		Marketplace:   dbRun.Marketplace,
		Query:         dbRun.Query,
		ResultCount:   int(dbRun.ResultCount),
		IsSuccess:     dbRun.IsSuccess,
		StatusMessage: dbRun.StatusMessage,
		CreatedAt:     dbRun.CreatedAt,
	}
}

func toDBNotification(notification *models.Notification) *pgmodels.Notification {
	return &pgmodels.Notification{
		MonitorID: int32(notification.MonitorID),
		ListingID: toDBIntPtr(notification.ListingID),
		Title:     notification.Title,
		Message:   notification.Message,
		Channel:   notification.Channel,
		IsSent:    notification.IsSent,
	}
}

func fromDBNotification(dbNotification *pgmodels.Notification) models.Notification {
	return models.Notification{
		ID:        int(dbNotification.ID),
		MonitorID: int(dbNotification.MonitorID),
		ListingID: fromDBIntPtr(dbNotification.ListingID),
		Title:     dbNotification.Title,
		Message:   dbNotification.Message,
		Channel:   dbNotification.Channel,
		IsSent:    dbNotification.IsSent,
		CreatedAt: dbNotification.CreatedAt,
	}
}

// toDBList packs a list of values into a single newline separated TEXT column.
func toDBList(values []string) string {
	if len(values) == 0 {
		return ""
	}

	result := strings.Builder{}
	for ix, value := range values {
		if ix == len(values)-1 {
			result.WriteString(value)
			break
		}
		result.WriteString(fmt.Sprintf("%s\n", value))
	}
	return result.String()
}

func fromDBList(values string) []string {
	if values == "" {
		return nil
	}
	return strings.Split(values, "\n")
}

func toDBIntPtr(value *int) *int32 {
	if value == nil {
		return nil
	}
	return lo.ToPtr(int32(*value))
}

func fromDBIntPtr(value *int32) *int {
	if value == nil {
		return nil
	}
	return lo.ToPtr(int(*value))
}
