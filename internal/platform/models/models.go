package models

import "time"

// Property type categories a listing can be classified into.
const (
	PropertyApartment  = "apartment"
	PropertyHouse      = "house"
	PropertyLand       = "land"
	PropertyCommercial = "commercial"
	PropertyOffice     = "office"
	PropertyGarage     = "garage"
	PropertyUnknown    = "unknown"
)

// Seller types.
const (
	SellerAgency  = "Agency"
	SellerPrivate = "Private"
	SellerUnknown = "Unknown"
)

// Notification channels.
const (
	ChannelTelegram = "telegram"
	ChannelLog      = "log"
)

// Unknown is the placeholder for unrecoverable string fields.
const Unknown = "Unknown"

// DefaultTitle is used when no title can be extracted for a listing.
const DefaultTitle = "No title"

// Listing is the canonical listing record every extraction path converges to.
// JSON keys are the wire-level canonical item shape. ID is only set on
// listings loaded from or stored by the storage layer.
type Listing struct {
	ID            int      `json:"-"`
	MonitorID     *int     `json:"-"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	PreviousPrice *float64 `json:"previous_price,omitempty"`
	PriceChanged  bool     `json:"price_changed,omitempty"`
	Currency      string   `json:"currency"`
	URL           string   `json:"url"`
	ImageURL      *string  `json:"image_url"`
	Marketplace   string   `json:"marketplace"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	PropertyType  string   `json:"property_type"`
	AreaSize      *float64 `json:"area_size"`
	Rooms         *int     `json:"rooms"`
	Floor         *string  `json:"floor"`
	SellerName    string   `json:"seller_name"`
	SellerType    string   `json:"seller_type"`
	Condition     string   `json:"condition"`
}

// Filters is the sparse set of constraints a listing must satisfy to be
// returned from a search. Absent fields impose no constraint. JSON keys are
// the wire-level filter parameter keys.
type Filters struct {
	PriceMin     *float64 `json:"price_min,omitempty"`
	PriceMax     *float64 `json:"price_max,omitempty"`
	Location     string   `json:"location,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
	MinArea      *float64 `json:"min_area,omitempty"`
	MaxArea      *float64 `json:"max_area,omitempty"`
	Rooms        *int     `json:"rooms,omitempty"`
}

// Monitor is a saved search checked periodically against its marketplaces.
type Monitor struct {
	ID              int
	Name            string
	Keywords        []string
	Marketplaces    []string
	Filters         Filters
	IntervalMinutes int
	TelegramChatID  *int64
	IsActive        bool
	LastCheckedAt   *time.Time
	CreatedAt       time.Time
}

// PriceChange describes a stored listing whose price moved since it was last seen.
type PriceChange struct {
	Listing       Listing
	PreviousPrice float64
}

// Notification is a message produced for a monitor hit.
type Notification struct {
	ID        int
	MonitorID int
	ListingID *int
	Title     string
	Message   string
	Channel   string
	IsSent    bool
	CreatedAt time.Time
}

// SearchRun records the outcome of a single marketplace search.
type SearchRun struct {
	ID            int
	MonitorID     *int
	Marketplace   string
	Query         string
	ResultCount   int
	IsSuccess     bool
	StatusMessage *string
	CreatedAt     time.Time
}
