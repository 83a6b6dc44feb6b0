package api

import "time"

// Token is the login response: the signed credential and its scheme.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest creates a user account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// The user service spells this field "nme".
	Name string `json:"nme"`
}

// Profile is the authenticated user's account record.
type Profile struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nme"`
	Role  string `json:"role"`
}

// Station is a parking station.
type Station struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	Location    string `json:"location"`
	TotalSlots  int    `json:"total_slots"`
}

// Slot is a parking slot within a station.
type Slot struct {
	SlotID          string `json:"slot_id"`
	StationID       string `json:"station_id"`
	IsAvailable     bool   `json:"is_available"`
	ChargingSupport bool   `json:"charging_support"`
}

// SlotCreate creates or updates a slot.
type SlotCreate struct {
	StationID       string `json:"station_id"`
	SlotID          string `json:"slot_id"`
	IsAvailable     bool   `json:"is_available"`
	PricePerHour    int    `json:"price_per_hour"`
	ChargingSupport bool   `json:"charging_support"`
}

// BookingRequest reserves a slot for a duration in hours.
type BookingRequest struct {
	StationID string `json:"station_id"`
	SlotID    string `json:"slot_id"`
	Duration  int    `json:"duration"`
}

// Booking is a confirmed reservation as priced by the backend.
type Booking struct {
	StationID string    `json:"station_id"`
	SlotID    string    `json:"slot_id"`
	Duration  int       `json:"duration"`
	Price     int       `json:"price"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// SlotStats counts a station's slots by availability.
type SlotStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

// BookingStats counts a station's bookings by time window.
type BookingStats struct {
	Past     int `json:"past"`
	Upcoming int `json:"upcoming"`
	Active   int `json:"active"`
}

// DashboardStats is the admin dashboard aggregate for the owned station.
type DashboardStats struct {
	StationID string       `json:"station_id"`
	Slots     SlotStats    `json:"slots"`
	Bookings  BookingStats `json:"bookings"`
	Revenue   float64      `json:"revenue"`
}
