package api

import (
	"context"
	"net/http"

	"github.com/amitkrsingh19/parking-client/transport"
)

// Admin covers the station-owner aggregates. Every endpoint operates on the
// station owned by the authenticated admin; there is no station parameter.
type Admin struct {
	t *transport.Client
}

// NewAdmin binds the admin endpoints to t.
func NewAdmin(t *transport.Client) *Admin {
	return &Admin{t: t}
}

// DashboardStats fetches slot, booking, and revenue aggregates.
func (a *Admin) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := a.t.DoJSON(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// Station fetches the owned station.
func (a *Admin) Station(ctx context.Context) (Station, error) {
	var station Station
	if err := a.t.DoJSON(ctx, http.MethodGet, "/admin/station", nil, &station); err != nil {
		return Station{}, err
	}
	return station, nil
}

// StationSlots lists the owned station's slots.
func (a *Admin) StationSlots(ctx context.Context) ([]Slot, error) {
	var slots []Slot
	if err := a.t.DoJSON(ctx, http.MethodGet, "/admin/station/slots", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// StationBookings lists the owned station's bookings.
func (a *Admin) StationBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := a.t.DoJSON(ctx, http.MethodGet, "/admin/station/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
