package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/amitkrsingh19/parking-client/transport"
)

// Bookings covers the reservation endpoints.
type Bookings struct {
	t *transport.Client
}

// NewBookings binds the booking endpoints to t.
func NewBookings(t *transport.Client) *Bookings {
	return &Bookings{t: t}
}

// Create reserves a slot; the backend computes price and time window.
func (b *Bookings) Create(ctx context.Context, req BookingRequest) (Booking, error) {
	var booking Booking
	if err := b.t.DoJSON(ctx, http.MethodPost, "/booking/create", req, &booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}

// ForUser lists the authenticated user's bookings.
func (b *Bookings) ForUser(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := b.t.DoJSON(ctx, http.MethodGet, "/booking/user", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ForStation lists a station's bookings. Admin only; the backend enforces it.
func (b *Bookings) ForStation(ctx context.Context, stationID string) ([]Booking, error) {
	var bookings []Booking
	path := "/booking/station/" + url.PathEscape(stationID)
	if err := b.t.DoJSON(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel cancels a booking.
func (b *Bookings) Cancel(ctx context.Context, bookingID string) error {
	path := "/booking/" + url.PathEscape(bookingID) + "/cancel"
	return b.t.DoJSON(ctx, http.MethodPatch, path, nil, nil)
}

// Details fetches one booking.
func (b *Bookings) Details(ctx context.Context, bookingID string) (Booking, error) {
	var booking Booking
	path := "/booking/" + url.PathEscape(bookingID)
	if err := b.t.DoJSON(ctx, http.MethodGet, path, nil, &booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}
