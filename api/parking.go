package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/amitkrsingh19/parking-client/transport"
)

// Parking covers station and slot endpoints.
type Parking struct {
	t *transport.Client
}

// NewParking binds the parking endpoints to t.
func NewParking(t *transport.Client) *Parking {
	return &Parking{t: t}
}

// Stations lists all stations.
func (p *Parking) Stations(ctx context.Context) ([]Station, error) {
	var stations []Station
	if err := p.t.DoJSON(ctx, http.MethodGet, "/parking/stations", nil, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// AddStation creates a station. Admin only; the backend enforces it.
func (p *Parking) AddStation(ctx context.Context, station Station) (Station, error) {
	var created Station
	if err := p.t.DoJSON(ctx, http.MethodPost, "/parking/stations", station, &created); err != nil {
		return Station{}, err
	}
	return created, nil
}

// StationSlots lists the slots of one station.
func (p *Parking) StationSlots(ctx context.Context, stationID string) ([]Slot, error) {
	var slots []Slot
	path := "/parking/stations/" + url.PathEscape(stationID) + "/slots"
	if err := p.t.DoJSON(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// AddSlot creates a slot in a station.
func (p *Parking) AddSlot(ctx context.Context, slot SlotCreate) (Slot, error) {
	var created Slot
	if err := p.t.DoJSON(ctx, http.MethodPost, "/parking/slots", slot, &created); err != nil {
		return Slot{}, err
	}
	return created, nil
}

// ToggleSlot flips a slot's availability.
func (p *Parking) ToggleSlot(ctx context.Context, slotID string) (Slot, error) {
	var updated Slot
	path := "/parking/slots/" + url.PathEscape(slotID) + "/toggle"
	if err := p.t.DoJSON(ctx, http.MethodPatch, path, nil, &updated); err != nil {
		return Slot{}, err
	}
	return updated, nil
}

// UpdateSlot replaces a slot's details.
func (p *Parking) UpdateSlot(ctx context.Context, slotID string, slot SlotCreate) (Slot, error) {
	var updated Slot
	path := "/parking/slots/" + url.PathEscape(slotID)
	if err := p.t.DoJSON(ctx, http.MethodPut, path, slot, &updated); err != nil {
		return Slot{}, err
	}
	return updated, nil
}

// DeleteSlot removes a slot.
func (p *Parking) DeleteSlot(ctx context.Context, slotID string) error {
	path := "/parking/slots/" + url.PathEscape(slotID)
	return p.t.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

// AvailableSlots lists slots currently open for booking.
func (p *Parking) AvailableSlots(ctx context.Context) ([]Slot, error) {
	var slots []Slot
	if err := p.t.DoJSON(ctx, http.MethodPost, "/parking/slots/available", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
