package discovery

import (
	"context"
	"log"
)

// NopAdvertiser logs announcements without broadcasting them anywhere.
// It stands in when no LAN discovery backend is configured.
type NopAdvertiser struct{}

// NewNop creates an advertiser that only logs
func NewNop() *NopAdvertiser {
	return &NopAdvertiser{}
}

// Advertise logs the announcement
func (a *NopAdvertiser) Advertise(_ context.Context, input *AdvertiseInput) error {
	log.Printf("discovery: session %d open (%d/%d players)", input.SessionID, input.Players, input.Capacity)
	return nil
}

// Stop logs the withdrawal
func (a *NopAdvertiser) Stop(_ context.Context, sessionID int64) error {
	log.Printf("discovery: session %d no longer advertised", sessionID)
	return nil
}
