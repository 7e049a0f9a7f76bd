package discovery

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_advertiser.go github.com/solomonk/bunker/internal/services/discovery Advertiser

// AdvertiseInput contains parameters for announcing a joinable session
type AdvertiseInput struct {
	SessionID int64
	Players   int
	Capacity  int
}

// Advertiser announces joinable sessions to nearby clients. Callers treat
// it as best-effort: a failed announcement never fails the game operation
// that triggered it.
type Advertiser interface {
	// Advertise announces a session, replacing any previous announcement
	Advertise(ctx context.Context, input *AdvertiseInput) error

	// Stop withdraws a session's announcement
	Stop(ctx context.Context, sessionID int64) error
}
