package draw

import (
	"math/rand"
	"time"
)

// Picker provides the randomness used for dealing cards, drawing scenario
// content and breaking vote ties
type Picker struct {
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Picker{
		random: random,
	}
}

// Intn returns a uniform random index in [0, n)
func (p *Picker) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}
