package vocab

import (
	"math/rand"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Service owns the word catalog, the user registry and the per-user
// assignment ledger. Methods are safe for concurrent use across users.
type Service struct {
	db  *gorm.DB
	now func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

type Option func(*Service)

// WithClock replaces time.Now. Returned times are converted to UTC.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRandSource makes word selection reproducible.
func WithRandSource(src rand.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.rnd = rand.New(src)
		}
	}
}

func NewService(gdb *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:  gdb,
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timestamps are stored in UTC so that sqlite's textual comparison of
// added_at values orders them correctly.
func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Service) intn(n int) int {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return s.rnd.Intn(n)
}
