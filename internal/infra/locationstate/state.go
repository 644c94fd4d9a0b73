// Package locationstate keeps the client's location permission and last position in memory.
package locationstate

import (
	"sync"
	"time"

	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/service"
)

type state struct {
	mu      sync.RWMutex
	current entity.UserLocation
	now     func() time.Time
}

// New returns a LocationContext that starts in the not-determined state.
func New() service.LocationContext {
	return &state{
		current: entity.UserLocation{Permission: entity.LocationPermissionNotDetermined},
		now:     time.Now,
	}
}

// Update stores the permission. The position is kept only while the permission
// is authorized; revoking permission forgets it.
func (s *state) Update(permission entity.LocationPermission, coordinate *entity.Coordinate) entity.UserLocation {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := entity.UserLocation{
		Permission: permission,
		ReportedAt: s.now(),
	}
	if permission.Authorized() {
		switch {
		case coordinate != nil:
			c := *coordinate
			next.Coordinate = &c
		case s.current.Coordinate != nil:
			next.Coordinate = s.current.Coordinate
		}
	}
	s.current = next

	return s.current
}

func (s *state) Current() entity.UserLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}
