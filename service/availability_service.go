package services

import (
	"context"

	"dp-server/dao/redis"
	"dp-server/models"
)

// AvailabilityProvider supplies the calendar context for one request: the
// partner's shareable busy intervals and the requester's preference record.
type AvailabilityProvider interface {
	GetAvailability(ctx context.Context, relationshipID, requesterID string) (*models.Availability, error)
}

// CalendarAvailabilityService reads calendar context through the Redis DAO.
// The DAO already guarantees only shareable intervals come back; this layer
// does not re-filter.
type CalendarAvailabilityService struct {
	calendarDao *redis.RedisCalendarDAO
}

// NewCalendarAvailabilityService constructs the service with its DAO dependency.
func NewCalendarAvailabilityService(calendarDao *redis.RedisCalendarDAO) *CalendarAvailabilityService {
	return &CalendarAvailabilityService{calendarDao: calendarDao}
}

func (s *CalendarAvailabilityService) GetAvailability(ctx context.Context, relationshipID, requesterID string) (*models.Availability, error) {
	busy, err := s.calendarDao.GetPartnerBusyIntervals(relationshipID, requesterID)
	if err != nil {
		return nil, err
	}

	pref, err := s.calendarDao.GetDayTimePreference(requesterID)
	if err != nil {
		return nil, err
	}

	return &models.Availability{
		BusyIntervals: busy,
		Preferences:   pref,
	}, nil
}
