package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	availabilityRepo "coachdesk/database/repository/availability"
	"coachdesk/models"
	"coachdesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	availabilityCachePrefix = "availability:"
	availabilityCacheTTL    = 5 * time.Minute
)

// DefaultAvailabilityService is the production AvailabilityService backed by
// Mongo with a Redis read-through cache.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache *redis.Client
}

func (s *DefaultAvailabilityService) GetOrCreate(ctx context.Context, orgID string) (*models.Availability, error) {
	logger := utils.GetLogger()

	if cached := s.fromCache(ctx, orgID); cached != nil {
		return cached, nil
	}

	av, err := s.Repo.GetByOrgID(ctx, orgID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to fetch availability: %w", err)
		}

		// First access for this organization: persist the default schedule.
		def := models.DefaultAvailability(orgID)
		if err := s.Repo.Create(ctx, &def); err != nil {
			// A concurrent request may have created it already; re-read.
			existing, readErr := s.Repo.GetByOrgID(ctx, orgID)
			if readErr != nil {
				return nil, fmt.Errorf("failed to create default availability: %w", err)
			}
			av = existing
		} else {
			logger.Info("created default availability", zap.String("orgID", orgID))
			av = &def
		}
	}

	s.toCache(ctx, av)
	return av, nil
}

func (s *DefaultAvailabilityService) Update(ctx context.Context, orgID string, upd models.AvailabilityUpdate) (*models.Availability, error) {
	av, err := s.GetOrCreate(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if upd.WeeklySchedule != nil {
		av.WeeklySchedule = *upd.WeeklySchedule
	}
	if upd.DefaultDuration != nil {
		av.DefaultDuration = *upd.DefaultDuration
	}
	if upd.BufferBetweenCalls != nil {
		av.BufferBetweenCalls = *upd.BufferBetweenCalls
	}
	if upd.Timezone != nil {
		av.Timezone = *upd.Timezone
	}
	if upd.AdvanceBookingDays != nil {
		av.AdvanceBookingDays = *upd.AdvanceBookingDays
	}
	if upd.MinNoticeHours != nil {
		av.MinNoticeHours = *upd.MinNoticeHours
	}
	if upd.SyncExternalBusy != nil {
		av.SyncExternalBusy = *upd.SyncExternalBusy
	}
	if upd.ExternalCalendarURL != nil {
		av.ExternalCalendarURL = *upd.ExternalCalendarURL
	}

	if err := s.Repo.Update(ctx, *av); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}

	s.invalidate(ctx, orgID)
	return s.GetOrCreate(ctx, orgID)
}

func (s *DefaultAvailabilityService) AddBlockedSlot(ctx context.Context, orgID string, slot models.BlockedSlot) (*models.Availability, error) {
	if !slot.End.After(slot.Start) {
		return nil, fmt.Errorf("blocked slot end must be after start")
	}
	if _, err := s.GetOrCreate(ctx, orgID); err != nil {
		return nil, err
	}

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if err := s.Repo.AddBlockedSlot(ctx, orgID, slot); err != nil {
		return nil, fmt.Errorf("failed to add blocked slot: %w", err)
	}

	s.invalidate(ctx, orgID)
	return s.GetOrCreate(ctx, orgID)
}

func (s *DefaultAvailabilityService) RemoveBlockedSlot(ctx context.Context, orgID, blockID string) (*models.Availability, error) {
	if err := s.Repo.RemoveBlockedSlot(ctx, orgID, blockID); err != nil {
		return nil, fmt.Errorf("failed to remove blocked slot: %w", err)
	}

	s.invalidate(ctx, orgID)
	return s.GetOrCreate(ctx, orgID)
}

func (s *DefaultAvailabilityService) fromCache(ctx context.Context, orgID string) *models.Availability {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, availabilityCachePrefix+orgID).Result()
	if err != nil {
		return nil
	}
	var av models.Availability
	if err := json.Unmarshal([]byte(data), &av); err != nil {
		return nil
	}
	return &av
}

func (s *DefaultAvailabilityService) toCache(ctx context.Context, av *models.Availability) {
	if s.Cache == nil || av == nil {
		return
	}
	data, err := json.Marshal(av)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityCachePrefix+av.OrgID, data, availabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("orgID", av.OrgID), zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) invalidate(ctx context.Context, orgID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCachePrefix+orgID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.String("orgID", orgID), zap.Error(err))
	}
}
