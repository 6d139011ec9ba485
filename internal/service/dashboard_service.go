package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/repository"
	"faculty-schedule/backend/pkg/redis"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
	recentEntryLimit  = 5
)

// DashboardService — admin dashboard aggregates, cached in Redis for a
// short TTL. Schedule writes invalidate the cache; without Redis every
// request computes from the database.
type DashboardService struct {
	repo   *repository.Repository
	redis  *redis.Client
	logger *zap.Logger
}

func NewDashboardService(repo *repository.Repository, redisClient *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{repo: repo, redis: redisClient, logger: logger}
}

// GetStats returns entity counts, the latest entries and per-teacher
// weekly hours sorted descending.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.redis != nil {
		if cached, err := s.redis.GetCached(ctx, dashboardCacheKey); err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		} else if cached != "" {
			var stats dto.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.redis.SetCached(ctx, dashboardCacheKey, string(payload), dashboardCacheTTL); err != nil {
				s.logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached stats after a schedule write.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.InvalidateCached(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func (s *DashboardService) computeStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.DepartmentCount, err = s.repo.Department.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TeacherCount, err = s.repo.Teacher.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RoomCount, err = s.repo.Room.Count(ctx); err != nil {
		return nil, err
	}
	if stats.EntryCount, err = s.repo.Schedule.Count(ctx); err != nil {
		return nil, err
	}

	recent, err := s.repo.Schedule.ListRecent(ctx, recentEntryLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentEntries = make([]dto.ScheduleEntryResponse, 0, len(recent))
	for i := range recent {
		stats.RecentEntries = append(stats.RecentEntries, toScheduleEntryResponse(&recent[i]))
	}

	entries, err := s.repo.Schedule.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	hoursByTeacher := make(map[uint]*dto.TeacherHours)
	for i := range entries {
		e := &entries[i]
		th, ok := hoursByTeacher[e.TeacherID]
		if !ok {
			name := ""
			if e.Teacher != nil {
				name = e.Teacher.FullName()
			}
			th = &dto.TeacherHours{TeacherID: e.TeacherID, Name: name}
			hoursByTeacher[e.TeacherID] = th
		}
		th.Hours += entryHours(e)
	}
	stats.TeacherHours = make([]dto.TeacherHours, 0, len(hoursByTeacher))
	for _, th := range hoursByTeacher {
		stats.TeacherHours = append(stats.TeacherHours, *th)
	}
	sort.Slice(stats.TeacherHours, func(i, j int) bool {
		if stats.TeacherHours[i].Hours != stats.TeacherHours[j].Hours {
			return stats.TeacherHours[i].Hours > stats.TeacherHours[j].Hours
		}
		return stats.TeacherHours[i].TeacherID < stats.TeacherHours[j].TeacherID
	})

	return stats, nil
}
