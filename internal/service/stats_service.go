package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const statsCacheKey = "mooc:stats:platform"

// StatsService serves the aggregate dashboards shared by admins and
// analysts. Platform counts are cached in Redis to keep dashboard reloads
// off the database.
type StatsService struct {
	reportRepo *repository.ReportRepository
	rdb        *redis.Client
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(reportRepo *repository.ReportRepository, rdb *redis.Client, cacheTTL time.Duration) *StatsService {
	return &StatsService{
		reportRepo: reportRepo,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		log:        log.With().Str("component", "stats_service").Logger(),
	}
}

// Platform returns the entity-count snapshot, serving from cache when the
// cached copy is still fresh. Cache failures degrade to a direct query.
func (s *StatsService) Platform(ctx context.Context) (*repository.PlatformStats, error) {
	if cached, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
		stats := &repository.PlatformStats{}
		if err := json.Unmarshal(cached, stats); err == nil {
			return stats, nil
		}
		s.log.Warn().Msg("Discarding malformed cached platform stats")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("Stats cache read failed, querying database")
	}

	stats, err := s.reportRepo.PlatformStats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Stats cache write failed")
		}
	}

	return stats, nil
}

// CourseEnrollment returns the per-course enrollment and performance
// report. It is always computed fresh.
func (s *StatsService) CourseEnrollment(ctx context.Context) ([]repository.CourseEnrollmentRow, error) {
	return s.reportRepo.CourseEnrollment(ctx)
}
