package service

import (
	"context"
	"log"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

const DefaultLeaderboardSize = 10

type LeaderboardService struct {
	Users *repository.UserRepository
	Cache *repository.LeaderboardCache
}

func NewLeaderboardService(users *repository.UserRepository, cache *repository.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{Users: users, Cache: cache}
}

// Top returns the n highest-scoring users, serving from the Redis cache when
// a fresh copy exists. A cache write failure only costs the next request a
// Mongo round trip, so it is logged and swallowed.
func (s *LeaderboardService) Top(ctx context.Context, n int) ([]models.LeaderboardEntry, error) {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	if entries, ok := s.Cache.Get(ctx, n); ok {
		return entries, nil
	}

	entries, err := s.Users.FindTop(ctx, n)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	if err := s.Cache.Set(ctx, n, entries); err != nil {
		log.Printf("failed to cache leaderboard: %v", err)
	}
	return entries, nil
}
