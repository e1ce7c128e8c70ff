package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/pkg/cms"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type contentFetcher interface {
	GetEntry(ctx context.Context, tenantID, slug string) (*cms.Entry, error)
}

// ContentService serves marketing copy from the headless content service
// through a redis read-through cache. The content service is never mutated
// from here.
type ContentService struct {
	client contentFetcher
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewContentService creates an instance of ContentService. A nil redis client
// disables caching and goes straight to the content service.
func NewContentService(client contentFetcher, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ContentService{client: client, cache: cache, ttl: ttl, logger: logger}
}

// Get returns a content entry for a tenant, cache first.
func (s *ContentService) Get(ctx context.Context, tenantID, slug string) (*cms.Entry, error) {
	if tenantID == "" || slug == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Contenido no identificado")
	}

	cacheKey := fmt.Sprintf("content:%s:%s", tenantID, slug)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var entry cms.Entry
			if err := json.Unmarshal(raw, &entry); err == nil {
				return &entry, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("content cache read failed", zap.Error(err))
		}
	}

	entry, err := s.client.GetEntry(ctx, tenantID, slug)
	if err != nil {
		if errors.Is(err, cms.ErrEntryNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Contenido no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(entry); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("content cache write failed", zap.Error(err))
			}
		}
	}

	return entry, nil
}
