package artifact_source

import (
	"context"

	"github.com/home-energy-audit/energy-import/rate_limiter"
	"github.com/home-energy-audit/energy-import/types"
)

// RateLimitedSource wraps a [Source], delaying remote calls to stay within the limiter's rate
type RateLimitedSource struct {
	Source
	limiter *rate_limiter.APILimiter
}

func NewRateLimitedSource(source Source, limiter *rate_limiter.APILimiter) *RateLimitedSource {
	return &RateLimitedSource{Source: source, limiter: limiter}
}

func (s *RateLimitedSource) ListChildren(ctx context.Context, parentId string) ([]types.RemoteFile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.Source.ListChildren(ctx, parentId)
}

func (s *RateLimitedSource) GetContent(ctx context.Context, id string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return s.Source.GetContent(ctx, id)
}
