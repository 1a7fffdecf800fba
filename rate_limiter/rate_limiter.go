package rate_limiter

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// APILimiter throttles remote calls - it only ever delays a call, it never retries one
type APILimiter struct {
	Name string

	// underlying rate limiter
	limiter *rate.Limiter
}

func NewAPILimiter(l *Definition) *APILimiter {
	res := &APILimiter{
		Name: l.Name,
	}
	if l.FillRate != 0 {
		res.limiter = rate.NewLimiter(l.FillRate, int(l.BucketSize))
	}
	return res
}

func (l *APILimiter) String() string {
	if l.limiter == nil {
		return fmt.Sprintf("%s: unlimited", l.Name)
	}
	return fmt.Sprintf("%s: Limit(/s): %v, Burst: %d", l.Name, l.limiter.Limit(), l.limiter.Burst())
}

// Wait blocks until the limiter allows another call, or the context is done
func (l *APILimiter) Wait(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
