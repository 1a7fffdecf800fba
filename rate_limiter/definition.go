package rate_limiter

import (
	"fmt"

	"golang.org/x/time/rate"
)

// Definition describes a token bucket used to throttle calls to a remote storage service
type Definition struct {
	// the limiter name
	Name string
	// requests per second
	FillRate rate.Limit
	// burst size
	BucketSize int64
}

func (d *Definition) String() string {
	return fmt.Sprintf("%s Limit(/s): %v, Burst: %d", d.Name, d.FillRate, d.BucketSize)
}

func (d *Definition) Validate() []string {
	var validationErrors []string
	if d.Name == "" {
		validationErrors = append(validationErrors, "rate limiter definition must specify a name")
	}
	if d.FillRate <= 0 {
		validationErrors = append(validationErrors, "rate limiter definition must specify a positive fill rate")
	}
	if d.BucketSize <= 0 {
		validationErrors = append(validationErrors, "rate limiter definition must specify a positive bucket size")
	}

	return validationErrors
}
