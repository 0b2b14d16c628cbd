package providers

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// DelayRange is the closed interval [Min, Max] of transit delays, drawn in multiples
// of Step above Min. The default 4s..8s in 1s steps matches whole-second transit times.
type DelayRange struct {
	Min  time.Duration
	Max  time.Duration
	Step time.Duration
}

// DefaultDelayRange is used when no range is configured.
func DefaultDelayRange() DelayRange {
	return DelayRange{Min: 4 * time.Second, Max: 8 * time.Second, Step: time.Second}
}

// NewDelayRange validates and builds a DelayRange.
func NewDelayRange(minDelay, maxDelay, step time.Duration) (DelayRange, error) {
	r := DelayRange{Min: minDelay, Max: maxDelay, Step: step}
	if err := r.Validate(); err != nil {
		return DelayRange{}, err
	}
	return r, nil
}

func (r DelayRange) Validate() error {
	if r.Min < 0 {
		return errs.NewValueIsOutOfRangeError("min delay", r.Min, time.Duration(0), r.Max)
	}
	if r.Max < r.Min {
		return errs.NewValueIsInvalidErrorWithCause(
			"delay range is invalid",
			fmt.Errorf("max %s is below min %s", r.Max, r.Min),
		)
	}
	if r.Step <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delay step is invalid", fmt.Errorf("%s is not positive", r.Step))
	}
	return nil
}

// Draw picks a delay uniformly among Min, Min+Step, ... up to Max.
// int64N must return a value in [0, n).
func (r DelayRange) Draw(int64N func(n int64) int64) time.Duration {
	steps := int64((r.Max-r.Min)/r.Step) + 1
	return r.Min + time.Duration(int64N(steps))*r.Step
}
