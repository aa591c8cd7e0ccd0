package newsapi

import (
	"time"

	"github.com/newsapi/client-go/internal/api"
)

// RetryStrategy selects the delay pattern applied to transient failures.
// The zero value never retries.
type RetryStrategy struct {
	kind  api.Strategy
	delay time.Duration
}

// RetryNone disables retries; the first failure is terminal.
func RetryNone() RetryStrategy {
	return RetryStrategy{kind: api.StrategyNone}
}

// RetryConstant waits exactly d before each retry.
func RetryConstant(d time.Duration) RetryStrategy {
	return RetryStrategy{kind: api.StrategyConstant, delay: d}
}

// RetryLinear waits d, 2d, 3d, ... before successive retries.
func RetryLinear(d time.Duration) RetryStrategy {
	return RetryStrategy{kind: api.StrategyLinear, delay: d}
}

// RetryExponential waits base, 2*base, 4*base, ... before successive retries.
func RetryExponential(base time.Duration) RetryStrategy {
	return RetryStrategy{kind: api.StrategyExponential, delay: base}
}
