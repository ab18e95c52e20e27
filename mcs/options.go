package mcs

import (
	"time"

	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/op/go-logging"
)

// Options configures a Solve call. Build it with NewOptions and the With*
// functional options below, following core.GraphOption's func(*T) idiom.
type Options struct {
	heuristic       mcsdomain.Heuristic
	connected       bool
	bigFirst        bool
	threads         int
	timeout         time.Duration
	axisPermutation []int
	logger          *logging.Logger
}

// Option configures an Options under construction.
type Option func(*Options)

// WithHeuristic selects the statistic SelectMultiDomain minimises when
// choosing the next domain to branch on. Default: HeuristicMinMax.
func WithHeuristic(h mcsdomain.Heuristic) Option {
	return func(o *Options) { o.heuristic = h }
}

// WithConnected restricts branching to domains adjacent to the current
// partial mapping once it is non-empty.
func WithConnected(connected bool) Option {
	return func(o *Options) { o.connected = connected }
}

// WithBigFirst runs the §4.7 big-first outer loop: goal descends from the
// first input graph's vertex count down to 1, stopping at the first
// goal actually reached or on abort, instead of searching once with
// target 1.
func WithBigFirst(bigFirst bool) Option {
	return func(o *Options) { o.bigFirst = bigFirst }
}

// WithThreads sets the total thread count N of the §5 concurrency model:
// the calling goroutine plus N-1 helper-pool workers. 0 or 1 disables the
// pool and runs the sequential kernel only.
func WithThreads(n int) Option {
	return func(o *Options) { o.threads = n }
}

// WithTimeout bounds the whole search's wall-clock; 0 disables the
// deadline. On expiry the best incumbent found so far is returned with
// Stats.TimedOut set, never as an error.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.timeout = d }
}

// WithAxisPermutation overrides the graph-axis visiting order the kernel
// uses within a selected domain (default: identity 0..K-1). perm must be a
// permutation of 0..K-1.
func WithAxisPermutation(perm []int) Option {
	return func(o *Options) { o.axisPermutation = append([]int(nil), perm...) }
}

// WithLogger attaches a logger the search kernel uses for DEBUG-level
// recursion-entry tracing (see mcslog.NewLogger). Default nil disables it.
func WithLogger(logger *logging.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// NewOptions builds an Options from the given functional options, applying
// defaults first and validating the result (§7 "Configuration errors"): a
// negative thread count, a negative timeout, or an axis permutation that
// is not a permutation of 0..k-1 returns the matching sentinel unwrapped.
// No combination of options is rejected as mutually exclusive.
func NewOptions(k int, opts ...Option) (Options, error) {
	o := Options{
		heuristic: mcsdomain.HeuristicMinMax,
		threads:   0,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.threads < 0 {
		return Options{}, ErrInvalidThreads
	}
	if o.timeout < 0 {
		return Options{}, ErrInvalidTimeout
	}
	if o.axisPermutation != nil {
		if err := validatePermutation(o.axisPermutation, k); err != nil {
			return Options{}, err
		}
	}

	return o, nil
}

func validatePermutation(perm []int, k int) error {
	if len(perm) != k {
		return ErrAxisPermutationSize
	}
	seen := make([]bool, k)
	for _, v := range perm {
		if v < 0 || v >= k || seen[v] {
			return ErrAxisPermutationSize
		}
		seen[v] = true
	}

	return nil
}
