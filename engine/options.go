package engine

import (
	"github.com/corvid-games/waymesh/oracle"
	"github.com/corvid-games/waymesh/wlog"
)

type config struct {
	logger      *wlog.Logger
	logLevel    wlog.Level
	fwVariant   oracle.FWVariant
	workerCount int
}

func newConfig() *config {
	return &config{
		logger:    wlog.New(wlog.LevelWarning),
		logLevel:  wlog.LevelWarning,
		fwVariant: oracle.Legacy,
	}
}

// Option customizes an Engine at construction time.
type Option func(*config)

// WithLogger installs a caller-supplied logger, overriding the default
// stderr logger. Panics on nil to fail fast on programmer error, matching
// builder.BuilderOption's validate-and-panic convention.
func WithLogger(l *wlog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithLogLevel sets the engine's log verbosity (none/err/warning/info/debug).
func WithLogLevel(level wlog.Level) Option {
	return func(c *config) { c.logLevel = level }
}

// WithFloydWarshallVariant selects which Generate/RebuildPaths strategy
// the engine's DistanceOracle uses (legacy/optimized_simd/optimized_parallel).
func WithFloydWarshallVariant(v oracle.FWVariant) Option {
	return func(c *config) { c.fwVariant = v }
}

// WithWorkerCount bounds the goroutine count of the Parallel Floyd-Warshall
// variant. Ignored by Legacy and SIMDWidth4.
func WithWorkerCount(n int) Option {
	return func(c *config) { c.workerCount = n }
}
