package sampler

// Method-specific defaults. These match the documented defaults of the
// public API: four strata and five clusters unless overridden.
const (
	DefaultStrata   = 4
	DefaultClusters = 5
)

// samplerConfig aggregates the method-specific knobs consumed by Sample.
// It is built fresh per call; Samplers themselves stay configuration-free.
type samplerConfig struct {
	strata     int
	clusters   int
	perCluster int // 0 means derive from n / clusters
}

// newSamplerConfig applies options in order over the defaults
// (last-wins semantics).
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		strata:   DefaultStrata,
		clusters: DefaultClusters,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a single Sample call.
type Option func(*samplerConfig)

// WithStrata sets the stratum count for Stratified sampling.
// Panics on k < 1 to surface programmer error early.
func WithStrata(k int) Option {
	if k < 1 {
		panic("sampler: WithStrata(k<1)")
	}
	return func(c *samplerConfig) { c.strata = k }
}

// WithClusters sets the cluster count for Cluster sampling.
// Panics on k < 1.
func WithClusters(k int) Option {
	if k < 1 {
		panic("sampler: WithClusters(k<1)")
	}
	return func(c *samplerConfig) { c.clusters = k }
}

// WithSamplesPerCluster fixes the draws per cluster for Cluster sampling.
// Without it, each cluster receives max(1, n/clusters) draws.
// Panics on k < 1.
func WithSamplesPerCluster(k int) Option {
	if k < 1 {
		panic("sampler: WithSamplesPerCluster(k<1)")
	}
	return func(c *samplerConfig) { c.perCluster = k }
}
