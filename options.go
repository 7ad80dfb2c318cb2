package cubestate

// Option configures Scramble and Tracker behavior.
type Option func(*config)

type config struct {
	base           State
	catalog        *Catalog
	validate       bool
	moveHistory    bool
	phaseDetection bool
}

func defaultConfig() *config {
	return &config{
		base:           Solved,
		validate:       false,
		moveHistory:    true,
		phaseDetection: true,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithBase sets the state a scramble (or tracker) starts from.
// The default is Solved.
func WithBase(s State) Option {
	return func(c *config) {
		c.base = s
	}
}

// WithCatalog supplies a pre-built move catalog.
// Without it, Scramble builds a fresh catalog on every call.
func WithCatalog(cat *Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// WithValidation enables checking the base state with State.Validate
// before any move is applied. Disabled by default.
func WithValidation(enabled bool) Option {
	return func(c *config) {
		c.validate = enabled
	}
}

// WithMoveHistory enables or disables move history tracking in a Tracker.
// When enabled (default), applied moves are kept and Undo is available.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithPhaseDetection enables or disables phase detection in a Tracker.
// When enabled (default), the OnPhaseChange callback fires when a new
// highest phase is reached.
func WithPhaseDetection(enabled bool) Option {
	return func(c *config) {
		c.phaseDetection = enabled
	}
}
