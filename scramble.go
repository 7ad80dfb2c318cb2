package cubestate

import (
	"fmt"
	"strings"
)

// Scramble applies a whitespace-separated move sequence such as
// "R U R' U'" and returns the resulting state.
//
// An empty or blank notation returns the base state. An unknown token
// aborts the whole scramble: no state is returned for it.
func Scramble(notation string, opts ...Option) (State, error) {
	cfg := applyOptions(opts)

	if cfg.validate {
		if err := cfg.base.Validate(); err != nil {
			return State{}, fmt.Errorf("base state: %w", err)
		}
	}

	tokens := strings.Fields(notation)
	if len(tokens) == 0 {
		return cfg.base, nil
	}

	catalog := cfg.catalog
	if catalog == nil {
		catalog = NewCatalog()
	}

	state := cfg.base
	for i, tok := range tokens {
		delta, err := catalog.Lookup(tok)
		if err != nil {
			return State{}, fmt.Errorf("scramble token %d: %w", i, err)
		}
		state = Compose(state, delta)
	}
	return state, nil
}
