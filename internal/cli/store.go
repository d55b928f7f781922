package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/config"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
)

// BuildStore constructs a store from a definition file. Every declared
// slice gets the standard set/merge/clear transition table so journals and
// repl input can actually move state.
func BuildStore(definitionPath string, logger *slog.Logger, extra ...arbor.Option) (*arbor.Store, error) {
	cfg, err := config.Load(definitionPath)
	if err != nil {
		return nil, err
	}

	opts := append([]arbor.Option{
		arbor.WithName(cfg.Name),
		arbor.WithLogger(logger),
		arbor.WithLifecycleHooks(observability.LogHooks(logger)),
	}, extra...)
	st := arbor.New(opts...)

	for _, slice := range cfg.Slices {
		err := st.RegisterSlice(slice.Name, slice.Initial, domain.StandardReducers(slice.Initial))
		if err != nil {
			return nil, fmt.Errorf("failed to register slice %q: %w", slice.Name, err)
		}
	}
	return st, nil
}
