package evolve

import (
	"context"

	"github.com/XiaoConstantine/treegp/pkg/core"
)

// Search is the top-level entry point: it merges the caller's config with the
// documented defaults, validates it, and runs the island coordinator from
// scratch. Callers read Best.Tree and Best.Fitness off the result; the
// returned population can seed a later Resume.
func Search(ctx context.Context, cfg core.Config, opts ...Option) (*core.Result, error) {
	c, err := NewCoordinator(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx)
}
