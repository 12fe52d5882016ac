// SPDX-License-Identifier: MIT

package lvmath

import (
	"log/slog"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/logger"
)

// Option configures New.
type Option func(*options)

type options struct {
	cfg config.Config
	log *slog.Logger
}

func defaultOptions() options {
	return options{cfg: config.Default(), log: logger.Discard()}
}

// WithConfig sets the configuration snapshot. It is validated by New.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger routes factory diagnostics to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lvmath: WithLogger(nil)")
	}

	return func(o *options) { o.log = l }
}
