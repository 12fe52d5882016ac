// SPDX-License-Identifier: MIT

package factory

import (
	"log/slog"

	"github.com/katalvlaran/lvmath/logger"
	"github.com/katalvlaran/lvmath/typed"
)

const (
	panicNilLogger      = "factory: WithLogger: logger must be non-nil"
	panicNilConversions = "factory: WithConversions: conversion table must be non-nil"
)

// Option configures a Loader or Build.
type Option func(*options)

type options struct {
	log         *slog.Logger
	conversions func(digits int) []typed.Conversion
}

func defaultOptions() options {
	return options{
		log:         logger.Discard(),
		conversions: typed.DefaultConversions,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes loader diagnostics to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.log = l }
}

// WithConversions replaces the implicit conversion table handed to factories
// through Env.Typed. fn receives the configured precision. Panics if fn is nil.
func WithConversions(fn func(digits int) []typed.Conversion) Option {
	if fn == nil {
		panic(panicNilConversions)
	}

	return func(o *options) { o.conversions = fn }
}
