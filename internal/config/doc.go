// Package config loads, normalizes, and validates bestcut configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Stage packages carry their own complete
// threshold bundles; this package exposes the commonly tuned subset and
// produces fully populated stage configs from it, so one file drives a run
// end to end.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
