// Package config collects the numeric policy knobs the rest of this module
// treats as fixed constants by default: floating-point tolerances, BVH
// tuning parameters, and the flip-cascade safety ceiling.
//
// Config is built with functional options (mirroring the teacher's
// core.GraphOption / core.WithDirected pattern) or loaded from YAML via
// Load/Parse, for callers that want to tune these values without
// recompiling.
package config
