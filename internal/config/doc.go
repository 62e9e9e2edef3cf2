// Package config loads experiment definitions and process settings.
//
// Experiment files are YAML or CUE. Both are unified with the embedded
// #Experiment schema, which supplies defaults and rejects unknown fields,
// negative counts and non-positive steps before a walk is generated.
//
// Settings come from RWALK_* environment variables.
package config
