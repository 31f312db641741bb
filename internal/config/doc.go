// Package config holds the settings of a senadoexport run: the API session,
// the bill and session queries, and where and how tables are written.
//
// Values are resolved in three layers: NewConfig defaults, then an optional
// YAML file (see FindConfigFile), then command-line flags that were set
// explicitly.
package config
