// Package file provides a TOML file-backed configuration store.
//
// Configuration lives in ~/.orderflow/config.toml by default and
// holds the static surface the process reads at start: billing and
// messaging credentials, base URLs, the default sender number, the
// HTTP timeout and the order sanitize mode. There is no runtime
// reconfiguration; the file is read once.
package file
