// Package bootconfig models the configuration snapshot a host application
// assembles at boot (sales document types, Indian state options, API flags)
// and loads it from YAML. The embedded data/defaults.yaml provides a usable
// default for tools and tests.
package bootconfig
