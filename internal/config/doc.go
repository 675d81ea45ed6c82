// Package config loads the configuration shared by the uvvis command line
// tools: logging setup, directory layout, and export options.
//
// Sources, in increasing precedence: struct-tag defaults, UVVIS_* prefixed
// environment variables, then an optional YAML file. The merged result is
// validated before use. The parsing library itself takes no configuration;
// everything here serves the tools built on top of it.
package config
