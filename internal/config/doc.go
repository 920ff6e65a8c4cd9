// Package config provides configuration management for pegfit.
//
// Configuration only affects presentation: the output format, the log
// level, colour and the terminal theme. The pegs and the hole of the
// demonstration are fixed and cannot be configured.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order, later layers
// overriding earlier ones field by field:
//
//  1. Default Configuration (GetDefaultConfig)
//  2. User Configuration (~/.config/pegfit/config.yaml)
//  3. Project Configuration (./.pegfit/config.yaml)
//
// Missing files are skipped. A file that exists but cannot be read or
// parsed is an error.
//
// # Configuration Structure
//
//	output: table     # text, table, json or yaml
//	logLevel: debug   # debug, info, warn or error
//	color: false      # omit for automatic detection
//	theme: light      # dark or light
//
// Command line flags take precedence over every layer.
package config
