// Package config provides configuration management for met-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Parsing and validating command line arguments into Options
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads to ~/Pictures/Met
//	// Talks to the public collection API
//	// No response cache
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Run Options
//
// ParseArgs validates the command line before anything touches the network:
//
//	opts, settings, err := config.ParseArgs(os.Args[1:], os.Stderr, config.LoadOrDefault)
//	if err != nil {
//	    // report and exit 1
//	}
//
// Options is immutable once returned and is passed by value to the rest of
// the program.
package config
