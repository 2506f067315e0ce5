// Package config loads dtexplorer's host settings.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dtexplorer/config.toml
//  3. If the file does not exist, fall back to defaults
//  4. If fields are missing or empty, use defaults
//
// # TOML Format
//
//	default_locale = "de-DE"
//	time_zone = "Europe/Berlin"
//	log_file = "~/.local/state/dtexplorer/dtexplorer.log"
//	log_level = "debug"
//
// All fields are optional. default_locale stands in for the platform
// default locale, time_zone for the host zone. log_file is tilde-expanded;
// when it is empty nothing is logged, since the terminal UI owns stdout.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A time_zone that is not in the IANA database
//
// Missing config files are NOT an error.
package config
