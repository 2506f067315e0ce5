// Package app is the composition root for dtexplorer.
//
// Load reads ~/.config/dtexplorer/config.toml, opens the log file and
// builds an intl.Engine whose default locale and zone come from that
// config (falling back to the ambient locale from LC_ALL/LANG and the host
// zone). Run then creates a fresh state.Store at the current moment and
// hands everything to the Bubble Tea UI. The cobra subcommands reuse Load
// so the scriptable and interactive paths format identically.
package app
