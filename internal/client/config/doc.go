// Package config loads runtime settings for the termcord client from four
// layered sources: built-in defaults, TERMCORD_* environment variables, an
// optional JSON file named via -c/-config, and command-line flags. Later
// sources win.
package config
