// Package config handles configuration loading and merging for sarifmd.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--title, --section, --decoration, --no-details, --theme, --log-level, --bot-login)
//  2. Environment variables (SARIFMD_TITLE, SARIFMD_DECORATION, SARIFMD_DETAILS,
//     SARIFMD_THEME, SARIFMD_LOG_LEVEL, SARIFMD_BOT_LOGIN, SARIFMD_NO_COLOR, NO_COLOR)
//  3. YAML config file (.sarifmd.yaml in the working directory or
//     $XDG_CONFIG_HOME/sarifmd/.sarifmd.yaml, or the file named by --config)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
// Sections have no environment form; labels routinely contain spaces.
//
// # NO_COLOR
//
// Any non-empty NO_COLOR selects the mono theme, following no-color.org.
// SARIFMD_NO_COLOR accepts a boolean and takes precedence over NO_COLOR.
package config
