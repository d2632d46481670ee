// Package config defines the simpletools configuration and its loader.
//
// Configuration lives in a single config.yaml under ~/.config/simpletools
// (overridable with --config-path). Precedence, lowest to highest:
//
//  1. built-in defaults (GetDefaultConfig)
//  2. config.yaml values
//  3. environment variables (ENVIRONMENT, SIMPLETOOLS_CREDENTIALS_DIR,
//     SIMPLETOOLS_API_BASE_URL, SIMPLETOOLS_API_KEY)
//  4. CLI flags, applied by the app layer after Load
//
// A missing config.yaml is normal and loads the defaults: a stdio server
// attributed to the "local" user with file-backed credentials.
package config
