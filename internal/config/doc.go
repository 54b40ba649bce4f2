// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file, and an optional
// config.yaml. Settings are grouped by concern (server, database) and
// validated before the application starts.
package config
