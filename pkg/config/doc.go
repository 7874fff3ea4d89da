// Package config loads figscope settings.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults
//  2. figscope.toml in the working directory, else in [Dir]
//  3. the environment: FIGMA_TOKEN and FIGMA_PASSWORD, then FIGSCOPE_*
//     (FIGSCOPE_CACHE_TTL=30m sets cache-ttl)
//  4. command-line flags the user set explicitly
//
// Before the environment is read, .env files in the working directory and
// in [Dir] are loaded into it without overriding variables that are
// already set.
//
// A config file uses the same keys as the flags:
//
//	token     = "figd_..."
//	depth     = 5
//	cache-ttl = "30m"
//	redis-url = "redis://localhost:6379/0"
package config
