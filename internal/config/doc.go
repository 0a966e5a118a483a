// Package config provides configuration structures and utilities for snykdup.
// It defines the API connection settings (endpoint, version, page limit),
// credential resolution, and report output preferences.
package config
