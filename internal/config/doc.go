// Package config provides configuration structures and utilities for hcaudit.
// It defines the main configuration options for connecting to Zendesk and the
// analysis collaborator, audit concurrency, and report generation preferences.
package config
