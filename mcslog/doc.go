// Package mcslog wraps github.com/op/go-logging with the level-parsing and
// elapsed-time formatting the CLI driver needs, grounded on the shape
// exposed by the retrieved pack's logger package tests (NewLogger,
// ParseTime).
package mcslog
