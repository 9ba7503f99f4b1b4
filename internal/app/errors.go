package service

import "errors"

var (
	// ErrNotStarted is returned by session operations before Start.
	ErrNotStarted = errors.New("service not started")
	// ErrNoAnalyzer means Start was called without WithAnalyzer.
	ErrNoAnalyzer = errors.New("no analyzer configured")
)
