package main

import "time"

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

const (
	DefaultBaseURL = "http://localhost:3004"
	DefaultWSURL   = "ws://localhost:3004/ws/admin/live"

	RequestTimeout = 10 * time.Second
)
