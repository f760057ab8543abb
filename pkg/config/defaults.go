package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "fitstudio"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	// The studio's local timezone, used for the datetime_ist display
	// fields. The stored instant is always UTC.
	DefaultDisplayTimezone = "Asia/Kolkata"

	DefaultEventsEnabled = false

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"
)
