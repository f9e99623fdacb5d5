// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for leadgate.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP port, TLS,
// logging, environment). AppConfig is everything specific to this service:
// which store backend is active, how to reach it, and the intake policy
// knobs.
type AppConfig struct {
	// Store backend selection: "mongo", "dynamo", or "memory".
	// The registration service never sees which one is active.
	StoreBackend string

	// MongoDB connection configuration (store_backend=mongo).
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// DynamoDB configuration (store_backend=dynamo).
	DynamoTable    string
	DynamoRegion   string
	DynamoEndpoint string // non-empty for dynamodb-local

	// Discrete AWS credential keys. Blank means the SDK default chain.
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string

	// Alternate credential sources, checked before the discrete keys.
	StoreCredentialsJSON string // inline structured secret (JSON blob)
	StoreCredentialsFile string // path to a local JSON credential file

	// Intake policy.
	DedupWindow        time.Duration // duplicate-submission lookback
	RegisterRateLimit  int           // max submissions per client per window, 0 disables
	RegisterRateWindow time.Duration // rate-limit window

	// Listing page sizes. Zero means keep the built-in defaults.
	PageSizeDefault int
	PageSizeMax     int

	// Admin API protection. bcrypt hash of the shared admin key; blank
	// disables the guard.
	AdminKeyHash string
}
