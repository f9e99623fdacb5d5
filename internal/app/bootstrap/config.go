// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for leadgate.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_backend, mongo_uri, etc.
//   - Environment variables: LEADGATE_STORE_BACKEND, LEADGATE_MONGO_URI, etc.
//   - Command-line flags: --store_backend, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "store_backend", Default: "mongo", Desc: "Store backend: 'mongo', 'dynamo', or 'memory'"},

	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "leadgate", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "dynamo_table", Default: "registrations", Desc: "DynamoDB table name"},
	{Name: "dynamo_region", Default: "ap-south-1", Desc: "AWS region for DynamoDB"},
	{Name: "dynamo_endpoint", Default: "", Desc: "DynamoDB endpoint override (dynamodb-local)"},

	{Name: "aws_access_key_id", Default: "", Desc: "AWS access key id (blank means SDK default chain)"},
	{Name: "aws_secret_access_key", Default: "", Desc: "AWS secret access key"},
	{Name: "aws_session_token", Default: "", Desc: "AWS session token (optional)"},

	{Name: "store_credentials_json", Default: "", Desc: "Inline JSON secret holding store credentials (highest priority)"},
	{Name: "store_credentials_file", Default: "", Desc: "Path to a local JSON credential file (lowest priority)"},

	{Name: "dedup_window", Default: "24h", Desc: "Duplicate-submission lookback window (e.g. 24h, 90m)"},

	{Name: "register_rate_limit", Default: 0, Desc: "Max intake submissions per client per window (0 disables)"},
	{Name: "register_rate_window", Default: "1m", Desc: "Intake rate-limit window"},

	{Name: "page_size_default", Default: 20, Desc: "Listing page size when the request doesn't specify one"},
	{Name: "page_size_max", Default: 100, Desc: "Largest listing page size a request may ask for"},

	{Name: "admin_key_hash", Default: "", Desc: "bcrypt hash of the admin API key (blank disables the guard)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built. Merging
// precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LEADGATE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreBackend: appValues.String("store_backend"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		DynamoTable:    appValues.String("dynamo_table"),
		DynamoRegion:   appValues.String("dynamo_region"),
		DynamoEndpoint: appValues.String("dynamo_endpoint"),

		AWSAccessKeyID:     appValues.String("aws_access_key_id"),
		AWSSecretAccessKey: appValues.String("aws_secret_access_key"),
		AWSSessionToken:    appValues.String("aws_session_token"),

		StoreCredentialsJSON: appValues.String("store_credentials_json"),
		StoreCredentialsFile: appValues.String("store_credentials_file"),

		DedupWindow:        appValues.Duration("dedup_window", 24*time.Hour),
		RegisterRateLimit:  appValues.Int("register_rate_limit"),
		RegisterRateWindow: appValues.Duration("register_rate_window", time.Minute),

		PageSizeDefault: appValues.Int("page_size_default"),
		PageSizeMax:     appValues.Int("page_size_max"),

		AdminKeyHash: appValues.String("admin_key_hash"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// connection is attempted. Returning an error aborts startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case "mongo", "dynamo", "memory":
	default:
		return fmt.Errorf("store_backend must be 'mongo', 'dynamo' or 'memory', got %q", appCfg.StoreBackend)
	}

	if appCfg.DedupWindow <= 0 {
		return fmt.Errorf("dedup_window must be positive, got %s", appCfg.DedupWindow)
	}

	// Catch an obviously malformed Mongo URI before connecting. The URI may
	// also arrive via the inline or file credential source, validated during
	// resolution.
	if appCfg.StoreBackend == "mongo" && appCfg.MongoURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	return nil
}
