// internal/app/bootstrap/credentials.go
package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
)

// StoreCredential is the resolved secret for whichever backend is active.
// The mongo backend needs URI; the dynamo backend uses the AWS key fields
// when present and otherwise falls back to the SDK's default chain.
type StoreCredential struct {
	URI             string `json:"mongo_uri"`
	AccessKeyID     string `json:"aws_access_key_id"`
	SecretAccessKey string `json:"aws_secret_access_key"`
	SessionToken    string `json:"aws_session_token"`
}

// ResolveStoreCredential finds the store credential from three sources, in
// priority order:
//
//  1. store_credentials_json — an inline structured secret,
//  2. the discrete config keys (mongo_uri, aws_access_key_id, ...),
//  3. store_credentials_file — a local JSON credential file.
//
// The returned source string names which one won, for startup logging.
// A mongo backend with no resolvable URI is a fatal configuration error;
// a dynamo backend may resolve to an empty credential (SDK default chain).
func ResolveStoreCredential(appCfg AppConfig) (StoreCredential, string, error) {
	if appCfg.StoreCredentialsJSON != "" {
		var cred StoreCredential
		if err := json.Unmarshal([]byte(appCfg.StoreCredentialsJSON), &cred); err != nil {
			return StoreCredential{}, "", fmt.Errorf("store_credentials_json: %w", err)
		}
		return cred, "inline", checkCredential(appCfg, cred, "inline")
	}

	discrete := StoreCredential{
		URI:             appCfg.MongoURI,
		AccessKeyID:     appCfg.AWSAccessKeyID,
		SecretAccessKey: appCfg.AWSSecretAccessKey,
		SessionToken:    appCfg.AWSSessionToken,
	}
	if discrete != (StoreCredential{}) {
		return discrete, "discrete", checkCredential(appCfg, discrete, "discrete")
	}

	if appCfg.StoreCredentialsFile != "" {
		raw, err := os.ReadFile(appCfg.StoreCredentialsFile)
		if err != nil {
			return StoreCredential{}, "", fmt.Errorf("store_credentials_file: %w", err)
		}
		var cred StoreCredential
		if err := json.Unmarshal(raw, &cred); err != nil {
			return StoreCredential{}, "", fmt.Errorf("store_credentials_file %s: %w", appCfg.StoreCredentialsFile, err)
		}
		return cred, "file", checkCredential(appCfg, cred, "file")
	}

	// Nothing configured. Acceptable only for backends that don't need an
	// explicit credential.
	empty := StoreCredential{}
	return empty, "none", checkCredential(appCfg, empty, "none")
}

// checkCredential enforces per-backend requirements on a resolved credential.
func checkCredential(appCfg AppConfig, cred StoreCredential, source string) error {
	switch appCfg.StoreBackend {
	case "mongo":
		if cred.URI == "" {
			return fmt.Errorf("mongo backend selected but no mongo_uri resolved (source %s)", source)
		}
	case "dynamo":
		if cred.AccessKeyID != "" && cred.SecretAccessKey == "" {
			return fmt.Errorf("aws_access_key_id set without aws_secret_access_key (source %s)", source)
		}
	}
	return nil
}
