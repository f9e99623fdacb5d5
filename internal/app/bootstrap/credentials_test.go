package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveStoreCredential_InlineWins(t *testing.T) {
	appCfg := AppConfig{
		StoreBackend:         "mongo",
		MongoURI:             "mongodb://discrete:27017",
		StoreCredentialsJSON: `{"mongo_uri":"mongodb://inline:27017"}`,
	}

	cred, source, err := ResolveStoreCredential(appCfg)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if source != "inline" {
		t.Errorf("source = %q, want inline", source)
	}
	if cred.URI != "mongodb://inline:27017" {
		t.Errorf("uri = %q, want the inline value", cred.URI)
	}
}

func TestResolveStoreCredential_DiscreteKeys(t *testing.T) {
	appCfg := AppConfig{
		StoreBackend:       "dynamo",
		AWSAccessKeyID:     "AKIAEXAMPLE",
		AWSSecretAccessKey: "secret",
	}

	cred, source, err := ResolveStoreCredential(appCfg)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if source != "discrete" {
		t.Errorf("source = %q, want discrete", source)
	}
	if cred.AccessKeyID != "AKIAEXAMPLE" {
		t.Errorf("access key = %q", cred.AccessKeyID)
	}
}

func TestResolveStoreCredential_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte(`{"mongo_uri":"mongodb://fromfile:27017"}`), 0o600); err != nil {
		t.Fatalf("write creds file: %v", err)
	}

	appCfg := AppConfig{
		StoreBackend:         "mongo",
		StoreCredentialsFile: path,
	}

	cred, source, err := ResolveStoreCredential(appCfg)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if source != "file" {
		t.Errorf("source = %q, want file", source)
	}
	if cred.URI != "mongodb://fromfile:27017" {
		t.Errorf("uri = %q", cred.URI)
	}
}

func TestResolveStoreCredential_MongoWithoutURI(t *testing.T) {
	_, _, err := ResolveStoreCredential(AppConfig{StoreBackend: "mongo"})
	if err == nil {
		t.Fatal("expected an error when the mongo backend has no URI")
	}
}

func TestResolveStoreCredential_DynamoDefaultsOK(t *testing.T) {
	// A dynamo backend with nothing configured falls through to the SDK
	// default chain; resolution itself must not fail.
	cred, source, err := ResolveStoreCredential(AppConfig{StoreBackend: "dynamo"})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if source != "none" || cred != (StoreCredential{}) {
		t.Errorf("got %+v from %q, want empty credential from 'none'", cred, source)
	}
}

func TestResolveStoreCredential_BadInlineJSON(t *testing.T) {
	_, _, err := ResolveStoreCredential(AppConfig{
		StoreBackend:         "mongo",
		StoreCredentialsJSON: "{not json",
	})
	if err == nil {
		t.Fatal("expected an error for malformed inline JSON")
	}
}

func TestResolveStoreCredential_AccessKeyWithoutSecret(t *testing.T) {
	_, _, err := ResolveStoreCredential(AppConfig{
		StoreBackend:   "dynamo",
		AWSAccessKeyID: "AKIAEXAMPLE",
	})
	if err == nil {
		t.Fatal("expected an error for an access key without a secret")
	}
}
