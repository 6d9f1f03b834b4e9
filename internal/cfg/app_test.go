package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_DEFAULTS_FILE", filepath.Join(t.TempDir(), "missing.json"))

	conf, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if conf.AppConfig.EntityFamily != "product" {
		t.Errorf("expected default family product, got %q", conf.AppConfig.EntityFamily)
	}
	if conf.AuditConfig.Backend != "dynamodb" {
		t.Errorf("expected default backend dynamodb, got %q", conf.AuditConfig.Backend)
	}
	if conf.UpstreamConfig.Timeout != 10*time.Second {
		t.Errorf("expected upstream timeout 10s, got %v", conf.UpstreamConfig.Timeout)
	}
	if conf.UpstreamConfig.RetryEnabled {
		t.Error("expected retry disabled by default")
	}
	// missing values stay empty instead of failing the load
	if conf.AuditConfig.TableName != "" || conf.UpstreamConfig.PostEndpoint != "" {
		t.Errorf("expected empty table and endpoint, got %q and %q", conf.AuditConfig.TableName, conf.UpstreamConfig.PostEndpoint)
	}
}

func TestLoad_DefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aws-lambda-tools-defaults.json")
	content := `{
		"profile": "default",
		"Values": {
			"DynamoDBTableName": "aml-product-data-capture-audits",
			"APIKey": "x-api-key",
			"APIValue": "secret",
			"PostEndpoint": "https://aml.example.com/entity/products",
			"PutEndpoint": "https://aml.example.com/entity/products/update",
			"StreamName": "tangonet-users",
			"PartitionKey": "users"
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	t.Setenv("APP_DEFAULTS_FILE", path)
	t.Setenv("UPSTREAM_POST_ENDPOINT", "https://override.example.com/post")

	conf, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "table from file", got: conf.AuditConfig.TableName, expected: "aml-product-data-capture-audits"},
		{name: "api key name from file", got: conf.UpstreamConfig.APIKeyName, expected: "x-api-key"},
		{name: "api key value from file", got: conf.UpstreamConfig.APIKeyValue, expected: "secret"},
		{name: "environment wins over file", got: conf.UpstreamConfig.PostEndpoint, expected: "https://override.example.com/post"},
		{name: "put endpoint from file", got: conf.UpstreamConfig.PutEndpoint, expected: "https://aml.example.com/entity/products/update"},
		{name: "stream name from file", got: conf.StreamConfig.Name, expected: "tangonet-users"},
		{name: "partition key from file", got: conf.StreamConfig.PartitionKey, expected: "users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}

func TestLoad_MalformedDefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"Values":`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	t.Setenv("APP_DEFAULTS_FILE", path)

	conf, err := Load()
	if err != nil {
		t.Fatalf("expected malformed file to be ignored, got %v", err)
	}
	if conf.AuditConfig.TableName != "" {
		t.Errorf("expected empty table name, got %q", conf.AuditConfig.TableName)
	}
}
