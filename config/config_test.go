/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	got := Default()

	if got.CacheCapacity != DefaultCacheCapacity {
		t.Errorf("CacheCapacity = %d, want %d", got.CacheCapacity, DefaultCacheCapacity)
	}
	if got.PrivateCollection != DefaultPrivateCollection {
		t.Errorf("PrivateCollection = %q, want %q", got.PrivateCollection, DefaultPrivateCollection)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	content := `
awsRegion: us-east-1
tableName: asset-registry
orgId: Org1
cacheCapacity: 250
privateCollection: appraisals
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("AWSRegion = %q, want us-east-1", cfg.AWSRegion)
	}
	if cfg.TableName != "asset-registry" {
		t.Errorf("TableName = %q, want asset-registry", cfg.TableName)
	}
	if cfg.OrgID != "Org1" {
		t.Errorf("OrgID = %q, want Org1", cfg.OrgID)
	}
	if cfg.CacheCapacity != 250 {
		t.Errorf("CacheCapacity = %d, want 250", cfg.CacheCapacity)
	}
	if cfg.PrivateCollection != "appraisals" {
		t.Errorf("PrivateCollection = %q, want appraisals", cfg.PrivateCollection)
	}
}

func TestLoadFillsDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(path, []byte("tableName: t\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CacheCapacity != DefaultCacheCapacity {
		t.Errorf("CacheCapacity = %d, want default %d", cfg.CacheCapacity, DefaultCacheCapacity)
	}
	if cfg.PrivateCollection != DefaultPrivateCollection {
		t.Errorf("PrivateCollection = %q, want default %q", cfg.PrivateCollection, DefaultPrivateCollection)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load on a missing file should fail")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(path, []byte("orgId: FileOrg\ncacheCapacity: 10\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("REGISTRY_ORG_ID", "EnvOrg")
	t.Setenv("REGISTRY_CACHE_CAPACITY", "99")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OrgID != "EnvOrg" {
		t.Errorf("OrgID = %q, want env override EnvOrg", cfg.OrgID)
	}
	if cfg.CacheCapacity != 99 {
		t.Errorf("CacheCapacity = %d, want env override 99", cfg.CacheCapacity)
	}
}

func TestEnvIgnoresInvalidCapacity(t *testing.T) {
	t.Setenv("REGISTRY_CACHE_CAPACITY", "not-a-number")

	cfg := FromEnv()
	if cfg.CacheCapacity != DefaultCacheCapacity {
		t.Errorf("CacheCapacity = %d, want default %d", cfg.CacheCapacity, DefaultCacheCapacity)
	}
}
