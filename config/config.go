/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads registry configuration from a YAML file and the
// process environment. Environment variables override file values, and
// a .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCacheCapacity bounds the registry cache when the
	// configuration does not say otherwise.
	DefaultCacheCapacity = 1000

	// DefaultPrivateCollection is the confidential collection name used
	// when the configuration does not say otherwise.
	DefaultPrivateCollection = "assetPrivateDetails"
)

// Config carries everything needed to wire a registry to DynamoDB.
type Config struct {
	AWSAccessKey      string `yaml:"awsAccessKey"`
	AWSSecretKey      string `yaml:"awsSecretKey"`
	AWSRegion         string `yaml:"awsRegion"`
	TableName         string `yaml:"tableName"`
	OrgID             string `yaml:"orgId"`
	CacheCapacity     int    `yaml:"cacheCapacity"`
	PrivateCollection string `yaml:"privateCollection"`
}

// Default returns the configuration used when nothing is provided.
func Default() Config {
	return Config{
		CacheCapacity:     DefaultCacheCapacity,
		PrivateCollection: DefaultPrivateCollection,
	}
}

// Load reads the YAML file at path (skipped when path is empty), then
// applies environment overrides on top of it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
		if cfg.CacheCapacity <= 0 {
			cfg.CacheCapacity = DefaultCacheCapacity
		}
		if cfg.PrivateCollection == "" {
			cfg.PrivateCollection = DefaultPrivateCollection
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// FromEnv returns defaults overlaid with environment variables only.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	// Best effort; absent .env files are the normal case.
	_ = godotenv.Load()

	setString(&c.AWSAccessKey, "AWS_ACCESS_KEY")
	setString(&c.AWSSecretKey, "AWS_SECRET_KEY")
	setString(&c.AWSRegion, "AWS_REGION")
	setString(&c.TableName, "AWS_DDB_TABLE")
	setString(&c.OrgID, "REGISTRY_ORG_ID")
	setString(&c.PrivateCollection, "REGISTRY_PRIVATE_COLLECTION")

	if v := os.Getenv("REGISTRY_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.CacheCapacity = n
		}
	}
}

func setString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
