/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command assetreg runs registry operations against a DynamoDB-backed
// ledger configured through a YAML file and/or environment variables.
//
// Usage:
//
//	assetreg [-config registry.yaml] create <id> <owner> <type> <description> <value>
//	assetreg [-config registry.yaml] query <id>
//	assetreg [-config registry.yaml] transfer <id> <newOwner>
//	assetreg [-config registry.yaml] history <id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/suparena/assetregistry"
	"github.com/suparena/assetregistry/config"
	"github.com/suparena/assetregistry/ledger/ddb"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to a YAML configuration file")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := assetregistry.GetVersionInfo()
		fmt.Printf("AssetRegistry assetreg version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "assetreg: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given; expected create, query, transfer or history")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	gw, err := ddb.NewGateway(cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, cfg.TableName, cfg.OrgID)
	if err != nil {
		return err
	}

	reg := assetregistry.New(gw,
		assetregistry.WithCacheCapacity(cfg.CacheCapacity),
		assetregistry.WithCollection(cfg.PrivateCollection),
	)

	ctx := context.Background()
	switch cmd, rest := args[0], args[1:]; cmd {
	case "create":
		if len(rest) != 5 {
			return fmt.Errorf("usage: create <id> <owner> <type> <description> <value>")
		}
		value, err := strconv.ParseFloat(rest[4], 64)
		if err != nil {
			return fmt.Errorf("value %q is not a number: %w", rest[4], err)
		}
		if err := reg.CreateAsset(ctx, rest[0], rest[1], rest[2], rest[3], value); err != nil {
			return err
		}
		fmt.Printf("created asset %s\n", rest[0])
		return nil

	case "query":
		if len(rest) != 1 {
			return fmt.Errorf("usage: query <id>")
		}
		encoded, err := reg.QueryAsset(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Println(encoded)
		return nil

	case "transfer":
		if len(rest) != 2 {
			return fmt.Errorf("usage: transfer <id> <newOwner>")
		}
		if err := reg.TransferAsset(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Printf("transferred asset %s to %s\n", rest[0], rest[1])
		return nil

	case "history":
		if len(rest) != 1 {
			return fmt.Errorf("usage: history <id>")
		}
		history, err := reg.AssetHistory(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Println(history)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
