/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
)

func getTestGateway(t *testing.T) *Gateway {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		t.Log("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	awsDDBTableName := os.Getenv("AWS_DDB_TABLE")
	region := os.Getenv("AWS_REGION")

	if awsAccessKey == "" || awsSecretKey == "" || awsDDBTableName == "" || region == "" {
		t.Skip("AWS credentials not configured; skipping DynamoDB integration test")
	}

	gw, err := NewGateway(awsAccessKey, awsSecretKey, region, awsDDBTableName, "Org1")
	if err != nil {
		t.Fatalf("failed to create gateway: %v", err)
	}
	return gw
}

func TestGatewayPutGetState(t *testing.T) {
	gw := getTestGateway(t)
	ctx := context.Background()

	encoded := `{"assetId":"it-asset","owner":"alice","assetType":"gold","description":"integration","value":10.50}`
	if err := gw.PutState(ctx, "it-asset", encoded); err != nil {
		t.Fatalf("PutState failed: %v", err)
	}

	got, err := gw.GetState(ctx, "it-asset")
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if got != encoded {
		t.Errorf("GetState = %q, want %q", got, encoded)
	}
}

func TestGatewayGetStateAbsent(t *testing.T) {
	gw := getTestGateway(t)

	got, err := gw.GetState(context.Background(), "it-never-written")
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if got != "" {
		t.Errorf("GetState on absent key = %q, want empty", got)
	}
}

func TestGatewayHistoryAppendsPerWrite(t *testing.T) {
	gw := getTestGateway(t)
	ctx := context.Background()

	before, err := gw.GetHistory(ctx, "it-history")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}

	if err := gw.PutState(ctx, "it-history", "v1"); err != nil {
		t.Fatalf("PutState failed: %v", err)
	}
	if err := gw.PutState(ctx, "it-history", "v2"); err != nil {
		t.Fatalf("PutState failed: %v", err)
	}

	after, err := gw.GetHistory(ctx, "it-history")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}

	if len(after) != len(before)+2 {
		t.Errorf("history grew by %d entries, want 2", len(after)-len(before))
	}
	if len(after) >= 2 {
		last := after[len(after)-1]
		if last.Value != "v2" {
			t.Errorf("newest history value = %q, want v2", last.Value)
		}
		if last.TxID == "" {
			t.Error("history entry should carry a transaction id")
		}
	}
}

func TestGatewayPrivateData(t *testing.T) {
	gw := getTestGateway(t)
	ctx := context.Background()

	payload := []byte(`{"appraisal":"confidential"}`)
	if err := gw.PutPrivate(ctx, "assetPrivateDetails", "it-private", payload); err != nil {
		t.Fatalf("PutPrivate failed: %v", err)
	}

	got, err := gw.GetPrivate(ctx, "assetPrivateDetails", "it-private")
	if err != nil {
		t.Fatalf("GetPrivate failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetPrivate = %q, want %q", got, payload)
	}

	absent, err := gw.GetPrivate(ctx, "assetPrivateDetails", "it-missing")
	if err != nil {
		t.Fatalf("GetPrivate failed: %v", err)
	}
	if absent != nil {
		t.Errorf("GetPrivate on absent key = %q, want nil", absent)
	}
}
