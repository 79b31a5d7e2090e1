/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/assetregistry/ledger"
)

// Key scheme for the single-table layout.
const (
	statePrefix   = "STATE#"
	privatePrefix = "PRIV#"
	historyPrefix = "HIST#"
	currentSK     = "CURRENT"
	detailsSK     = "DETAILS"
)

// Gateway implements ledger.Gateway on top of AWS DynamoDB. All keys
// share one table: the current value of a key lives under
// (STATE#<key>, CURRENT), each historical write under
// (STATE#<key>, HIST#<nanos>#<txid>), and confidential values under
// (PRIV#<collection>#<key>, DETAILS).
type Gateway struct {
	client    *sdk.Client
	tableName string
	orgID     string
}

type stateItem struct {
	PK    string `dynamodbav:"PK"`
	SK    string `dynamodbav:"SK"`
	Value string `dynamodbav:"Value"`
}

type historyItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	TxID      string `dynamodbav:"TxId"`
	Timestamp string `dynamodbav:"Timestamp"`
	Value     string `dynamodbav:"Value"`
}

type privateItem struct {
	PK    string `dynamodbav:"PK"`
	SK    string `dynamodbav:"SK"`
	Value []byte `dynamodbav:"Value"`
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewGateway constructs a DynamoDB-backed ledger gateway. The orgID is
// the organization identity reported by CallerID; it stands in for the
// host platform's identity service.
func NewGateway(awsAccessKey, awsSecretKey, awsRegion, tableName, orgID string) (*Gateway, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &Gateway{
		client:    client,
		tableName: tableName,
		orgID:     orgID,
	}, nil
}

// GetState retrieves the current value for key, or "" when absent.
func (g *Gateway) GetState(ctx context.Context, key string) (string, error) {
	out, err := g.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &g.tableName,
		Key:       itemKey(statePrefix+key, currentSK),
	})
	if err != nil {
		return "", fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return "", nil
	}

	var item stateItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return "", fmt.Errorf("failed to unmarshal state item: %w", err)
	}
	return item.Value, nil
}

// PutState writes the current value for key and appends a history item
// in a single transaction, so a partial write can never leave the
// current value and the history log disagreeing.
func (g *Gateway) PutState(ctx context.Context, key, value string) error {
	txID := uuid.NewString()
	now := strfmt.DateTime(time.Now().UTC())

	current, err := attributevalue.MarshalMap(stateItem{
		PK:    statePrefix + key,
		SK:    currentSK,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal state item: %w", err)
	}

	hist, err := attributevalue.MarshalMap(historyItem{
		PK:        statePrefix + key,
		SK:        fmt.Sprintf("%s%020d#%s", historyPrefix, time.Now().UnixNano(), txID),
		TxID:      txID,
		Timestamp: now.String(),
		Value:     value,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal history item: %w", err)
	}

	_, err = g.client.TransactWriteItems(ctx, &sdk.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: &g.tableName, Item: current}},
			{Put: &types.Put{TableName: &g.tableName, Item: hist}},
		},
	})
	if err != nil {
		return fmt.Errorf("TransactWriteItems failed: %w", err)
	}
	return nil
}

// GetHistory returns the history items for key, oldest first.
func (g *Gateway) GetHistory(ctx context.Context, key string) ([]ledger.HistoryEntry, error) {
	keyCond := "PK = :pk AND begins_with(SK, :hist)"
	out, err := g.client.Query(ctx, &sdk.QueryInput{
		TableName:              &g.tableName,
		KeyConditionExpression: &keyCond,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: statePrefix + key},
			":hist": &types.AttributeValueMemberS{Value: historyPrefix},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("history query error: %w", err)
	}

	entries := make([]ledger.HistoryEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var item historyItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history item: %w", err)
		}
		ts, err := strfmt.ParseDateTime(item.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse history timestamp %q: %w", item.Timestamp, err)
		}
		entries = append(entries, ledger.HistoryEntry{
			TxID:      item.TxID,
			Timestamp: ts,
			Value:     item.Value,
		})
	}
	return entries, nil
}

// GetPrivate reads from the named confidential collection, nil when absent.
func (g *Gateway) GetPrivate(ctx context.Context, collection, key string) ([]byte, error) {
	out, err := g.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &g.tableName,
		Key:       itemKey(privatePK(collection, key), detailsSK),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item privateItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal private item: %w", err)
	}
	return item.Value, nil
}

// PutPrivate writes into the named confidential collection.
func (g *Gateway) PutPrivate(ctx context.Context, collection, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(privateItem{
		PK:    privatePK(collection, key),
		SK:    detailsSK,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal private item: %w", err)
	}

	_, err = g.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &g.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// CallerID returns the organization identity the gateway was
// constructed with.
func (g *Gateway) CallerID(ctx context.Context) (string, error) {
	if g.orgID == "" {
		return "", fmt.Errorf("no organization identity configured")
	}
	return g.orgID, nil
}

func privatePK(collection, key string) string {
	return privatePrefix + collection + "#" + key
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
