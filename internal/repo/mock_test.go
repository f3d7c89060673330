package repo_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pkordes/travel-planner/backend/internal/repo"
)

// apiCall is the shape of every DynamoDB client method.
type apiCall[In, Out any] func(context.Context, *In, ...func(*dynamodb.Options)) (*Out, error)

// mockDynamoClient is a hand-written test double for repo.DynamoDBAPI.
// Each operation is a function field — set only the ones your test needs;
// any unexpected call fails the test.
type mockDynamoClient struct {
	get        apiCall[dynamodb.GetItemInput, dynamodb.GetItemOutput]
	put        apiCall[dynamodb.PutItemInput, dynamodb.PutItemOutput]
	update     apiCall[dynamodb.UpdateItemInput, dynamodb.UpdateItemOutput]
	scan       apiCall[dynamodb.ScanInput, dynamodb.ScanOutput]
	query      apiCall[dynamodb.QueryInput, dynamodb.QueryOutput]
	batchWrite apiCall[dynamodb.BatchWriteItemInput, dynamodb.BatchWriteItemOutput]
}

// compile-time check: mockDynamoClient must satisfy repo.DynamoDBAPI.
var _ repo.DynamoDBAPI = (*mockDynamoClient)(nil)

func newMockDynamoClient(t *testing.T) *mockDynamoClient {
	return &mockDynamoClient{
		get:        unexpected[dynamodb.GetItemInput, dynamodb.GetItemOutput](t),
		put:        unexpected[dynamodb.PutItemInput, dynamodb.PutItemOutput](t),
		update:     unexpected[dynamodb.UpdateItemInput, dynamodb.UpdateItemOutput](t),
		scan:       unexpected[dynamodb.ScanInput, dynamodb.ScanOutput](t),
		query:      unexpected[dynamodb.QueryInput, dynamodb.QueryOutput](t),
		batchWrite: unexpected[dynamodb.BatchWriteItemInput, dynamodb.BatchWriteItemOutput](t),
	}
}

func unexpected[In, Out any](t *testing.T) apiCall[In, Out] {
	return func(context.Context, *In, ...func(*dynamodb.Options)) (*Out, error) {
		t.Helper()
		t.Fatalf("unexpected DynamoDB call: %T", new(In))
		return nil, nil
	}
}

func (m *mockDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.get(ctx, params, optFns...)
}

func (m *mockDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return m.put(ctx, params, optFns...)
}

func (m *mockDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return m.update(ctx, params, optFns...)
}

func (m *mockDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return m.scan(ctx, params, optFns...)
}

func (m *mockDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return m.query(ctx, params, optFns...)
}

func (m *mockDynamoClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	return m.batchWrite(ctx, params, optFns...)
}
