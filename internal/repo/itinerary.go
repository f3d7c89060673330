package repo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// maxBatchSize is the DynamoDB limit on items per BatchWriteItem request.
const maxBatchSize = 25

// ItineraryRepo defines the persistence operations for itinerary items.
// The service layer depends on this interface, not the concrete DynamoDB
// implementation, which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// List returns the first scan page of itinerary items, unsorted.
	// Result sets beyond one page are truncated — a known limitation.
	List(ctx context.Context) ([]domain.ItineraryItem, error)

	// GetByDate retrieves a single item by its DD/MM/YY partition key.
	// Returns domain.ErrNotFound if no item exists for that date.
	GetByDate(ctx context.Context, date string) (domain.ItineraryItem, error)

	// Update applies the fields present in upd to the item stored under
	// date and returns the full record after the write. Fields absent
	// from upd are left untouched. The caller must ensure upd is not
	// empty and that the item exists.
	Update(ctx context.Context, date string, upd domain.ItineraryUpdate) (domain.ItineraryItem, error)

	// PutBatch writes items in BatchWriteItem chunks of 25. Existing
	// items with the same date are replaced.
	PutBatch(ctx context.Context, items []domain.ItineraryItem) error
}

// dynamoItineraryRepo is the DynamoDB implementation of ItineraryRepo.
type dynamoItineraryRepo struct {
	client DynamoDBAPI
	table  string
}

// NewItineraryRepo constructs an ItineraryRepo backed by the given client
// and table. In production pass *dynamodb.Client; in tests pass a mock.
func NewItineraryRepo(client DynamoDBAPI, table string) ItineraryRepo {
	return &dynamoItineraryRepo{client: client, table: table}
}

func (r *dynamoItineraryRepo) List(ctx context.Context) ([]domain.ItineraryItem, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.List: %w", err)
	}

	var items []domain.ItineraryItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.List: unmarshal: %w", err)
	}
	return items, nil
}

func (r *dynamoItineraryRepo) GetByDate(ctx context.Context, date string) (domain.ItineraryItem, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       itineraryKey(date),
	})
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.GetByDate: %w", err)
	}
	if out.Item == nil {
		return domain.ItineraryItem{}, domain.ErrNotFound
	}

	var item domain.ItineraryItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.GetByDate: unmarshal: %w", err)
	}
	return item, nil
}

func (r *dynamoItineraryRepo) Update(ctx context.Context, date string, upd domain.ItineraryUpdate) (domain.ItineraryItem, error) {
	var update expression.UpdateBuilder
	for name, value := range upd.Fields() {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Update: build expression: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       itineraryKey(date),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}

	var item domain.ItineraryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Update: unmarshal: %w", err)
	}
	return item, nil
}

func (r *dynamoItineraryRepo) PutBatch(ctx context.Context, items []domain.ItineraryItem) error {
	for start := 0; start < len(items); start += maxBatchSize {
		end := min(start+maxBatchSize, len(items))

		requests := make([]types.WriteRequest, 0, end-start)
		for _, item := range items[start:end] {
			av, err := attributevalue.MarshalMap(item)
			if err != nil {
				return fmt.Errorf("repo.ItineraryRepo.PutBatch: marshal %s: %w", item.Date, err)
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.table: requests},
		})
		if err != nil {
			return fmt.Errorf("repo.ItineraryRepo.PutBatch: %w", err)
		}
	}
	return nil
}

// itineraryKey builds the partition key map for the itinerary table.
func itineraryKey(date string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"date": &types.AttributeValueMemberS{Value: date},
	}
}
