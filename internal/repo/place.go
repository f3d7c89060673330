package repo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// cityIndexName is the GSI on the places table keyed by city.
const cityIndexName = "CityIndex"

// PlaceRepo defines the persistence operations for places.
type PlaceRepo interface {
	// Create stores a fully-populated place.
	Create(ctx context.Context, place domain.Place) error

	// List returns the first scan page of all places.
	List(ctx context.Context) ([]domain.Place, error)

	// ListByCity queries the city GSI and returns all places in the
	// given city. An empty result is not an error at this layer.
	ListByCity(ctx context.Context, city string) ([]domain.Place, error)
}

// dynamoPlaceRepo is the DynamoDB implementation of PlaceRepo.
type dynamoPlaceRepo struct {
	client DynamoDBAPI
	table  string
}

// NewPlaceRepo constructs a PlaceRepo backed by the given client and table.
func NewPlaceRepo(client DynamoDBAPI, table string) PlaceRepo {
	return &dynamoPlaceRepo{client: client, table: table}
}

func (r *dynamoPlaceRepo) Create(ctx context.Context, place domain.Place) error {
	av, err := attributevalue.MarshalMap(place)
	if err != nil {
		return fmt.Errorf("repo.PlaceRepo.Create: marshal: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("repo.PlaceRepo.Create: %w", err)
	}
	return nil
}

func (r *dynamoPlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: %w", err)
	}

	var places []domain.Place
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &places); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: unmarshal: %w", err)
	}
	return places, nil
}

func (r *dynamoPlaceRepo) ListByCity(ctx context.Context, city string) ([]domain.Place, error) {
	keyCondition := expression.Key("city").Equal(expression.Value(city))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCity: build expression: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(cityIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCity: %w", err)
	}

	var places []domain.Place
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &places); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCity: unmarshal: %w", err)
	}
	return places, nil
}
