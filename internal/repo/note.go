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

// dateIndexName is the GSI on the notes table keyed by date.
const dateIndexName = "DateIndex"

// NoteRepo defines the persistence operations for notes.
type NoteRepo interface {
	// Create stores a fully-populated note.
	Create(ctx context.Context, note domain.Note) error

	// List returns the first scan page of all notes.
	List(ctx context.Context) ([]domain.Note, error)

	// ListByDate queries the date GSI and returns all notes for the
	// given DD/MM/YY date. An empty result is not an error.
	ListByDate(ctx context.Context, date string) ([]domain.Note, error)
}

// dynamoNoteRepo is the DynamoDB implementation of NoteRepo.
type dynamoNoteRepo struct {
	client DynamoDBAPI
	table  string
}

// NewNoteRepo constructs a NoteRepo backed by the given client and table.
func NewNoteRepo(client DynamoDBAPI, table string) NoteRepo {
	return &dynamoNoteRepo{client: client, table: table}
}

func (r *dynamoNoteRepo) Create(ctx context.Context, note domain.Note) error {
	av, err := attributevalue.MarshalMap(note)
	if err != nil {
		return fmt.Errorf("repo.NoteRepo.Create: marshal: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("repo.NoteRepo.Create: %w", err)
	}
	return nil
}

func (r *dynamoNoteRepo) List(ctx context.Context) ([]domain.Note, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.List: %w", err)
	}

	var notes []domain.Note
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notes); err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.List: unmarshal: %w", err)
	}
	return notes, nil
}

func (r *dynamoNoteRepo) ListByDate(ctx context.Context, date string) ([]domain.Note, error) {
	// "date" is a DynamoDB reserved word; the expression builder aliases
	// it through ExpressionAttributeNames automatically.
	keyCondition := expression.Key("date").Equal(expression.Value(date))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.ListByDate: build expression: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(dateIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.ListByDate: %w", err)
	}

	var notes []domain.Note
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notes); err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.ListByDate: unmarshal: %w", err)
	}
	return notes, nil
}
