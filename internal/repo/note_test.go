package repo_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/repo"
)

const testNotesTable = "notes-test"

func TestNoteRepo_Create(t *testing.T) {
	note := domain.Note{
		ID:        "note-1",
		Date:      "18/06/25",
		Content:   "try the bakery near the station",
		CreatedAt: "2025-06-01T10:00:00Z",
	}

	client := newMockDynamoClient(t)
	client.put = func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
		assert.Equal(t, testNotesTable, *params.TableName)

		var stored domain.Note
		require.NoError(t, attributevalue.UnmarshalMap(params.Item, &stored))
		assert.Equal(t, note, stored)
		return &dynamodb.PutItemOutput{}, nil
	}

	err := repo.NewNoteRepo(client, testNotesTable).Create(context.Background(), note)

	require.NoError(t, err)
}

func TestNoteRepo_ListByDate_QueriesDateIndex(t *testing.T) {
	client := newMockDynamoClient(t)
	client.query = func(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		require.NotNil(t, params.IndexName)
		assert.Equal(t, "DateIndex", *params.IndexName)

		// The key condition must bind the requested date.
		var bound []string
		for _, v := range params.ExpressionAttributeValues {
			if s, ok := v.(*types.AttributeValueMemberS); ok {
				bound = append(bound, s.Value)
			}
		}
		assert.Contains(t, bound, "18/06/25")

		av, err := attributevalue.MarshalMap(domain.Note{ID: "note-1", Date: "18/06/25", Content: "hi"})
		require.NoError(t, err)
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
	}

	notes, err := repo.NewNoteRepo(client, testNotesTable).ListByDate(context.Background(), "18/06/25")

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "note-1", notes[0].ID)
}

func TestNoteRepo_ListByDate_NoMatches(t *testing.T) {
	client := newMockDynamoClient(t)
	client.query = func(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{}, nil
	}

	notes, err := repo.NewNoteRepo(client, testNotesTable).ListByDate(context.Background(), "19/06/25")

	require.NoError(t, err)
	assert.Empty(t, notes)
}
