package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"todoapi/internal/core/domain"
	"todoapi/pkg/db/cursor"
)

// TodoRepository is the item access layer. Items live in a single table
// keyed (userId, todoId); listings go through an owner index keyed
// (userId, createdAt) so pages come back newest first.
type TodoRepository struct {
	client *dynamodb.Client
	table  string
	index  string
}

func NewTodoRepository(client *dynamodb.Client, table string, index string) *TodoRepository {
	return &TodoRepository{client: client, table: table, index: index}
}

// List returns at most limit items owned by userID, newest first, resuming
// after startKey when present. The projection excludes userId: ownership is
// addressing, not payload. A nil returned key means the listing is done.
func (r *TodoRepository) List(ctx context.Context, userID string, limit int32, startKey *cursor.Key) ([]domain.Todo, *cursor.Key, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(r.index),
		Limit:                  aws.Int32(limit),
		KeyConditionExpression: aws.String("userId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		ProjectionExpression:     aws.String("todoId,createdAt,#name,dueDate,done,attachmentUrl"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
		ScanIndexForward:         aws.Bool(false),
	}

	if startKey != nil {
		input.ExclusiveStartKey = continuationAttributes(startKey)
	}

	result, err := r.client.Query(ctx, input)

	if err != nil {
		return nil, nil, fmt.Errorf("query todos: %w", err)
	}

	items := make([]domain.Todo, 0, len(result.Items))

	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, nil, fmt.Errorf("unmarshal todos: %w", err)
	}

	return items, continuationKey(result.LastEvaluatedKey), nil
}

// Exists is the point lookup by composite key. A missing item is a normal
// outcome, reported through the bool.
func (r *TodoRepository) Exists(ctx context.Context, todoID string, userID string) (domain.Todo, bool, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       compositeKey(todoID, userID),
	})

	if err != nil {
		return domain.Todo{}, false, fmt.Errorf("get todo: %w", err)
	}

	if len(result.Item) == 0 {
		return domain.Todo{}, false, nil
	}

	var todo domain.Todo

	if err := attributevalue.UnmarshalMap(result.Item, &todo); err != nil {
		return domain.Todo{}, false, fmt.Errorf("unmarshal todo: %w", err)
	}

	return todo, true, nil
}

// Create writes the record as given. Collisions are not checked; the id
// generator is trusted to be collision free.
func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	item, err := attributevalue.MarshalMap(todo)

	if err != nil {
		return domain.Todo{}, fmt.Errorf("marshal todo: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})

	if err != nil {
		return domain.Todo{}, fmt.Errorf("put todo: %w", err)
	}

	return todo, nil
}

// Update replaces the mutable attributes in full. It does not re-check
// existence; the caller is expected to have verified the key first.
func (r *TodoRepository) Update(ctx context.Context, userID string, todoID string, update domain.TodoUpdate) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              compositeKey(todoID, userID),
		UpdateExpression: aws.String("SET #n = :name, dueDate = :dueDate, done = :done, attachmentUrl = :attachmentUrl"),
		ExpressionAttributeNames: map[string]string{
			"#n": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":          &types.AttributeValueMemberS{Value: update.Name},
			":dueDate":       &types.AttributeValueMemberS{Value: update.DueDate},
			":done":          &types.AttributeValueMemberBOOL{Value: update.Done},
			":attachmentUrl": &types.AttributeValueMemberS{Value: update.AttachmentURL},
		},
	})

	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	return nil
}

// Delete removes the item unconditionally. Deleting a missing key is a
// no-op, not an error.
func (r *TodoRepository) Delete(ctx context.Context, todoID string, userID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       compositeKey(todoID, userID),
	})

	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	return nil
}

func compositeKey(todoID string, userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"todoId": &types.AttributeValueMemberS{Value: todoID},
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

func continuationAttributes(key *cursor.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"todoId":    &types.AttributeValueMemberS{Value: key.TodoID},
		"userId":    &types.AttributeValueMemberS{Value: key.UserID},
		"createdAt": &types.AttributeValueMemberS{Value: key.CreatedAt},
	}
}

func continuationKey(attrs map[string]types.AttributeValue) *cursor.Key {
	if len(attrs) == 0 {
		return nil
	}

	key := &cursor.Key{}

	if v, ok := attrs["todoId"].(*types.AttributeValueMemberS); ok {
		key.TodoID = v.Value
	}

	if v, ok := attrs["userId"].(*types.AttributeValueMemberS); ok {
		key.UserID = v.Value
	}

	if v, ok := attrs["createdAt"].(*types.AttributeValueMemberS); ok {
		key.CreatedAt = v.Value
	}

	return key
}
