package storage

import (
	"context"
	"fmt"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type slotItem struct {
	Key   string `dynamodbav:"PK"`
	Value []byte `dynamodbav:"Value"`
}

// DynamoKeyValueStorage stores every slot as one item keyed by PK.
type DynamoKeyValueStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	pk, err := attributevalue.MarshalMap(map[string]string{"PK": key})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal key %q: %v", key, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.TableName,
		Key:            pk,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logging.Log.Errorf("KV: GetItem for %q failed: %v", key, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrKeyNotFound
	}

	var item slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Errorf("KV: failed to unmarshal item %q: %v", key, err)
		return nil, err
	}
	return item.Value, nil
}

func (s *DynamoKeyValueStorage) Set(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(slotItem{Key: key, Value: value})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal item %q: %v", key, err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("KV: PutItem for %q failed: %v", key, err)
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (s *DynamoKeyValueStorage) Delete(ctx context.Context, key string) error {
	pk, err := attributevalue.MarshalMap(map[string]string{"PK": key})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal delete key %q: %v", key, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       pk,
	})
	if err != nil {
		logging.Log.Errorf("KV: DeleteItem for %q failed: %v", key, err)
		return err
	}
	return nil
}
