package repository

import (
	"context"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSpacesTableName = "common_spaces"
	spacesCommunityIndex   = "community_id-index"
)

type commonSpaceItem struct {
	ID                 string  `dynamodbav:"id"`
	CommunityID        string  `dynamodbav:"community_id"`
	Name               string  `dynamodbav:"name"`
	Description        string  `dynamodbav:"description,omitempty"`
	EventPrice         float64 `dynamodbav:"event_price"`
	BlockDurationHours int     `dynamodbav:"block_duration_hours"`
	Active             bool    `dynamodbav:"active"`
	ImageRef           string  `dynamodbav:"image_ref,omitempty"`
}

// CommonSpaceDynamoRepository reads the common-space catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: community_id-index (PK: community_id)

type CommonSpaceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommonSpaceRepository = (*CommonSpaceDynamoRepository)(nil)

func NewCommonSpaceDynamoRepository(ddb *dynamodb.Client) *CommonSpaceDynamoRepository {
	return &CommonSpaceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMON_SPACES_TABLE", defaultSpacesTableName),
	}
}

func (r *CommonSpaceDynamoRepository) GetByID(ctx context.Context, id string) (entities.CommonSpace, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CommonSpace{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommonSpace{}, nil
	}

	var it commonSpaceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommonSpace{}, err
	}
	return fromCommonSpaceItem(it), nil
}

func (r *CommonSpaceDynamoRepository) ListActive(ctx context.Context, communityID string) ([]entities.CommonSpace, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(spacesCommunityIndex),
		KeyConditionExpression: aws.String("community_id = :cid"),
		FilterExpression:       aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":  &types.AttributeValueMemberS{Value: communityID},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CommonSpace, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commonSpaceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCommonSpaceItem(it))
	}
	return items, nil
}

func fromCommonSpaceItem(it commonSpaceItem) entities.CommonSpace {
	return entities.CommonSpace{
		ID:                 it.ID,
		CommunityID:        it.CommunityID,
		Name:               it.Name,
		Description:        it.Description,
		EventPrice:         it.EventPrice,
		BlockDurationHours: it.BlockDurationHours,
		Active:             it.Active,
		ImageRef:           it.ImageRef,
	}
}
