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

const defaultCommunitiesTableName = "communities"

type communityItem struct {
	ID               string `dynamodbav:"id"`
	BookingBlockDays int    `dynamodbav:"booking_block_days"`
	GraceDays        int    `dynamodbav:"grace_days"`
	Timezone         string `dynamodbav:"timezone,omitempty"`
}

// CommunityDynamoRepository reads per-community reservation policy from
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CommunityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommunityRepository = (*CommunityDynamoRepository)(nil)

func NewCommunityDynamoRepository(ddb *dynamodb.Client) *CommunityDynamoRepository {
	return &CommunityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMUNITIES_TABLE", defaultCommunitiesTableName),
	}
}

func (r *CommunityDynamoRepository) GetPolicy(ctx context.Context, communityID string) (entities.CommunityPolicy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: communityID},
		},
	})
	if err != nil {
		return entities.CommunityPolicy{}, err
	}
	if len(out.Item) == 0 {
		// A missing community row means no cooldown and no grace allowance;
		// timezone falls back to the platform default.
		return entities.CommunityPolicy{CommunityID: communityID}, nil
	}

	var it communityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommunityPolicy{}, err
	}
	return entities.CommunityPolicy{
		CommunityID:      it.ID,
		BookingBlockDays: it.BookingBlockDays,
		GraceDays:        it.GraceDays,
		Timezone:         it.Timezone,
	}, nil
}
