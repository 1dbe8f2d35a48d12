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
	defaultDepartmentsTableName = "department_links"
	departmentsResidentIndex    = "resident_id-index"
)

// departmentLinkItem is one resident-to-unit membership row. The same
// department appears once per linked resident, each link carrying its own
// eligibility flags.
type departmentLinkItem struct {
	ID                  string `dynamodbav:"id"`
	ResidentID          string `dynamodbav:"resident_id"`
	CommunityID         string `dynamodbav:"community_id"`
	Label               string `dynamodbav:"label"`
	CanReserve          bool   `dynamodbav:"can_reserve"`
	ReservationsBlocked bool   `dynamodbav:"reservations_blocked"`
	Active              bool   `dynamodbav:"active"`
}

// DepartmentDynamoRepository reads resident department memberships from
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: resident_id-index (PK: resident_id)

type DepartmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepartmentRepository = (*DepartmentDynamoRepository)(nil)

func NewDepartmentDynamoRepository(ddb *dynamodb.Client) *DepartmentDynamoRepository {
	return &DepartmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPARTMENT_LINKS_TABLE", defaultDepartmentsTableName),
	}
}

func (r *DepartmentDynamoRepository) ListByResident(ctx context.Context, communityID, residentID string) ([]entities.Department, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(departmentsResidentIndex),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		FilterExpression:       aws.String("community_id = :cid AND active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":  &types.AttributeValueMemberS{Value: residentID},
			":cid":  &types.AttributeValueMemberS{Value: communityID},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Department, 0, len(out.Items))
	for _, raw := range out.Items {
		var it departmentLinkItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.Department{
			ID:                  it.ID,
			CommunityID:         it.CommunityID,
			Label:               it.Label,
			CanReserve:          it.CanReserve,
			ReservationsBlocked: it.ReservationsBlocked,
			Active:              it.Active,
		})
	}
	return items, nil
}
