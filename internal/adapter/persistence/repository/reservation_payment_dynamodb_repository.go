package repository

import (
	"context"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "reservation_payments"
	paymentsReservationIDIndex = "reservation_id-index"
)

type reservationPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ReservationID      string                 `dynamodbav:"reservation_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ReservationPaymentDynamoRepository persists ReservationPayment entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reservation_id-index (PK: reservation_id)

type ReservationPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReservationPaymentRepository = (*ReservationPaymentDynamoRepository)(nil)

func NewReservationPaymentDynamoRepository(ddb *dynamodb.Client) *ReservationPaymentDynamoRepository {
	return &ReservationPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESERVATION_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *ReservationPaymentDynamoRepository) Create(ctx context.Context, p entities.ReservationPayment) (entities.ReservationPayment, error) {
	it := toReservationPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ReservationPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ReservationPayment{}, err
	}
	return p, nil
}

func (r *ReservationPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReservationPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReservationPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReservationPayment{}, nil
	}

	var it reservationPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReservationPayment{}, err
	}
	return fromReservationPaymentItem(it), nil
}

func (r *ReservationPaymentDynamoRepository) ListByReservationID(ctx context.Context, reservationID string) ([]entities.ReservationPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsReservationIDIndex),
		KeyConditionExpression: aws.String("reservation_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: reservationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ReservationPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reservationPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReservationPaymentItem(it))
	}
	return items, nil
}

func toReservationPaymentItem(p entities.ReservationPayment) reservationPaymentItem {
	return reservationPaymentItem{
		ID:                 p.ID,
		ReservationID:      p.ReservationID,
		Amount:             p.Amount,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromReservationPaymentItem(it reservationPaymentItem) entities.ReservationPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.ReservationPayment{
		ID:                 it.ID,
		ReservationID:      it.ReservationID,
		Amount:             it.Amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
