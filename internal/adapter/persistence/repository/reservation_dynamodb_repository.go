package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
	"visitme_reservas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReservationsTableName = "reservations"
	defaultSlotsTableName        = "reservation_slots"

	reservationsSpaceDateIndex    = "space_date-index"
	reservationsResidentDateIndex = "resident_date-index"
)

type reservationItem struct {
	ID                 string  `dynamodbav:"id"`
	CommunityID        string  `dynamodbav:"community_id"`
	SpaceID            string  `dynamodbav:"space_id"`
	DepartmentID       string  `dynamodbav:"department_id"`
	ResidentID         string  `dynamodbav:"resident_id"`
	SlotSpace          string  `dynamodbav:"slot_space"`
	Date               string  `dynamodbav:"date"`
	Block              string  `dynamodbav:"block"`
	DurationHours      int     `dynamodbav:"duration_hours"`
	Status             string  `dynamodbav:"status"`
	CostApplied        float64 `dynamodbav:"cost_applied"`
	IsGraceUse         bool    `dynamodbav:"is_grace_use"`
	CancellationReason string  `dynamodbav:"cancellation_reason,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
}

// slotItem is the uniqueness marker for one (community, space, date, block)
// tuple. It exists exactly while a non-cancelled reservation holds the slot.
type slotItem struct {
	SlotID        string `dynamodbav:"slot_id"`
	ReservationID string `dynamodbav:"reservation_id"`
}

// ReservationDynamoRepository persists Reservation entities in DynamoDB.
//
// Table requirements:
//   - reservations: PK id (string)
//   - GSI space_date-index (PK: slot_space, SK: date)
//   - GSI resident_date-index (PK: resident_id, SK: date)
//   - reservation_slots: PK slot_id (string)
//
// The slot item is created in the same TransactWriteItems as the reservation
// row under attribute_not_exists(slot_id), and deleted when the reservation
// is cancelled. That conditional put is the authoritative defense against
// two devices racing to book the same slot.

type ReservationDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	slotsTable string
}

var _ interfaces.IReservationRepository = (*ReservationDynamoRepository)(nil)

func NewReservationDynamoRepository(ddb *dynamodb.Client) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("RESERVATIONS_TABLE", defaultReservationsTableName),
		slotsTable: getenvDefault("RESERVATION_SLOTS_TABLE", defaultSlotsTableName),
	}
}

func slotKey(communityID, spaceID string, date time.Time, block entities.ReservationBlock) string {
	return strings.Join([]string{communityID, spaceID, schedule.FormatDate(date), string(block)}, "#")
}

func spaceKey(communityID, spaceID string) string {
	return communityID + "#" + spaceID
}

func (r *ReservationDynamoRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	it := toReservationItem(res)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Reservation{}, err
	}

	slot := slotItem{
		SlotID:        slotKey(res.CommunityID, res.SpaceID, res.Date, res.Block),
		ReservationID: res.ID,
	}
	slotAV, err := attributevalue.MarshalMap(slot)
	if err != nil {
		return entities.Reservation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.slotsTable),
					Item:                slotAV,
					ConditionExpression: aws.String("attribute_not_exists(#sid)"),
					ExpressionAttributeNames: map[string]string{
						"#sid": "slot_id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Reservation{}, interfaces.ErrSlotUnavailable
		}
		return entities.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reservation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reservation{}, nil
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

func (r *ReservationDynamoRepository) FindActiveBySlot(ctx context.Context, communityID, spaceID string, date time.Time, block entities.ReservationBlock) (entities.Reservation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsSpaceDateIndex),
		KeyConditionExpression: aws.String("slot_space = :ss AND #date = :d"),
		FilterExpression:       aws.String("#block = :b AND #status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#date":   "date",
			"#block":  "block",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ss":        &types.AttributeValueMemberS{Value: spaceKey(communityID, spaceID)},
			":d":         &types.AttributeValueMemberS{Value: schedule.FormatDate(date)},
			":b":         &types.AttributeValueMemberS{Value: string(block)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.ReservationStatusCancelado)},
		},
	})
	if err != nil {
		return entities.Reservation{}, err
	}

	for _, raw := range out.Items {
		var it reservationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Reservation{}, err
		}
		res := fromReservationItem(it)
		if res.Active() {
			return res, nil
		}
	}
	return entities.Reservation{}, nil
}

func (r *ReservationDynamoRepository) ListForSpaceBetween(ctx context.Context, communityID, spaceID string, from, to time.Time) ([]entities.Reservation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsSpaceDateIndex),
		KeyConditionExpression: aws.String("slot_space = :ss AND #date BETWEEN :from AND :to"),
		FilterExpression:       aws.String("#status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#date":   "date",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ss":        &types.AttributeValueMemberS{Value: spaceKey(communityID, spaceID)},
			":from":      &types.AttributeValueMemberS{Value: schedule.FormatDate(from)},
			":to":        &types.AttributeValueMemberS{Value: schedule.FormatDate(to)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.ReservationStatusCancelado)},
		},
	}

	items := make([]entities.Reservation, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reservationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromReservationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ReservationDynamoRepository) LastByResident(ctx context.Context, communityID, residentID string) (entities.Reservation, error) {
	// No Limit here: the filter runs after the key scan, so limiting the
	// page could let a cancelled row mask the latest active one.
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsResidentDateIndex),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		FilterExpression:       aws.String("community_id = :cid AND #status <> :cancelled"),
		ScanIndexForward:       aws.Bool(false),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":       &types.AttributeValueMemberS{Value: residentID},
			":cid":       &types.AttributeValueMemberS{Value: communityID},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.ReservationStatusCancelado)},
		},
	}

	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return entities.Reservation{}, err
		}
		for _, raw := range out.Items {
			var it reservationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.Reservation{}, err
			}
			res := fromReservationItem(it)
			if res.Active() {
				return res, nil
			}
		}
		if out.LastEvaluatedKey == nil {
			return entities.Reservation{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ReservationDynamoRepository) CountCreatedSince(ctx context.Context, communityID, residentID string, since time.Time) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsResidentDateIndex),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		FilterExpression:       aws.String("community_id = :cid AND created_at >= :since AND #status <> :cancelled"),
		Select:                 types.SelectCount,
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":       &types.AttributeValueMemberS{Value: residentID},
			":cid":       &types.AttributeValueMemberS{Value: communityID},
			":since":     &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.ReservationStatusCancelado)},
		},
	}

	total := 0
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ReservationDynamoRepository) ListByResident(ctx context.Context, communityID, residentID string) ([]entities.Reservation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsResidentDateIndex),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		FilterExpression:       aws.String("community_id = :cid"),
		ScanIndexForward:       aws.Bool(false),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: residentID},
			":cid": &types.AttributeValueMemberS{Value: communityID},
		},
	}

	items := make([]entities.Reservation, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reservationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromReservationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ReservationDynamoRepository) Cancel(ctx context.Context, id, residentID, reason string) (entities.Reservation, error) {
	res, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Reservation{}, err
	}
	if res.ID == "" {
		return entities.Reservation{}, nil
	}

	// The conditional expression re-checks ownership and status inside the
	// transaction, so the row cannot have changed between the read above
	// and this write without the whole transaction failing.
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND resident_id = :rid AND #status <> :cancelled"),
					UpdateExpression:    aws.String("SET #status = :cancelled, cancellation_reason = :reason"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":rid":       &types.AttributeValueMemberS{Value: residentID},
						":cancelled": &types.AttributeValueMemberS{Value: string(entities.ReservationStatusCancelado)},
						":reason":    &types.AttributeValueMemberS{Value: reason},
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.slotsTable),
					Key: map[string]types.AttributeValue{
						"slot_id": &types.AttributeValueMemberS{Value: slotKey(res.CommunityID, res.SpaceID, res.Date, res.Block)},
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Reservation{}, nil
		}
		return entities.Reservation{}, err
	}

	res.Status = entities.ReservationStatusCancelado
	res.CancellationReason = reason
	return res, nil
}

// isConditionalCancellation reports whether a transaction failed because one
// of its condition expressions was not met, as opposed to a transport or
// capacity error.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		var cfe *types.ConditionalCheckFailedException
		return errors.As(err, &cfe)
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toReservationItem(r entities.Reservation) reservationItem {
	return reservationItem{
		ID:                 r.ID,
		CommunityID:        r.CommunityID,
		SpaceID:            r.SpaceID,
		DepartmentID:       r.DepartmentID,
		ResidentID:         r.ResidentID,
		SlotSpace:          spaceKey(r.CommunityID, r.SpaceID),
		Date:               schedule.FormatDate(r.Date),
		Block:              string(r.Block),
		DurationHours:      r.DurationHours,
		Status:             string(r.Status),
		CostApplied:        r.CostApplied,
		IsGraceUse:         r.IsGraceUse,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReservationItem(it reservationItem) entities.Reservation {
	date, _ := schedule.ParseDate(it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Reservation{
		ID:                 it.ID,
		CommunityID:        it.CommunityID,
		SpaceID:            it.SpaceID,
		DepartmentID:       it.DepartmentID,
		ResidentID:         it.ResidentID,
		Date:               date,
		Block:              entities.ReservationBlock(it.Block),
		DurationHours:      it.DurationHours,
		Status:             entities.ReservationStatus(it.Status),
		CostApplied:        it.CostApplied,
		IsGraceUse:         it.IsGraceUse,
		CancellationReason: it.CancellationReason,
		CreatedAt:          createdAt,
	}
}
