package registrations

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/hknair/leadgate/internal/domain/models"
)

// Dynamo is the DynamoDB-backed Store. One table, partition key "id".
//
// Dedup lookups and listings run as filtered scans: at this service's data
// volume (a lead inbox, not an event stream) a scan is cheaper to operate
// than maintaining two GSIs. Listings sort and slice the filtered set in
// memory.
type Dynamo struct {
	client *dynamodb.Client
	table  string
}

// NewDynamo wraps a DynamoDB client and table name.
func NewDynamo(client *dynamodb.Client, table string) *Dynamo {
	if table == "" {
		table = CollectionName
	}
	return &Dynamo{client: client, table: table}
}

// dynamoItem is the wire form of a registration in DynamoDB. created_at is
// epoch milliseconds so the dedup range comparison stays numeric.
type dynamoItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Phone       string `dynamodbav:"phone"`
	Email       string `dynamodbav:"email"`
	State       string `dynamodbav:"state"`
	City        string `dynamodbav:"city"`
	InquiryType string `dynamodbav:"inquiry_type"`
	Status      string `dynamodbav:"status"`
	Notes       string `dynamodbav:"notes"`
	CreatedAt   int64  `dynamodbav:"created_at"`
}

func toItem(reg models.Registration) dynamoItem {
	return dynamoItem{
		ID:          reg.ID,
		Name:        reg.Name,
		Phone:       reg.Phone,
		Email:       reg.Email,
		State:       reg.State,
		City:        reg.City,
		InquiryType: reg.InquiryType,
		Status:      reg.Status,
		Notes:       reg.Notes,
		CreatedAt:   reg.CreatedAt.UnixMilli(),
	}
}

func (it dynamoItem) toModel() models.Registration {
	return models.Registration{
		ID:          it.ID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		State:       it.State,
		City:        it.City,
		InquiryType: it.InquiryType,
		Status:      it.Status,
		Notes:       it.Notes,
		CreatedAt:   time.UnixMilli(it.CreatedAt).UTC(),
	}
}

func (s *Dynamo) Insert(ctx context.Context, reg models.Registration) (models.Registration, error) {
	reg.ID = uuid.NewString()
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toItem(reg))
	if err != nil {
		return models.Registration{}, fmt.Errorf("registrations insert: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return models.Registration{}, dynamoErr("insert", err)
	}
	return reg, nil
}

func (s *Dynamo) ExistsSince(ctx context.Context, field Field, value string, since time.Time) (bool, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.table),
		FilterExpression: aws.String("#f = :v AND #c >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#f": string(field),
			"#c": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":     &types.AttributeValueMemberS{Value: value},
			":since": &types.AttributeValueMemberN{Value: strconv.FormatInt(since.UnixMilli(), 10)},
		},
		Select: types.SelectCount,
	}
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return false, dynamoErr("exists", err)
		}
		if out.Count > 0 {
			return true, nil
		}
		if out.LastEvaluatedKey == nil {
			return false, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (s *Dynamo) GetByID(ctx context.Context, id string) (models.Registration, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return models.Registration{}, dynamoErr("get", err)
	}
	if len(out.Item) == 0 {
		return models.Registration{}, ErrNoDocument
	}
	var it dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return models.Registration{}, fmt.Errorf("registrations get: %w", err)
	}
	return it.toModel(), nil
}

func (s *Dynamo) Update(ctx context.Context, id string, p Patch) (models.Registration, error) {
	expr, names, values := updateExpression(p)
	if expr == "" {
		return s.GetByID(ctx, id)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return models.Registration{}, ErrNoDocument
		}
		return models.Registration{}, dynamoErr("update", err)
	}
	var it dynamoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return models.Registration{}, fmt.Errorf("registrations update: %w", err)
	}
	return it.toModel(), nil
}

// updateExpression builds the SET expression for a Patch. Empty expression
// means the patch carried nothing.
func updateExpression(p Patch) (string, map[string]string, map[string]types.AttributeValue) {
	expr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if p.Status != nil {
		expr = "SET #s = :s"
		names["#s"] = "status"
		values[":s"] = &types.AttributeValueMemberS{Value: *p.Status}
	}
	if p.Notes != nil {
		if expr == "" {
			expr = "SET #n = :n"
		} else {
			expr += ", #n = :n"
		}
		names["#n"] = "notes"
		values[":n"] = &types.AttributeValueMemberS{Value: *p.Notes}
	}
	return expr, names, values
}

func (s *Dynamo) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Registration, int64, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	applyListFilter(input, f)

	var items []dynamoItem
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, 0, dynamoErr("list", err)
		}
		var page []dynamoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, 0, fmt.Errorf("registrations list: %w", err)
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt > items[j].CreatedAt
		}
		return items[i].ID > items[j].ID
	})

	total := int64(len(items))
	if skip >= total {
		return []models.Registration{}, total, nil
	}
	items = items[skip:]
	if limit > 0 && int64(len(items)) > limit {
		items = items[:limit]
	}
	regs := make([]models.Registration, len(items))
	for i, it := range items {
		regs[i] = it.toModel()
	}
	return regs, total, nil
}

func applyListFilter(input *dynamodb.ScanInput, f Filter) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	expr := ""
	if f.Status != "" {
		expr = "#s = :s"
		names["#s"] = "status"
		values[":s"] = &types.AttributeValueMemberS{Value: f.Status}
	}
	if f.InquiryType != "" {
		if expr != "" {
			expr += " AND "
		}
		expr += "#t = :t"
		names["#t"] = "inquiry_type"
		values[":t"] = &types.AttributeValueMemberS{Value: f.InquiryType}
	}
	if expr == "" {
		return
	}
	input.FilterExpression = aws.String(expr)
	input.ExpressionAttributeNames = names
	input.ExpressionAttributeValues = values
}

func (s *Dynamo) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// dynamoErr wraps SDK failures, tagging connectivity and timeout problems
// with ErrUnavailable.
func dynamoErr(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("registrations %s: %w", op, err)
}
