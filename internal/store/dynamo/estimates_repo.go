package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	json "github.com/goccy/go-json"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

// EstimateItem stores the pricing result as a JSON blob. The result is a
// frozen snapshot, never queried by field, so a blob keeps the item flat.
type EstimateItem struct {
	ID           string `dynamodbav:"id"`
	SessionID    string `dynamodbav:"session_id"`
	State        string `dynamodbav:"state"`
	DriverCount  int    `dynamodbav:"driver_count"`
	VehicleCount int    `dynamodbav:"vehicle_count"`
	ResultJSON   string `dynamodbav:"result_json"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	ExpiresAt    string `dynamodbav:"expires_at"`
}

func (i EstimateItem) ToCore() (core.Estimate, error) {
	var result core.PricingResult
	if err := json.Unmarshal([]byte(i.ResultJSON), &result); err != nil {
		return core.Estimate{}, fmt.Errorf("estimates.decodeResult: %w", err)
	}
	createdAt, _ := time.Parse(time.RFC3339, i.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339, i.ExpiresAt)
	return core.Estimate{
		ID:           i.ID,
		SessionID:    i.SessionID,
		State:        i.State,
		DriverCount:  i.DriverCount,
		VehicleCount: i.VehicleCount,
		Result:       result,
		Status:       core.EstimateStatus(i.Status),
		CreatedAt:    createdAt,
		ExpiresAt:    expiresAt,
	}, nil
}

func estimateItemFromCore(e core.Estimate) (EstimateItem, error) {
	resultJSON, err := json.Marshal(e.Result)
	if err != nil {
		return EstimateItem{}, fmt.Errorf("estimates.encodeResult: %w", err)
	}
	return EstimateItem{
		ID:           e.ID,
		SessionID:    e.SessionID,
		State:        e.State,
		DriverCount:  e.DriverCount,
		VehicleCount: e.VehicleCount,
		ResultJSON:   string(resultJSON),
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		ExpiresAt:    e.ExpiresAt.Format(time.RFC3339),
	}, nil
}

type EstimateRepo struct {
	client *dynamodb.Client
}

func NewEstimateRepo(client *dynamodb.Client) *EstimateRepo {
	return &EstimateRepo{client: client}
}

func (r *EstimateRepo) Create(ctx context.Context, e core.Estimate) error {
	item, err := estimateItemFromCore(e)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("estimates.marshal: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("estimates.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TableEstimates),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return core.ErrConflict
		}
		return fmt.Errorf("estimates.putItem: %w", err)
	}

	return nil
}

func (r *EstimateRepo) Get(ctx context.Context, id string) (core.Estimate, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableEstimates),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.Estimate{}, fmt.Errorf("estimates.getItem: %w", err)
	}

	if out.Item == nil {
		return core.Estimate{}, core.ErrEstimateNotFound
	}

	var item EstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Estimate{}, fmt.Errorf("estimates.unmarshal: %w", err)
	}

	return item.ToCore()
}

func (r *EstimateRepo) FindRecent(ctx context.Context, limit int) ([]core.Estimate, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(TableEstimates),
	})
	if err != nil {
		return nil, fmt.Errorf("estimates.scan: %w", err)
	}

	var items []EstimateItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("estimates.unmarshal: %w", err)
	}

	// RFC3339 timestamps sort lexically
	sort.Slice(items, func(a, b int) bool {
		return items[a].CreatedAt > items[b].CreatedAt
	})
	if len(items) > limit {
		items = items[:limit]
	}

	estimates := make([]core.Estimate, 0, len(items))
	for _, item := range items {
		e, err := item.ToCore()
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, nil
}

func (r *EstimateRepo) ExpireEstimates(ctx context.Context, before time.Time) (int64, error) {
	cond := expression.Key("status").Equal(expression.Value(string(core.EstimateStatusActive))).
		And(expression.Key("created_at").LessThan(expression.Value(before.Format(time.RFC3339))))
	filter := expression.Name("expires_at").LessThan(expression.Value(before.Format(time.RFC3339)))
	expr, err := expression.NewBuilder().WithKeyCondition(cond).WithFilter(filter).Build()
	if err != nil {
		return 0, fmt.Errorf("estimates.buildExpr: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(TableEstimates),
		IndexName:                 aws.String(GSIEstimatesStatus),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return 0, fmt.Errorf("estimates.query: %w", err)
	}

	var expired int64
	for _, raw := range out.Items {
		var item EstimateItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return expired, fmt.Errorf("estimates.unmarshal: %w", err)
		}

		update := expression.Set(expression.Name("status"),
			expression.Value(string(core.EstimateStatusExpired)))
		updExpr, err := expression.NewBuilder().WithUpdate(update).Build()
		if err != nil {
			return expired, fmt.Errorf("estimates.buildExpr: %w", err)
		}

		_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(TableEstimates),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: item.ID},
			},
			UpdateExpression:          updExpr.Update(),
			ExpressionAttributeNames:  updExpr.Names(),
			ExpressionAttributeValues: updExpr.Values(),
		})
		if err != nil {
			return expired, fmt.Errorf("estimates.updateItem: %w", err)
		}
		expired++
	}

	return expired, nil
}
