package repository

import (
	"context"
	"errors"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PaymentArtifactDynamoRepository reads and consumes artifacts.
//
// Artifacts are written by ProposalDynamoRepository.Transition. The live artifact of a
// proposal is resolved through the proposal's auth_code so both reads stay strongly
// consistent.
type PaymentArtifactDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IPaymentArtifactRepository = (*PaymentArtifactDynamoRepository)(nil)

func NewPaymentArtifactDynamoRepository(ddb DynamoAPI, tables Tables) *PaymentArtifactDynamoRepository {
	return &PaymentArtifactDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *PaymentArtifactDynamoRepository) GetByAuthCode(ctx context.Context, authCode string) (entities.PaymentArtifact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Artifacts),
		Key:            artifactKey(authCode),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentArtifact{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentArtifact{}, nil
	}
	return decodeArtifact(out.Item)
}

func (r *PaymentArtifactDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.PaymentArtifact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.tables.Proposals),
		Key:                      proposalKey(proposalID),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#auth_code"),
		ExpressionAttributeNames: map[string]string{"#auth_code": "auth_code"},
	})
	if err != nil {
		return entities.PaymentArtifact{}, err
	}
	var ref struct {
		AuthCode string `dynamodbav:"auth_code"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &ref); err != nil {
		return entities.PaymentArtifact{}, err
	}
	if ref.AuthCode == "" {
		return entities.PaymentArtifact{}, nil
	}
	return r.GetByAuthCode(ctx, ref.AuthCode)
}

func (r *PaymentArtifactDynamoRepository) Consume(ctx context.Context, authCode string, at time.Time) (entities.PaymentArtifact, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Artifacts),
		Key:                 artifactKey(authCode),
		UpdateExpression:    aws.String("SET #consumed_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#auth_code) AND attribute_not_exists(#consumed_at) AND attribute_not_exists(#invalidated_at)"),
		ExpressionAttributeNames: map[string]string{
			"#auth_code":      "auth_code",
			"#consumed_at":    "consumed_at",
			"#invalidated_at": "invalidated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return conditionalArtifact(err)
	}
	return decodeArtifact(out.Attributes)
}

func (r *PaymentArtifactDynamoRepository) SetCollectionLink(ctx context.Context, authCode string, link string) (entities.PaymentArtifact, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Artifacts),
		Key:                 artifactKey(authCode),
		UpdateExpression:    aws.String("SET #collection_link = :link"),
		ConditionExpression: aws.String("attribute_exists(#auth_code) AND attribute_not_exists(#invalidated_at)"),
		ExpressionAttributeNames: map[string]string{
			"#auth_code":       "auth_code",
			"#collection_link": "collection_link",
			"#invalidated_at":  "invalidated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":link": &types.AttributeValueMemberS{Value: link},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return conditionalArtifact(err)
	}
	return decodeArtifact(out.Attributes)
}

// conditionalArtifact turns a failed condition into (zero, nil) for a missing item or
// (stored state, ErrConditionFailed) otherwise.
func conditionalArtifact(err error) (entities.PaymentArtifact, error) {
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return entities.PaymentArtifact{}, err
	}
	if len(cfe.Item) == 0 {
		return entities.PaymentArtifact{}, nil
	}
	a, derr := decodeArtifact(cfe.Item)
	if derr != nil {
		return entities.PaymentArtifact{}, derr
	}
	return a, interfaces.ErrConditionFailed
}

func decodeArtifact(raw map[string]types.AttributeValue) (entities.PaymentArtifact, error) {
	if len(raw) == 0 {
		return entities.PaymentArtifact{}, nil
	}
	var it artifactItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.PaymentArtifact{}, err
	}
	return fromArtifactItem(it), nil
}

func artifactKey(authCode string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"auth_code": &types.AttributeValueMemberS{Value: authCode},
	}
}
