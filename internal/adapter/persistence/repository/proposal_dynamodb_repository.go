package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/lifecycle"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - proposals: PK id (string), GSI status-index (PK status, SK submitted_at)
//   - payment_artifacts: PK auth_code (string)
//
// Status changes are conditional on the stored status (and version). A transition that
// mints or invalidates an artifact is one TransactWriteItems over both tables.
type ProposalDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoAPI, tables Tables) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	it.UpdatedAt = it.CreatedAt
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Proposals),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, interfaces.ErrDuplicateKey
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Proposals),
		Key:            proposalKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}
	return decodeProposal(out.Item)
}

func (r *ProposalDynamoRepository) ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Proposals),
		IndexName:              aws.String(proposalsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})

	items := make([]entities.Proposal, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			prop, err := decodeProposal(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, prop)
		}
	}
	return items, nil
}

func (r *ProposalDynamoRepository) UpdateRecords(ctx context.Context, id string, expectedVersion int64, records interfaces.Records, at time.Time) (entities.Proposal, error) {
	u := newUpdateBuilder()
	if err := u.setRecords(records); err != nil {
		return entities.Proposal{}, err
	}
	u.bump(at)
	u.cond("#status = :submitted AND #version = :expected_version AND (attribute_not_exists(#decisions) OR size(#decisions) = :zero)")
	u.names["#decisions"] = "decisions"
	u.values[":submitted"] = &types.AttributeValueMemberS{Value: string(entities.StatusSubmitted)}
	u.values[":expected_version"] = numberValue(expectedVersion)
	u.values[":zero"] = numberValue(0)
	return r.update(ctx, id, u)
}

func (r *ProposalDynamoRepository) SetPaymentLink(ctx context.Context, id string, link string, at time.Time) (entities.Proposal, error) {
	u := newUpdateBuilder()
	u.set("#payment_link", "payment_link", ":payment_link", &types.AttributeValueMemberS{Value: link})
	u.bump(at)
	u.cond("#status = :submitted")
	u.values[":submitted"] = &types.AttributeValueMemberS{Value: string(entities.StatusSubmitted)}
	return r.update(ctx, id, u)
}

func (r *ProposalDynamoRepository) ReservePolicyNumber(ctx context.Context, id string, policyNo string, at time.Time) (entities.Proposal, error) {
	u := newUpdateBuilder()
	u.set("#policy_no", "policy_no", ":policy_no", &types.AttributeValueMemberS{Value: policyNo})
	u.bump(at)
	u.cond("#status = :confirmed AND attribute_not_exists(#policy_no)")
	u.values[":confirmed"] = &types.AttributeValueMemberS{Value: string(entities.StatusUnderwritingConfirmed)}
	return r.update(ctx, id, u)
}

func (r *ProposalDynamoRepository) Transition(ctx context.Context, cmd interfaces.TransitionCommand) (entities.Proposal, error) {
	u, err := transitionUpdate(cmd)
	if err != nil {
		return entities.Proposal{}, err
	}
	if cmd.Artifact == nil && cmd.InvalidateAuthCode == "" {
		return r.update(ctx, cmd.ProposalID, u)
	}

	items := []types.TransactWriteItem{{
		Update: &types.Update{
			TableName:                 aws.String(r.tables.Proposals),
			Key:                       proposalKey(cmd.ProposalID),
			UpdateExpression:          aws.String(u.expression()),
			ConditionExpression:       aws.String(u.condition()),
			ExpressionAttributeNames:  u.names,
			ExpressionAttributeValues: u.values,
		},
	}}
	if cmd.Artifact != nil {
		av, err := attributevalue.MarshalMap(toArtifactItem(*cmd.Artifact))
		if err != nil {
			return entities.Proposal{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tables.Artifacts),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#auth_code)"),
				ExpressionAttributeNames: map[string]string{"#auth_code": "auth_code"},
			},
		})
	}
	if cmd.InvalidateAuthCode != "" {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.tables.Artifacts),
				Key:                 artifactKey(cmd.InvalidateAuthCode),
				UpdateExpression:    aws.String("SET #invalidated_at = if_not_exists(#invalidated_at, :at)"),
				ConditionExpression: aws.String("attribute_exists(#auth_code)"),
				ExpressionAttributeNames: map[string]string{
					"#invalidated_at": "invalidated_at",
					"#auth_code":      "auth_code",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":at": &types.AttributeValueMemberS{Value: formatTime(cmd.Change.At)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Proposal{}, classifyTransactionError(err, cmd)
	}
	return r.GetByID(ctx, cmd.ProposalID)
}

// classifyTransactionError maps cancellation reasons back to the write that failed.
// Reason order follows TransactItems: proposal update, then artifact put or invalidation.
func classifyTransactionError(err error, cmd interfaces.TransitionCommand) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	reasons := tce.CancellationReasons
	failed := func(i int) bool {
		return i < len(reasons) && aws.ToString(reasons[i].Code) == "ConditionalCheckFailed"
	}
	switch {
	case failed(0):
		return interfaces.ErrConditionFailed
	case cmd.Artifact != nil && failed(1):
		return interfaces.ErrDuplicateKey
	case failed(1), failed(2):
		return fmt.Errorf("artifact %s referenced by proposal %s is missing: %w", cmd.InvalidateAuthCode, cmd.ProposalID, err)
	}
	return err
}

func (r *ProposalDynamoRepository) update(ctx context.Context, id string, u *updateBuilder) (entities.Proposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tables.Proposals),
		Key:                                 proposalKey(id),
		ConditionExpression:                 aws.String(u.condition()),
		UpdateExpression:                    aws.String(u.expression()),
		ExpressionAttributeValues:           u.values,
		ExpressionAttributeNames:            u.names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Proposal{}, nil
			}
			return entities.Proposal{}, interfaces.ErrConditionFailed
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	return decodeProposal(out.Attributes)
}

func transitionUpdate(cmd interfaces.TransitionCommand) (*updateBuilder, error) {
	u := newUpdateBuilder()

	u.set("#status", "status", ":to", &types.AttributeValueMemberS{Value: string(cmd.To)})
	if ts := lifecycle.TimestampAttribute(cmd.To); ts != "" {
		u.names["#ts"] = ts
		u.sets = append(u.sets, "#ts = :at")
	}
	u.bump(cmd.Change.At)

	change, err := attributevalue.Marshal([]historyItem{toHistoryItem(cmd.Change)})
	if err != nil {
		return nil, err
	}
	u.appendList("#history", "history", ":change", change)

	if cmd.Decision != nil {
		d, err := attributevalue.Marshal([]decisionItem{toDecisionItem(*cmd.Decision)})
		if err != nil {
			return nil, err
		}
		u.appendList("#decisions", "decisions", ":decision", d)
	}
	if cmd.Records != nil {
		if err := u.setRecords(*cmd.Records); err != nil {
			return nil, err
		}
	}
	if cmd.Artifact != nil {
		u.set("#auth_code", "auth_code", ":auth_code", &types.AttributeValueMemberS{Value: cmd.Artifact.AuthCode})
	}
	if cmd.PolicyNo != "" {
		u.set("#policy_no", "policy_no", ":policy_no", &types.AttributeValueMemberS{Value: cmd.PolicyNo})
	}

	u.cond("#status = :from")
	u.values[":from"] = &types.AttributeValueMemberS{Value: string(cmd.From)}
	if cmd.ExpectedVersion > 0 {
		u.cond("#version = :expected_version")
		u.values[":expected_version"] = numberValue(cmd.ExpectedVersion)
	}
	return u, nil
}

// updateBuilder assembles SET/REMOVE clauses and an AND-ed condition that always
// requires the item to exist.
type updateBuilder struct {
	sets    []string
	removes []string
	conds   []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		conds:  []string{"attribute_exists(#id)"},
		names:  map[string]string{"#id": "id"},
		values: map[string]types.AttributeValue{},
	}
}

func (u *updateBuilder) set(name, attr, placeholder string, v types.AttributeValue) {
	u.names[name] = attr
	u.values[placeholder] = v
	u.sets = append(u.sets, name+" = "+placeholder)
}

func (u *updateBuilder) remove(name, attr string) {
	u.names[name] = attr
	u.removes = append(u.removes, name)
}

func (u *updateBuilder) appendList(name, attr, placeholder string, v types.AttributeValue) {
	u.names[name] = attr
	u.values[placeholder] = v
	u.values[":empty_list"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	u.sets = append(u.sets, fmt.Sprintf("%s = list_append(if_not_exists(%s, :empty_list), %s)", name, name, placeholder))
}

// bump increments version and stamps updated_at.
func (u *updateBuilder) bump(at time.Time) {
	u.names["#version"] = "version"
	u.names["#updated_at"] = "updated_at"
	u.values[":one"] = numberValue(1)
	u.values[":at"] = &types.AttributeValueMemberS{Value: formatTime(at)}
	u.sets = append(u.sets, "#version = #version + :one", "#updated_at = :at")
}

func (u *updateBuilder) setRecords(r interfaces.Records) error {
	vehicle, err := attributevalue.Marshal(toVehicleItem(r.Vehicle))
	if err != nil {
		return err
	}
	owner, err := attributevalue.Marshal(toPersonItem(r.Owner))
	if err != nil {
		return err
	}
	coverages, err := attributevalue.Marshal(toCoverageItems(r.Coverages))
	if err != nil {
		return err
	}
	u.set("#vehicle", "vehicle", ":vehicle", vehicle)
	u.set("#owner", "owner", ":owner", owner)
	u.set("#coverages", "coverages", ":coverages", coverages)

	for _, party := range []struct {
		name, attr string
		person     *entities.PersonRecord
	}{
		{"#proposer", "proposer", r.Proposer},
		{"#insured", "insured", r.Insured},
	} {
		if party.person == nil {
			u.remove(party.name, party.attr)
			continue
		}
		av, err := attributevalue.Marshal(toPersonItem(*party.person))
		if err != nil {
			return err
		}
		u.set(party.name, party.attr, ":"+party.attr, av)
	}
	return nil
}

func (u *updateBuilder) cond(expr string) {
	u.names["#status"] = "status"
	u.names["#version"] = "version"
	u.conds = append(u.conds, expr)
}

func (u *updateBuilder) expression() string {
	expr := "SET " + strings.Join(u.sets, ", ")
	if len(u.removes) > 0 {
		expr += " REMOVE " + strings.Join(u.removes, ", ")
	}
	return expr
}

func (u *updateBuilder) condition() string {
	return strings.Join(u.conds, " AND ")
}

func decodeProposal(raw map[string]types.AttributeValue) (entities.Proposal, error) {
	var it proposalItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func proposalKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func numberValue(n int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}
