package repository

import (
	"context"
	"time"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type projectItem struct {
	Name           string   `dynamodbav:"name"`
	Type           string   `dynamodbav:"type"`
	SizeSqm        float64  `dynamodbav:"size_sqm"`
	Location       string   `dynamodbav:"location"`
	Budget         float64  `dynamodbav:"budget"`
	TimelineMonths float64  `dynamodbav:"timeline_months"`
	Complexity     string   `dynamodbav:"complexity"`
	TechNeeds      []string `dynamodbav:"tech_needs"`
}

type sessionItem struct {
	ID               string       `dynamodbav:"id"`
	Draft            projectItem  `dynamodbav:"draft"`
	WizardStep       int          `dynamodbav:"wizard_step"`
	Project          *projectItem `dynamodbav:"project,omitempty"`
	Compare          []string     `dynamodbav:"compare"`
	PickedProviderID string       `dynamodbav:"picked_provider_id,omitempty"`
	Stage            string       `dynamodbav:"stage"`
	CreatedAt        string       `dynamodbav:"created_at"`
	UpdatedAt        string       `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists owner sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Each save writes the whole snapshot; the last writer wins.
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) (entities.Session, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) Get(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:               s.ID,
		Draft:            toProjectItem(s.Draft),
		WizardStep:       s.WizardStep,
		Compare:          nonNil(s.Compare),
		PickedProviderID: s.PickedProviderID,
		Stage:            string(s.Stage),
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Project != nil {
		p := toProjectItem(*s.Project)
		it.Project = &p
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	s := entities.Session{
		ID:               it.ID,
		Draft:            fromProjectItem(it.Draft),
		WizardStep:       it.WizardStep,
		Compare:          nonNil(it.Compare),
		PickedProviderID: it.PickedProviderID,
		Stage:            entities.Stage(it.Stage),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.Project != nil {
		p := fromProjectItem(*it.Project)
		s.Project = &p
	}
	return s
}

func toProjectItem(p entities.ProjectDescriptor) projectItem {
	return projectItem{
		Name:           p.Name,
		Type:           string(p.Type),
		SizeSqm:        p.SizeSqm,
		Location:       p.Location,
		Budget:         p.Budget,
		TimelineMonths: p.TimelineMonths,
		Complexity:     string(p.Complexity),
		TechNeeds:      nonNil(p.TechNeeds),
	}
}

func fromProjectItem(it projectItem) entities.ProjectDescriptor {
	return entities.ProjectDescriptor{
		Name:           it.Name,
		Type:           entities.ProjectType(it.Type),
		SizeSqm:        it.SizeSqm,
		Location:       it.Location,
		Budget:         it.Budget,
		TimelineMonths: it.TimelineMonths,
		Complexity:     entities.Complexity(it.Complexity),
		TechNeeds:      nonNil(it.TechNeeds),
	}
}
