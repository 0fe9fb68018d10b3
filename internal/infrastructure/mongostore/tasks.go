package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

type taskDoc struct {
	ID          string                 `bson:"_id"`
	Name        string                 `bson:"name"`
	Type        string                 `bson:"type"`
	Account     string                 `bson:"account"`
	Status      string                 `bson:"status"`
	Progress    int                    `bson:"progress"`
	StartTime   *time.Time             `bson:"start_time,omitempty"`
	EndTime     *time.Time             `bson:"end_time,omitempty"`
	Description string                 `bson:"description,omitempty"`
	Logs        []string               `bson:"logs"`
	Config      map[string]interface{} `bson:"config,omitempty"`
	Result      map[string]interface{} `bson:"result,omitempty"`
	CreatedAt   time.Time              `bson:"created_at"`
	UpdatedAt   time.Time              `bson:"updated_at"`
}

func newTaskDoc(t *entity.Task) *taskDoc {
	logs := t.Logs
	if logs == nil {
		// $push sobre null falla; el campo siempre es un arreglo
		logs = []string{}
	}
	return &taskDoc{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type,
		Account:     t.Account,
		Status:      t.Status,
		Progress:    t.Progress,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Description: t.Description,
		Logs:        logs,
		Config:      t.Config,
		Result:      t.Result,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (d *taskDoc) entity() *entity.Task {
	return &entity.Task{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Account:     d.Account,
		Status:      d.Status,
		Progress:    d.Progress,
		StartTime:   utcPtr(d.StartTime),
		EndTime:     utcPtr(d.EndTime),
		Description: d.Description,
		Logs:        cloneStrings(d.Logs),
		Config:      normalizeMap(d.Config),
		Result:      normalizeMap(d.Result),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// TaskRepository implementa repository.TaskRepository sobre la colección tasks.
type TaskRepository struct {
	col *mongo.Collection
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	return insertOne(ctx, r.col, newTaskDoc(t))
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	doc, err := findOne[taskDoc](ctx, r.col, bson.D{{Key: "_id", Value: id}})
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

// Update $set de todos los campos salvo logs, que sólo crece vía AppendLog.
func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	doc := newTaskDoc(t)
	return updateFields(ctx, r.col, t.ID, bson.D{
		{Key: "name", Value: doc.Name},
		{Key: "type", Value: doc.Type},
		{Key: "account", Value: doc.Account},
		{Key: "status", Value: doc.Status},
		{Key: "progress", Value: doc.Progress},
		{Key: "start_time", Value: doc.StartTime},
		{Key: "end_time", Value: doc.EndTime},
		{Key: "description", Value: doc.Description},
		{Key: "config", Value: doc.Config},
		{Key: "result", Value: doc.Result},
		{Key: "updated_at", Value: doc.UpdatedAt},
	})
}

// AppendLog $push atómico sobre logs.
func (r *TaskRepository) AppendLog(ctx context.Context, id, line string, at time.Time) error {
	return updateByID(ctx, r.col, id, bson.D{
		{Key: "$push", Value: bson.D{{Key: "logs", Value: line}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: at}}},
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

func (r *TaskRepository) List(ctx context.Context, f repository.TaskFilter) ([]*entity.Task, error) {
	filter := bson.D{}
	filter = eq(filter, "status", f.Status)
	filter = eq(filter, "type", f.Type)
	filter = eq(filter, "account", f.Account)

	docs, err := findMany[taskDoc](ctx, r.col, filter, options.Find().SetSort(sortByCreation))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Task, len(docs))
	for i, d := range docs {
		out[i] = d.entity()
	}
	return out, nil
}
