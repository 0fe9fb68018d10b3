package mongostore

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

type userDoc struct {
	ID           string     `bson:"_id"`
	FullName     string     `bson:"full_name"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash"`
	Role         string     `bson:"role"`
	Permissions  []string   `bson:"permissions"`
	Status       string     `bson:"status"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

func newUserDoc(u *entity.User) *userDoc {
	return &userDoc{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Permissions:  cloneStrings(u.Permissions),
		Status:       u.Status,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d *userDoc) entity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Permissions:  cloneStrings(d.Permissions),
		Status:       d.Status,
		LastLogin:    utcPtr(d.LastLogin),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// UserRepository implementa repository.UserRepository sobre la colección users.
// El email se guarda en minúsculas; el índice único trabaja sobre ese valor.
type UserRepository struct {
	col *mongo.Collection
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return insertOne(ctx, r.col, newUserDoc(u))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	doc, err := findOne[userDoc](ctx, r.col, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

// Update no toca last_login.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	doc := newUserDoc(u)
	return updateFields(ctx, r.col, u.ID, bson.D{
		{Key: "full_name", Value: doc.FullName},
		{Key: "email", Value: doc.Email},
		{Key: "password_hash", Value: doc.PasswordHash},
		{Key: "role", Value: doc.Role},
		{Key: "permissions", Value: doc.Permissions},
		{Key: "status", Value: doc.Status},
		{Key: "updated_at", Value: doc.UpdatedAt},
	})
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return updateFields(ctx, r.col, id, bson.D{{Key: "last_login", Value: at}})
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

func (r *UserRepository) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	docs, err := findMany[userDoc](ctx, r.col, userFilter(f), options.Find().SetSort(sortByCreation))
	if err != nil {
		return nil, err
	}
	return toUsers(docs), nil
}

func (r *UserRepository) ListPaged(ctx context.Context, f repository.UserFilter, page repository.Page) ([]*entity.User, int64, error) {
	page = page.Normalize()
	docs, total, err := findPage[userDoc](ctx, r.col, userFilter(f), page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}
	return toUsers(docs), total, nil
}

func userFilter(f repository.UserFilter) bson.D {
	filter := eq(bson.D{}, "role", f.Role)
	return search(filter, f.Search, "full_name", "email")
}

func toUsers(docs []*userDoc) []*entity.User {
	out := make([]*entity.User, len(docs))
	for i, d := range docs {
		out[i] = d.entity()
	}
	return out
}
