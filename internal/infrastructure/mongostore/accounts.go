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

type accountDoc struct {
	ID           string     `bson:"_id"`
	Marketplace  string     `bson:"marketplace"`
	AccName      string     `bson:"acc_name"`
	ProfileName  string     `bson:"profile_name,omitempty"`
	SheetID      string     `bson:"sheet_id,omitempty"`
	AccountInfo  string     `bson:"account_info,omitempty"`
	Proxy        string     `bson:"proxy,omitempty"`
	ClientID     string     `bson:"client_id,omitempty"`
	ClientSecret string     `bson:"client_secret,omitempty"`
	TelegramID   string     `bson:"telegram_id,omitempty"`
	Status       string     `bson:"status"`
	LastSync     *time.Time `bson:"last_sync,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

func newAccountDoc(a *entity.Account) *accountDoc {
	return &accountDoc{
		ID:           a.ID,
		Marketplace:  a.Marketplace,
		AccName:      a.AccName,
		ProfileName:  a.ProfileName,
		SheetID:      a.SheetID,
		AccountInfo:  a.AccountInfo,
		Proxy:        a.Proxy,
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		TelegramID:   a.TelegramID,
		Status:       a.Status,
		LastSync:     a.LastSync,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d *accountDoc) entity() *entity.Account {
	return &entity.Account{
		ID:           d.ID,
		Marketplace:  d.Marketplace,
		AccName:      d.AccName,
		ProfileName:  d.ProfileName,
		SheetID:      d.SheetID,
		AccountInfo:  d.AccountInfo,
		Proxy:        d.Proxy,
		ClientID:     d.ClientID,
		ClientSecret: d.ClientSecret,
		TelegramID:   d.TelegramID,
		Status:       d.Status,
		LastSync:     utcPtr(d.LastSync),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// AccountRepository implementa repository.AccountRepository sobre la colección accounts.
type AccountRepository struct {
	col *mongo.Collection
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	return insertOne(ctx, r.col, newAccountDoc(a))
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *AccountRepository) GetByAccName(ctx context.Context, accName string) (*entity.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "acc_name", Value: accName}})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.D) (*entity.Account, error) {
	doc, err := findOne[accountDoc](ctx, r.col, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

// Update reemplaza el documento conservando last_sync, que sólo escribe TouchLastSync.
func (r *AccountRepository) Update(ctx context.Context, a *entity.Account) error {
	doc := newAccountDoc(a)
	return updateFields(ctx, r.col, a.ID, bson.D{
		{Key: "marketplace", Value: doc.Marketplace},
		{Key: "acc_name", Value: doc.AccName},
		{Key: "profile_name", Value: doc.ProfileName},
		{Key: "sheet_id", Value: doc.SheetID},
		{Key: "account_info", Value: doc.AccountInfo},
		{Key: "proxy", Value: doc.Proxy},
		{Key: "client_id", Value: doc.ClientID},
		{Key: "client_secret", Value: doc.ClientSecret},
		{Key: "telegram_id", Value: doc.TelegramID},
		{Key: "status", Value: doc.Status},
		{Key: "updated_at", Value: doc.UpdatedAt},
	})
}

func (r *AccountRepository) TouchLastSync(ctx context.Context, id string, at time.Time) error {
	return updateFields(ctx, r.col, id, bson.D{
		{Key: "last_sync", Value: at},
		{Key: "updated_at", Value: at},
	})
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

func (r *AccountRepository) List(ctx context.Context, f repository.AccountFilter) ([]*entity.Account, error) {
	filter := bson.D{}
	filter = eq(filter, "status", f.Status)
	filter = eq(filter, "marketplace", f.Marketplace)

	docs, err := findMany[accountDoc](ctx, r.col, filter, options.Find().SetSort(sortByCreation))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Account, len(docs))
	for i, d := range docs {
		out[i] = d.entity()
	}
	return out, nil
}
