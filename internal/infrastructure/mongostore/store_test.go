package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// testStore crea un Store sobre una base de datos aislada. Sin MongoDB el test se salta.
func testStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	s, err := NewStore(context.Background(), Config{URI: uri, Database: "marketplace_admin_test", Timeout: 2 * time.Second})
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	ctx := context.Background()
	require.NoError(t, s.db.Drop(ctx))
	require.NoError(t, s.ensureIndexes(ctx))

	t.Cleanup(func() {
		_ = s.db.Drop(context.Background())
		_ = s.Close()
	})
	return s
}

func ts(offset time.Duration) time.Time {
	return time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC).Add(offset)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAccountCRUD(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Accounts()

	acc := &entity.Account{ID: "acc-1", Marketplace: entity.MarketplaceEbay, AccName: "tienda-1", Status: entity.AccountStatusActive, CreatedAt: ts(0), UpdatedAt: ts(0)}
	require.NoError(t, repo.Create(ctx, acc))

	dup := *acc
	dup.ID = "acc-2"
	err := repo.Create(ctx, &dup)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "accName")

	got, err := repo.GetByAccName(ctx, "tienda-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, acc.CreatedAt, got.CreatedAt)

	require.NoError(t, repo.TouchLastSync(ctx, "acc-1", ts(time.Hour)))
	got.ProfileName = "Perfil"
	got.LastSync = nil
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Perfil", got.ProfileName)
	require.NotNil(t, got.LastSync, "update no borra lastSync")
	assert.Equal(t, ts(time.Hour), *got.LastSync)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, repo.TouchLastSync(ctx, "nope", ts(0)), domain.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "acc-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "acc-1"), domain.ErrNotFound)
}

func TestProductSearchAndDecimals(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Products()

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", SKU: "SKU-1", UPC: "111", Name: "Cafetera (12 tazas)", SitePrice: dec("19.99"), SellingPrice: dec("17.5"), CreatedAt: ts(0)}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p2", SKU: "SKU-2", UPC: "222", Name: "Licuadora", SitePrice: dec("30"), SellingPrice: dec("29"), CreatedAt: ts(time.Minute)}))

	err := repo.Create(ctx, &entity.Product{ID: "p3", SKU: "SKU-3", UPC: "111", Name: "x"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "upc")

	got, err := repo.List(ctx, repository.ProductFilter{Search: "(12"})
	require.NoError(t, err)
	require.Len(t, got, 1, "el texto se busca literal, no como regex")
	assert.True(t, got[0].SitePrice.Equal(dec("19.99")))

	got, err = repo.List(ctx, repository.ProductFilter{Search: "sku-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, []string{got[0].ID, got[1].ID})
}

func TestOrderFiltersAndPaging(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Orders()

	for i, sp := range []string{"100", "20", "80"} {
		o := &entity.Order{
			ID:            string(rune('a' + i)),
			OrderNumber:   "ORD-" + sp,
			SKU:           "SKU",
			Quantity:      1,
			SellingPrice:  dec(sp),
			SourcingPrice: dec("10"),
			OrderDate:     ts(time.Duration(i) * 24 * time.Hour),
			CreatedAt:     ts(time.Duration(i) * time.Minute),
		}
		o.DeriveProfit()
		require.NoError(t, repo.Create(ctx, o))
	}

	minProfit := dec("50")
	high, err := repo.List(ctx, repository.OrderFilter{MinProfit: &minProfit})
	require.NoError(t, err)
	require.Len(t, high, 2)
	assert.True(t, high[0].NetProfit.Equal(dec("90")))

	from, to := ts(12*time.Hour), ts(48*time.Hour)
	ranged, err := repo.List(ctx, repository.OrderFilter{OrderDateFrom: &from, OrderDateTo: &to})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	page, total, err := repo.ListPaged(ctx, repository.OrderFilter{}, repository.Page{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].ID)
}

func TestTaskAppendLogAndConfig(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Tasks()

	task := &entity.Task{
		ID:     "t1",
		Name:   "sync",
		Type:   entity.TaskTypeProductSync,
		Status: entity.TaskStatusPending,
		Config: map[string]interface{}{"batch": map[string]interface{}{"size": int32(50)}},
	}
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.AppendLog(ctx, "t1", "inicio", ts(0)))
	require.NoError(t, repo.AppendLog(ctx, "t1", "fin", ts(time.Second)))
	assert.ErrorIs(t, repo.AppendLog(ctx, "nope", "x", ts(0)), domain.ErrNotFound)

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"inicio", "fin"}, got.Logs)
	batch, ok := got.Config["batch"].(map[string]interface{})
	require.True(t, ok, "los subdocumentos vuelven como mapas")
	assert.EqualValues(t, 50, batch["size"])
}

func TestTaskUpdateKeepsLogs(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Tasks()

	require.NoError(t, repo.Create(ctx, &entity.Task{ID: "t1", Name: "sync", Type: entity.TaskTypeProductSync, Status: entity.TaskStatusPending}))
	stale, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NoError(t, repo.AppendLog(ctx, "t1", "sync iniciado", ts(0)))

	stale.Start(ts(time.Second))
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusRunning, got.Status)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, ts(time.Second), *got.StartTime)
	assert.Equal(t, []string{"sync iniciado"}, got.Logs)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Task{ID: "nope"}), domain.ErrNotFound)
}

func TestUserEmailUnique(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Users()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "Ana@Example.com", Role: entity.RoleAdmin}))
	err := repo.Create(ctx, &entity.User{ID: "u2", Email: "ana@example.com"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "email")

	got, err := repo.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Empty(t, got.Permissions)
}

func TestNormalizeValue(t *testing.T) {
	in := map[string]interface{}{
		"a": bson.D{{Key: "b", Value: bson.A{int32(1), bson.D{{Key: "c", Value: "x"}}}}},
	}
	out := normalizeMap(in)
	assert.Equal(t, map[string]interface{}{
		"a": map[string]interface{}{"b": []interface{}{int32(1), map[string]interface{}{"c": "x"}}},
	}, out)
}

func TestDuplicateField(t *testing.T) {
	assert.Equal(t, "email", duplicateField(`E11000 duplicate key error collection: db.users index: email_1 dup key: { email: "a" }`))
	assert.Equal(t, "unknown", duplicateField("otro"))
}
