// Package mongostore implementa los puertos de repositorio sobre MongoDB (mongo-driver v2).
//
// Cada colección usa un struct *Doc propio con tags bson; las entidades de dominio no
// conocen bson. Los ids son UUID en texto guardados en _id. Nombres de colección e
// índices se administran en ensureIndexes.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Nombres de colección.
const (
	ColAccounts = "accounts"
	ColProducts = "products"
	ColOrders   = "orders"
	ColTasks    = "tasks"
	ColUsers    = "users"
)

// Config parámetros de conexión.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration // conexión, selección de servidor y ping inicial
}

// Store cliente Mongo compartido por todos los repositorios (pool de conexiones del driver).
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore conecta, verifica con ping y crea los índices.
// Un fallo al crear índices se registra pero no impide arrancar.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(cfg.Database)}
	if err := s.ensureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("mongostore: no se pudieron crear los índices")
	}
	return s, nil
}

// Close cierra el pool de conexiones.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifica la conexión (health check).
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Accounts() *AccountRepository { return &AccountRepository{col: s.col(ColAccounts)} }
func (s *Store) Products() *ProductRepository { return &ProductRepository{col: s.col(ColProducts)} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{col: s.col(ColOrders)} }
func (s *Store) Tasks() *TaskRepository       { return &TaskRepository{col: s.col(ColTasks)} }
func (s *Store) Users() *UserRepository       { return &UserRepository{col: s.col(ColUsers)} }

// ensureIndexes crea los índices únicos (email, accName, sku, upc) y los de filtros frecuentes.
func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		// accounts
		{ColAccounts, bson.D{{Key: "acc_name", Value: 1}}, true},
		{ColAccounts, bson.D{{Key: "marketplace", Value: 1}}, false},
		{ColAccounts, bson.D{{Key: "status", Value: 1}}, false},

		// products
		{ColProducts, bson.D{{Key: "sku", Value: 1}}, true},
		{ColProducts, bson.D{{Key: "upc", Value: 1}}, true},

		// orders
		{ColOrders, bson.D{{Key: "order_number", Value: 1}}, false},
		{ColOrders, bson.D{{Key: "po_number", Value: 1}}, false},
		{ColOrders, bson.D{{Key: "tracking_status", Value: 1}}, false},
		{ColOrders, bson.D{{Key: "sku", Value: 1}}, false},
		{ColOrders, bson.D{{Key: "order_date", Value: -1}}, false},
		{ColOrders, bson.D{{Key: "created_at", Value: 1}}, false},

		// tasks
		{ColTasks, bson.D{{Key: "status", Value: 1}}, false},
		{ColTasks, bson.D{{Key: "account", Value: 1}}, false},

		// users
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColUsers, bson.D{{Key: "created_at", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}
	return nil
}
