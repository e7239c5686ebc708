package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/restockd/replenishment-service/internal/domain/model"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

// DefaultMongoConfig returns production defaults for the connection pool.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
	}
}

// Mongo wraps the MongoDB client and the collections used by the service.
type Mongo struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Datasets    *mongo.Collection
	DepotConfig *mongo.Collection
}

// NewMongo connects to MongoDB with default pool configuration.
func NewMongo(uri, databaseName string) (*Mongo, error) {
	return NewMongoWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoWithConfig connects to MongoDB with custom pool configuration and
// verifies the connection with a ping.
func NewMongoWithConfig(uri, databaseName string, cfg MongoConfig) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(databaseName)
	return &Mongo{
		Client:      client,
		Database:    db,
		Datasets:    db.Collection("datasets"),
		DepotConfig: db.Collection("depot_config"),
	}, nil
}

// EnsureIndexes creates the index the latest-session query relies on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Datasets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "type", Value: 1},
			{Key: "uploaded_at", Value: -1},
		},
	})
	return err
}

// Ping verifies the connection is alive.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// orderLineDoc and friends are the BSON shapes of the dataset rows; the store
// converts at the boundary so the domain model carries no driver tags.
type orderLineDoc struct {
	Article         string  `bson:"article"`
	Depot           string  `bson:"depot"`
	Packaging       string  `bson:"packaging"`
	OrderedQuantity float64 `bson:"ordered_quantity"`
	FreeStock       float64 `bson:"free_stock"`
	UnitsPerPallet  float64 `bson:"units_per_pallet"`
}

type stockEntryDoc struct {
	Article           string  `bson:"article"`
	AvailableQuantity float64 `bson:"available_quantity"`
}

type transitEntryDoc struct {
	Article          string  `bson:"article"`
	DestinationDepot string  `bson:"destination_depot"`
	Quantity         float64 `bson:"quantity"`
}

type datasetDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	SessionID  string             `bson:"session_id"`
	Type       string             `bson:"type"`
	UploadedAt time.Time          `bson:"uploaded_at"`
	Orders     []orderLineDoc     `bson:"orders,omitempty"`
	Stock      []stockEntryDoc    `bson:"stock,omitempty"`
	Transit    []transitEntryDoc  `bson:"transit,omitempty"`
	RowCount   int                `bson:"row_count"`
}

type depotConfigDoc struct {
	ID        string              `bson:"_id"`
	Mapping   map[string][]string `bson:"mapping"`
	Enabled   bool                `bson:"enabled"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

const depotConfigID = "current"

// MongoStore is the MongoDB implementation of DatasetStore and
// DepotConfigStore for deployments that need datasets to survive restarts.
type MongoStore struct {
	db *Mongo
}

// NewMongoStore creates a MongoStore on an established connection.
func NewMongoStore(db *Mongo) *MongoStore {
	return &MongoStore{db: db}
}

// SaveOrders stores an order dataset session.
func (s *MongoStore) SaveOrders(ctx context.Context, sessionID string, lines []model.OrderLine) error {
	docs := make([]orderLineDoc, len(lines))
	for i, l := range lines {
		docs[i] = orderLineDoc(l)
	}
	return s.insert(ctx, datasetDoc{
		SessionID:  sessionID,
		Type:       string(model.DatasetOrders),
		UploadedAt: time.Now().UTC(),
		Orders:     docs,
		RowCount:   len(docs),
	})
}

// SaveCentralStock stores a central stock dataset session.
func (s *MongoStore) SaveCentralStock(ctx context.Context, sessionID string, entries []model.CentralStockEntry) error {
	docs := make([]stockEntryDoc, len(entries))
	for i, e := range entries {
		docs[i] = stockEntryDoc(e)
	}
	return s.insert(ctx, datasetDoc{
		SessionID:  sessionID,
		Type:       string(model.DatasetCentralStock),
		UploadedAt: time.Now().UTC(),
		Stock:      docs,
		RowCount:   len(docs),
	})
}

// SaveTransit stores a transit dataset session.
func (s *MongoStore) SaveTransit(ctx context.Context, sessionID string, entries []model.TransitEntry) error {
	docs := make([]transitEntryDoc, len(entries))
	for i, e := range entries {
		docs[i] = transitEntryDoc(e)
	}
	return s.insert(ctx, datasetDoc{
		SessionID:  sessionID,
		Type:       string(model.DatasetTransit),
		UploadedAt: time.Now().UTC(),
		Transit:    docs,
		RowCount:   len(docs),
	})
}

func (s *MongoStore) insert(ctx context.Context, doc datasetDoc) error {
	_, err := s.db.Datasets.InsertOne(ctx, doc)
	return err
}

func (s *MongoStore) latest(ctx context.Context, datasetType model.DatasetType) (*datasetDoc, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})

	var doc datasetDoc
	err := s.db.Datasets.FindOne(ctx, bson.M{"type": string(datasetType)}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// LatestOrders returns the most recently uploaded order dataset.
func (s *MongoStore) LatestOrders(ctx context.Context) ([]model.OrderLine, bool, error) {
	doc, err := s.latest(ctx, model.DatasetOrders)
	if err != nil || doc == nil {
		return nil, false, err
	}
	lines := make([]model.OrderLine, len(doc.Orders))
	for i, d := range doc.Orders {
		lines[i] = model.OrderLine(d)
	}
	return lines, true, nil
}

// LatestCentralStock returns the most recently uploaded stock dataset.
func (s *MongoStore) LatestCentralStock(ctx context.Context) ([]model.CentralStockEntry, bool, error) {
	doc, err := s.latest(ctx, model.DatasetCentralStock)
	if err != nil || doc == nil {
		return nil, false, err
	}
	entries := make([]model.CentralStockEntry, len(doc.Stock))
	for i, d := range doc.Stock {
		entries[i] = model.CentralStockEntry(d)
	}
	return entries, true, nil
}

// LatestTransit returns the most recently uploaded transit dataset.
func (s *MongoStore) LatestTransit(ctx context.Context) ([]model.TransitEntry, bool, error) {
	doc, err := s.latest(ctx, model.DatasetTransit)
	if err != nil || doc == nil {
		return nil, false, err
	}
	entries := make([]model.TransitEntry, len(doc.Transit))
	for i, d := range doc.Transit {
		entries[i] = model.TransitEntry(d)
	}
	return entries, true, nil
}

// Get returns the current depot-article configuration, or the zero value when
// none was ever saved.
func (s *MongoStore) Get(ctx context.Context) (model.DepotArticleConfig, error) {
	var doc depotConfigDoc
	err := s.db.DepotConfig.FindOne(ctx, bson.M{"_id": depotConfigID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.DepotArticleConfig{}, nil
	}
	if err != nil {
		return model.DepotArticleConfig{}, err
	}
	return model.DepotArticleConfig{Mapping: doc.Mapping, Enabled: doc.Enabled}, nil
}

// Set replaces the depot-article configuration wholesale.
func (s *MongoStore) Set(ctx context.Context, cfg model.DepotArticleConfig) error {
	doc := depotConfigDoc{
		ID:        depotConfigID,
		Mapping:   cfg.Mapping,
		Enabled:   cfg.Enabled,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.DepotConfig.ReplaceOne(
		ctx,
		bson.M{"_id": depotConfigID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
