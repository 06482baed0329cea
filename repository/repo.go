package repository

import (
	"fmt"

	"github.com/cyltest/api/config"
	"github.com/cyltest/api/domain"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	auditLogCollection = "audit_logs"
	userCollection     = "users"
	settingCollection  = "settings"

	defaultTimestampField = "created_time"
)

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewRepository connects the mongo client lazily; the first operation
// observes connectivity problems.
func NewRepository(params Params) (domain.Repository, error) {
	clientOpts := mongooption.Client().ApplyURI(params.MongoConfig.URI())
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}
	return &repo{
		client: client,
		db:     client.Database(params.MongoConfig.Database),
	}, nil
}
