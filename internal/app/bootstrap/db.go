// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dalemusser/waffle/config"
	"github.com/hknair/leadgate/internal/app/store/registrations"
	"github.com/hknair/leadgate/internal/app/system/indexes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB resolves the store credential and opens the selected backend.
// Any failure here is fatal: WAFFLE aborts startup and the process exits.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cred, source, err := ResolveStoreCredential(appCfg)
	if err != nil {
		return DBDeps{}, err
	}
	logger.Info("store credential resolved",
		zap.String("backend", appCfg.StoreBackend),
		zap.String("source", source))

	switch appCfg.StoreBackend {
	case "memory":
		logger.Warn("memory store backend selected; data will not survive a restart")
		return DBDeps{Store: registrations.NewMemory()}, nil

	case "mongo":
		return connectMongo(ctx, appCfg, cred, logger)

	case "dynamo":
		return connectDynamo(ctx, appCfg, cred, logger)

	default:
		return DBDeps{}, fmt.Errorf("unknown store backend %q", appCfg.StoreBackend)
	}
}

func connectMongo(ctx context.Context, appCfg AppConfig, cred StoreCredential, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(cred.URI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		Store:         registrations.NewMongo(db),
		MongoClient:   client,
		MongoDatabase: db,
	}, nil
}

func connectDynamo(ctx context.Context, appCfg AppConfig, cred StoreCredential, logger *zap.Logger) (DBDeps, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(appCfg.DynamoRegion),
	}
	if cred.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(cred.AccessKeyID, cred.SecretAccessKey, cred.SessionToken)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return DBDeps{}, fmt.Errorf("aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if appCfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(appCfg.DynamoEndpoint)
		}
	})

	store := registrations.NewDynamo(client, appCfg.DynamoTable)
	if err := store.Ping(ctx); err != nil {
		return DBDeps{}, fmt.Errorf("dynamo describe-table %s: %w", appCfg.DynamoTable, err)
	}
	logger.Info("connected to DynamoDB",
		zap.String("table", appCfg.DynamoTable),
		zap.String("region", appCfg.DynamoRegion))

	return DBDeps{Store: store, DynamoClient: client}, nil
}

// EnsureSchema declares store-native indexes. Only the Mongo backend has
// anything to do here: the Dynamo table and its key schema are provisioned
// outside the service.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
