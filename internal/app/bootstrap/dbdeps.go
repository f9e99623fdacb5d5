// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hknair/leadgate/internal/app/store/registrations"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Store is always set and is the only field the service layer sees; the
// client handles exist for lifecycle management (index bootstrap, shutdown).
type DBDeps struct {
	Store registrations.Store

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	DynamoClient *dynamodb.Client
}
