package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	dbName = "WmsRoiDB"

	UserCollection           *mongo.Collection
	CompanyCollection        *mongo.Collection
	AssessmentCollection     *mongo.Collection
	QuestionnaireCollection  *mongo.Collection
	ResponseCollection       *mongo.Collection
	RecommendationCollection *mongo.Collection
	ReportCollection         *mongo.Collection
	ReportVersionCollection  *mongo.Collection
	CommentCollection        *mongo.Collection
	SettingCollection        *mongo.Collection
	TemplateCollection       *mongo.Collection
	AuditLogCollection       *mongo.Collection
)

// ConnectMongoDB connects once and wires up the shared collection handles.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}
	if name := os.Getenv("MONGO_DB"); name != "" {
		dbName = name
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		UserCollection = GetCollection(dbName, "users")
		CompanyCollection = GetCollection(dbName, "companies")
		AssessmentCollection = GetCollection(dbName, "assessments")
		QuestionnaireCollection = GetCollection(dbName, "questionnaires")
		ResponseCollection = GetCollection(dbName, "questionnaire_responses")
		RecommendationCollection = GetCollection(dbName, "recommendations")
		ReportCollection = GetCollection(dbName, "reports")
		ReportVersionCollection = GetCollection(dbName, "report_versions")
		CommentCollection = GetCollection(dbName, "comments")
		SettingCollection = GetCollection(dbName, "settings")
		TemplateCollection = GetCollection(dbName, "templates")
		AuditLogCollection = GetCollection(dbName, "audit_logs")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

// DBName returns the active database name (MONGO_DB or the default).
func DBName() string {
	return dbName
}
