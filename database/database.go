package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ConnectMongo opens the single client used for the whole process lifetime.
// The *mongo.Database is passed into repository constructors; nothing reads
// it back from a package-level variable.
func ConnectMongo(uri string, dbName string) (*mongo.Client, *mongo.Database) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	log.Println("Connected to MongoDB:", dbName)
	return client, client.Database(dbName)
}

func DisconnectMongo(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Println("error disconnecting MongoDB:", err)
	}
}
