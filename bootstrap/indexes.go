package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureDepartamentoIndexes enforces nombre uniqueness at the collection
// level so concurrent creates cannot slip past the handler pre-check.
func EnsureDepartamentoIndexes(db *mongo.Database) error {
	_, err := db.Collection("departamentos").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "nombre", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_nombre"),
		},
	)
	return err
}

func EnsureDocumentoIndexes(db *mongo.Database) error {
	_, err := db.Collection("documentos").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "codigo", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_codigo"),
		},
	)
	return err
}

func EnsureNormaPuntoIndexes(db *mongo.Database) error {
	_, err := db.Collection("normaspuntos").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "norma", Value: 1},
				{Key: "clausula", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_norma_clausula"),
		},
	)
	return err
}

func EnsureIndexes(db *mongo.Database) error {
	if err := EnsureDepartamentoIndexes(db); err != nil {
		return err
	}
	if err := EnsureDocumentoIndexes(db); err != nil {
		return err
	}
	return EnsureNormaPuntoIndexes(db)
}
