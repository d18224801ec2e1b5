package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"isoflow-backend/internal/models"
)

type DocumentoRepository struct {
	col *mongo.Collection
}

func NewDocumentoRepository(db *mongo.Database) *DocumentoRepository {
	return &DocumentoRepository{col: db.Collection("documentos")}
}

func (r *DocumentoRepository) List(ctx context.Context) ([]models.Documento, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	documentos := []models.Documento{}
	if err := cur.All(ctx, &documentos); err != nil {
		return nil, err
	}
	return documentos, nil
}

func (r *DocumentoRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Documento, error) {
	var d models.Documento
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

// FindByCodigo is the uniqueness pre-check for the codigo field.
func (r *DocumentoRepository) FindByCodigo(ctx context.Context, codigo string) (*models.Documento, error) {
	var d models.Documento
	if err := r.col.FindOne(ctx, bson.M{"codigo": codigo}).Decode(&d); err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DocumentoRepository) Insert(ctx context.Context, d *models.Documento) error {
	d.ID = bson.NewObjectID()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	_, err := r.col.InsertOne(ctx, d)
	return translate(err)
}

func (r *DocumentoRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Documento, error) {
	var d models.Documento
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DocumentoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
