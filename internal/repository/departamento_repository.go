package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"isoflow-backend/internal/models"
)

type DepartamentoRepository struct {
	col *mongo.Collection
}

func NewDepartamentoRepository(db *mongo.Database) *DepartamentoRepository {
	return &DepartamentoRepository{col: db.Collection("departamentos")}
}

func (r *DepartamentoRepository) List(ctx context.Context) ([]models.Departamento, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	departamentos := []models.Departamento{}
	if err := cur.All(ctx, &departamentos); err != nil {
		return nil, err
	}
	return departamentos, nil
}

func (r *DepartamentoRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Departamento, error) {
	var d models.Departamento
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DepartamentoRepository) Insert(ctx context.Context, d *models.Departamento) error {
	d.ID = bson.NewObjectID()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	_, err := r.col.InsertOne(ctx, d)
	return translate(err)
}

func (r *DepartamentoRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Departamento, error) {
	var d models.Departamento
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

func (r *DepartamentoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
