package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/models"
)

type ObjetivoCalidadRepository struct {
	col *mongo.Collection
}

func NewObjetivoCalidadRepository(db *mongo.Database) *ObjetivoCalidadRepository {
	return &ObjetivoCalidadRepository{col: db.Collection("objetivosCalidad")}
}

// List optionally filters by parent proceso.
func (r *ObjetivoCalidadRepository) List(ctx context.Context, procesoID *bson.ObjectID) ([]models.ObjetivoCalidad, error) {
	filter := bson.M{}
	if procesoID != nil {
		filter["procesoId"] = *procesoID
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	objetivos := []models.ObjetivoCalidad{}
	if err := cur.All(ctx, &objetivos); err != nil {
		return nil, err
	}
	return objetivos, nil
}

func (r *ObjetivoCalidadRepository) Get(ctx context.Context, id bson.ObjectID) (*models.ObjetivoCalidad, error) {
	var o models.ObjetivoCalidad
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *ObjetivoCalidadRepository) Insert(ctx context.Context, o *models.ObjetivoCalidad) error {
	o.ID = bson.NewObjectID()
	o.FechaCreacion = time.Now()
	o.FechaActualizacion = o.FechaCreacion
	_, err := r.col.InsertOne(ctx, o)
	return translate(err)
}

func (r *ObjetivoCalidadRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ObjetivoCalidadRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ObjetivoCalidadRepository) CountByProceso(ctx context.Context, procesoID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"procesoId": procesoID})
}
