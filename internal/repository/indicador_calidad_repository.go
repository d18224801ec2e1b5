package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"isoflow-backend/internal/models"
)

type IndicadorCalidadRepository struct {
	col *mongo.Collection
}

func NewIndicadorCalidadRepository(db *mongo.Database) *IndicadorCalidadRepository {
	return &IndicadorCalidadRepository{col: db.Collection("indicadorescalidad")}
}

func (r *IndicadorCalidadRepository) List(ctx context.Context) ([]models.IndicadorCalidad, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	indicadores := []models.IndicadorCalidad{}
	if err := cur.All(ctx, &indicadores); err != nil {
		return nil, err
	}
	return indicadores, nil
}

func (r *IndicadorCalidadRepository) ListByObjetivo(ctx context.Context, objetivoID bson.ObjectID) ([]models.IndicadorCalidad, error) {
	cur, err := r.col.Find(ctx, bson.M{"objetivoCalidadId": objetivoID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	indicadores := []models.IndicadorCalidad{}
	if err := cur.All(ctx, &indicadores); err != nil {
		return nil, err
	}
	return indicadores, nil
}

// Get populates the parent objetivo name, the driver-level equivalent of the
// original populate('objetivoCalidadId', 'nombre').
func (r *IndicadorCalidadRepository) Get(ctx context.Context, id bson.ObjectID) (*models.IndicadorConObjetivo, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$lookup": bson.M{
			"from":         "objetivosCalidad",
			"localField":   "objetivoCalidadId",
			"foreignField": "_id",
			"as":           "objetivoInfo",
		}},
		{"$unwind": bson.M{"path": "$objetivoInfo", "preserveNullAndEmptyArrays": true}},
		{"$addFields": bson.M{"objetivoNombre": "$objetivoInfo.nombre"}},
		{"$project": bson.M{"objetivoInfo": 0}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var indicadores []models.IndicadorConObjetivo
	if err := cur.All(ctx, &indicadores); err != nil {
		return nil, err
	}
	if len(indicadores) == 0 {
		return nil, ErrNotFound
	}
	return &indicadores[0], nil
}

func (r *IndicadorCalidadRepository) Insert(ctx context.Context, i *models.IndicadorCalidad) error {
	i.ID = bson.NewObjectID()
	i.FechaCreacion = time.Now()
	i.FechaActualizacion = i.FechaCreacion
	_, err := r.col.InsertOne(ctx, i)
	return translate(err)
}

func (r *IndicadorCalidadRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.IndicadorCalidad, error) {
	var i models.IndicadorCalidad
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&i)
	if err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (r *IndicadorCalidadRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *IndicadorCalidadRepository) CountByObjetivo(ctx context.Context, objetivoID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"objetivoCalidadId": objetivoID})
}
