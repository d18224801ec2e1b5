package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/models"
)

type ProcesoRepository struct {
	col *mongo.Collection
}

func NewProcesoRepository(db *mongo.Database) *ProcesoRepository {
	return &ProcesoRepository{col: db.Collection("procesos")}
}

func (r *ProcesoRepository) List(ctx context.Context) ([]models.Proceso, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	procesos := []models.Proceso{}
	if err := cur.All(ctx, &procesos); err != nil {
		return nil, err
	}
	return procesos, nil
}

func (r *ProcesoRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Proceso, error) {
	var p models.Proceso
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProcesoRepository) Insert(ctx context.Context, p *models.Proceso) error {
	p.ID = bson.NewObjectID()
	p.FechaCreacion = time.Now()
	p.FechaActualizacion = p.FechaCreacion
	_, err := r.col.InsertOne(ctx, p)
	return translate(err)
}

func (r *ProcesoRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProcesoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
