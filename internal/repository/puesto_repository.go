package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"isoflow-backend/internal/models"
)

type PuestoRepository struct {
	col *mongo.Collection
}

func NewPuestoRepository(db *mongo.Database) *PuestoRepository {
	return &PuestoRepository{col: db.Collection("puestos")}
}

// lookupDepartamento joins the parent departamento and flattens its nombre
// into departamentoNombre. Puestos with a dangling reference survive the
// join with the field unset.
func lookupDepartamento() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "departamentos",
			"localField":   "departamentoId",
			"foreignField": "_id",
			"as":           "departamentoInfo",
		}},
		{"$unwind": bson.M{
			"path":                       "$departamentoInfo",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$addFields": bson.M{
			"departamentoNombre": "$departamentoInfo.nombre",
		}},
		{"$project": bson.M{"departamentoInfo": 0}},
	}
}

func (r *PuestoRepository) List(ctx context.Context) ([]models.PuestoConDepartamento, error) {
	pipeline := append(lookupDepartamento(), bson.M{"$sort": bson.M{"nombre": 1}})
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	puestos := []models.PuestoConDepartamento{}
	if err := cur.All(ctx, &puestos); err != nil {
		return nil, err
	}
	return puestos, nil
}

func (r *PuestoRepository) Get(ctx context.Context, id bson.ObjectID) (*models.PuestoConDepartamento, error) {
	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, lookupDepartamento()...)
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var puestos []models.PuestoConDepartamento
	if err := cur.All(ctx, &puestos); err != nil {
		return nil, err
	}
	if len(puestos) == 0 {
		return nil, ErrNotFound
	}
	return &puestos[0], nil
}

func (r *PuestoRepository) Insert(ctx context.Context, p *models.Puesto) error {
	p.ID = bson.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	_, err := r.col.InsertOne(ctx, p)
	return translate(err)
}

func (r *PuestoRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Puesto, error) {
	var p models.Puesto
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PuestoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PuestoRepository) CountByDepartamento(ctx context.Context, departamentoID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"departamentoId": departamentoID})
}
