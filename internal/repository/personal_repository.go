package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/models"
)

type PersonalRepository struct {
	col *mongo.Collection
}

func NewPersonalRepository(db *mongo.Database) *PersonalRepository {
	return &PersonalRepository{col: db.Collection("personal")}
}

// lookupDepartamentoYPuesto joins both parents and unwinds each to a single
// sub-document carrying just the nombre.
func lookupDepartamentoYPuesto() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "departamentos",
			"localField":   "departamentoId",
			"foreignField": "_id",
			"as":           "departamento",
		}},
		{"$lookup": bson.M{
			"from":         "puestos",
			"localField":   "puestoId",
			"foreignField": "_id",
			"as":           "puesto",
		}},
		{"$unwind": bson.M{"path": "$departamento", "preserveNullAndEmptyArrays": true}},
		{"$unwind": bson.M{"path": "$puesto", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{"password": 0}},
	}
}

func (r *PersonalRepository) aggregate(ctx context.Context, match bson.M) ([]models.PersonalEnriquecido, error) {
	pipeline := []bson.M{}
	if match != nil {
		pipeline = append(pipeline, bson.M{"$match": match})
	}
	pipeline = append(pipeline, lookupDepartamentoYPuesto()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	personal := []models.PersonalEnriquecido{}
	if err := cur.All(ctx, &personal); err != nil {
		return nil, err
	}
	return personal, nil
}

func (r *PersonalRepository) List(ctx context.Context) ([]models.PersonalEnriquecido, error) {
	return r.aggregate(ctx, nil)
}

func (r *PersonalRepository) ListByDepartamento(ctx context.Context, departamentoID bson.ObjectID) ([]models.PersonalEnriquecido, error) {
	return r.aggregate(ctx, bson.M{"departamentoId": departamentoID})
}

func (r *PersonalRepository) Get(ctx context.Context, id bson.ObjectID) (*models.PersonalEnriquecido, error) {
	personal, err := r.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(personal) == 0 {
		return nil, ErrNotFound
	}
	return &personal[0], nil
}

func (r *PersonalRepository) Insert(ctx context.Context, p *models.Personal) error {
	p.ID = bson.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	_, err := r.col.InsertOne(ctx, p)
	return translate(err)
}

func (r *PersonalRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PersonalRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PersonalRepository) FindByEmail(ctx context.Context, email string) (*models.Personal, error) {
	var p models.Personal
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// exists runs the uniqueness pre-check; excludeID skips the document being
// updated so a record never conflicts with itself.
func (r *PersonalRepository) exists(ctx context.Context, field, value string, excludeID *bson.ObjectID) (bool, error) {
	filter := bson.M{field: value}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PersonalRepository) ExistsDNI(ctx context.Context, dni string, excludeID *bson.ObjectID) (bool, error) {
	return r.exists(ctx, "dni", dni, excludeID)
}

func (r *PersonalRepository) ExistsLegajo(ctx context.Context, legajo string, excludeID *bson.ObjectID) (bool, error) {
	return r.exists(ctx, "legajo", legajo, excludeID)
}

func (r *PersonalRepository) CountByDepartamento(ctx context.Context, departamentoID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"departamentoId": departamentoID})
}

func (r *PersonalRepository) CountByPuesto(ctx context.Context, puestoID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"puestoId": puestoID})
}
