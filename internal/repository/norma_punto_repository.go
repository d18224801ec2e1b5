package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"isoflow-backend/internal/models"
)

type NormaPuntoRepository struct {
	col *mongo.Collection
}

func NewNormaPuntoRepository(db *mongo.Database) *NormaPuntoRepository {
	return &NormaPuntoRepository{col: db.Collection("normaspuntos")}
}

func (r *NormaPuntoRepository) List(ctx context.Context) ([]models.NormaPunto, error) {
	sort := bson.D{{Key: "norma", Value: 1}, {Key: "clausula", Value: 1}}
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	puntos := []models.NormaPunto{}
	if err := cur.All(ctx, &puntos); err != nil {
		return nil, err
	}
	return puntos, nil
}

func (r *NormaPuntoRepository) Get(ctx context.Context, id bson.ObjectID) (*models.NormaPunto, error) {
	var n models.NormaPunto
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

// FindByNormaClausula is the uniqueness pre-check for the (norma, clausula)
// pair.
func (r *NormaPuntoRepository) FindByNormaClausula(ctx context.Context, norma, clausula string) (*models.NormaPunto, error) {
	var n models.NormaPunto
	if err := r.col.FindOne(ctx, bson.M{"norma": norma, "clausula": clausula}).Decode(&n); err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *NormaPuntoRepository) Insert(ctx context.Context, n *models.NormaPunto) error {
	n.ID = bson.NewObjectID()
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	_, err := r.col.InsertOne(ctx, n)
	return translate(err)
}

func (r *NormaPuntoRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.NormaPunto, error) {
	var n models.NormaPunto
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	if err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *NormaPuntoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
