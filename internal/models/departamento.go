package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Departamento struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre      string        `bson:"nombre" json:"nombre"`
	Descripcion string        `bson:"descripcion" json:"descripcion"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
