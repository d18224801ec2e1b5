package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NormaPunto is one clause of a norm (e.g. ISO 9001:2015, clause 4.1). The
// (norma, clausula) pair is unique within the collection.
type NormaPunto struct {
	ID                   bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Norma                string        `bson:"norma" json:"norma"`
	Clausula             string        `bson:"clausula" json:"clausula"`
	Titulo               string        `bson:"titulo" json:"titulo"`
	DescripcionDetallada string        `bson:"descripcionDetallada" json:"descripcionDetallada"`
	Estado               string        `bson:"estado" json:"estado"`
	CreatedAt            time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time     `bson:"updatedAt" json:"updatedAt"`
}
