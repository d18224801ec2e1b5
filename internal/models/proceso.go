package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Proceso struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre             string        `bson:"nombre" json:"nombre"`
	Descripcion        string        `bson:"descripcion" json:"descripcion"`
	Responsable        string        `bson:"responsable" json:"responsable"`
	Departamento       string        `bson:"departamento" json:"departamento"`
	Estado             string        `bson:"estado" json:"estado"`
	FechaCreacion      time.Time     `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaActualizacion time.Time     `bson:"fechaActualizacion" json:"fechaActualizacion"`
}
