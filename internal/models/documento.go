package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Documento struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre          string        `bson:"nombre" json:"nombre"`
	Codigo          string        `bson:"codigo" json:"codigo"`
	Version         string        `bson:"version" json:"version"`
	FechaAprobacion *time.Time    `bson:"fechaAprobacion,omitempty" json:"fechaAprobacion,omitempty"`
	Estado          string        `bson:"estado" json:"estado"`
	TipoDocumento   string        `bson:"tipoDocumento" json:"tipoDocumento"`
	ProcesoAsociado string        `bson:"procesoAsociado" json:"procesoAsociado"`
	ArchivoURL      string        `bson:"archivoUrl" json:"archivoUrl"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}
