package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ObjetivoCalidad struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProcesoID          bson.ObjectID `bson:"procesoId" json:"procesoId"`
	Nombre             string        `bson:"nombre" json:"nombre"`
	Descripcion        string        `bson:"descripcion" json:"descripcion"`
	Responsable        string        `bson:"responsable" json:"responsable"`
	FechaInicio        time.Time     `bson:"fechaInicio" json:"fechaInicio"`
	FechaObjetivo      *time.Time    `bson:"fechaObjetivo,omitempty" json:"fechaObjetivo,omitempty"`
	Indicadores        []string      `bson:"indicadores" json:"indicadores"`
	Estado             string        `bson:"estado" json:"estado"`
	FechaCreacion      time.Time     `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaActualizacion time.Time     `bson:"fechaActualizacion" json:"fechaActualizacion"`
}
