package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Puesto struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre         string        `bson:"nombre" json:"nombre"`
	Descripcion    string        `bson:"descripcion" json:"descripcion"`
	DepartamentoID bson.ObjectID `bson:"departamentoId" json:"departamentoId"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// PuestoConDepartamento is the $lookup-enriched listing shape: the parent
// departamento name flattened one level for display.
type PuestoConDepartamento struct {
	Puesto             `bson:",inline"`
	DepartamentoNombre string `bson:"departamentoNombre" json:"departamentoNombre,omitempty"`
}
