package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProcesoCreate struct {
	Nombre       string `json:"nombre" validate:"required"`
	Descripcion  string `json:"descripcion" validate:"required"`
	Responsable  string `json:"responsable" validate:"required"`
	Departamento string `json:"departamento"`
	Estado       string `json:"estado"`
}

type ProcesoUpdate struct {
	Nombre       *string `json:"nombre"`
	Descripcion  *string `json:"descripcion"`
	Responsable  *string `json:"responsable"`
	Departamento *string `json:"departamento"`
	Estado       *string `json:"estado"`
}

func (p ProcesoUpdate) SetFields() bson.M {
	set := bson.M{}
	putString(set, "nombre", p.Nombre)
	putString(set, "descripcion", p.Descripcion)
	putString(set, "responsable", p.Responsable)
	putString(set, "departamento", p.Departamento)
	putString(set, "estado", p.Estado)
	if len(set) == 0 {
		return nil
	}
	set["fechaActualizacion"] = time.Now()
	return set
}

func putString(set bson.M, key string, val *string) {
	if val != nil && *val != "" {
		set[key] = *val
	}
}
