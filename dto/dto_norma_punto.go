package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NormaPuntoCreate struct {
	Norma                string `json:"norma" validate:"required"`
	Clausula             string `json:"clausula" validate:"required"`
	Titulo               string `json:"titulo" validate:"required"`
	DescripcionDetallada string `json:"descripcionDetallada"`
	Estado               string `json:"estado"`
}

type NormaPuntoUpdate struct {
	Norma                *string `json:"norma"`
	Clausula             *string `json:"clausula"`
	Titulo               *string `json:"titulo"`
	DescripcionDetallada *string `json:"descripcionDetallada"`
	Estado               *string `json:"estado"`
}

func (n NormaPuntoUpdate) SetFields() bson.M {
	set := bson.M{}
	putString(set, "norma", n.Norma)
	putString(set, "clausula", n.Clausula)
	putString(set, "titulo", n.Titulo)
	putString(set, "estado", n.Estado)
	if n.DescripcionDetallada != nil {
		set["descripcionDetallada"] = *n.DescripcionDetallada
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = time.Now()
	return set
}
