package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IndicadorCalidadCreate struct {
	Nombre             string   `json:"nombre" validate:"required"`
	Descripcion        string   `json:"descripcion"`
	ObjetivoCalidadID  string   `json:"objetivoCalidadId" validate:"required"`
	UnidadMedida       string   `json:"unidadMedida" validate:"required"`
	Meta               *float64 `json:"meta" validate:"required"`
	LimiteInferior     *float64 `json:"limiteInferior"`
	LimiteSuperior     *float64 `json:"limiteSuperior"`
	FrecuenciaMedicion string   `json:"frecuenciaMedicion"`
	Responsable        string   `json:"responsable" validate:"required"`
	Estado             string   `json:"estado"`
}

type IndicadorCalidadUpdate struct {
	Nombre             *string  `json:"nombre"`
	Descripcion        *string  `json:"descripcion"`
	UnidadMedida       *string  `json:"unidadMedida"`
	Meta               *float64 `json:"meta"`
	LimiteInferior     *float64 `json:"limiteInferior"`
	LimiteSuperior     *float64 `json:"limiteSuperior"`
	FrecuenciaMedicion *string  `json:"frecuenciaMedicion"`
	Responsable        *string  `json:"responsable"`
	Estado             *string  `json:"estado"`
}

func (i IndicadorCalidadUpdate) SetFields() bson.M {
	set := bson.M{}
	putString(set, "nombre", i.Nombre)
	putString(set, "unidadMedida", i.UnidadMedida)
	putString(set, "frecuenciaMedicion", i.FrecuenciaMedicion)
	putString(set, "responsable", i.Responsable)
	putString(set, "estado", i.Estado)
	if i.Descripcion != nil {
		set["descripcion"] = *i.Descripcion
	}
	if i.Meta != nil {
		set["meta"] = *i.Meta
	}
	if i.LimiteInferior != nil {
		set["limiteInferior"] = *i.LimiteInferior
	}
	if i.LimiteSuperior != nil {
		set["limiteSuperior"] = *i.LimiteSuperior
	}
	if len(set) == 0 {
		return nil
	}
	set["fechaUltimaModificacion"] = time.Now()
	return set
}
