package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ObjetivoCalidadCreate struct {
	Nombre        string   `json:"nombre" validate:"required"`
	Descripcion   string   `json:"descripcion" validate:"required"`
	Responsable   string   `json:"responsable" validate:"required"`
	ProcesoID     string   `json:"procesoId" validate:"required"`
	FechaInicio   string   `json:"fechaInicio"`
	FechaObjetivo string   `json:"fechaObjetivo"`
	Indicadores   []string `json:"indicadores"`
	Estado        string   `json:"estado"`
}

type ObjetivoCalidadUpdate struct {
	Nombre        *string   `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	Responsable   *string   `json:"responsable"`
	FechaInicio   *string   `json:"fechaInicio"`
	FechaObjetivo *string   `json:"fechaObjetivo"`
	Indicadores   *[]string `json:"indicadores"`
	Estado        *string   `json:"estado"`
}

func (o ObjetivoCalidadUpdate) SetFields() (bson.M, error) {
	set := bson.M{}
	putString(set, "nombre", o.Nombre)
	putString(set, "descripcion", o.Descripcion)
	putString(set, "responsable", o.Responsable)
	putString(set, "estado", o.Estado)
	if o.FechaInicio != nil && *o.FechaInicio != "" {
		t, err := ParseFecha(*o.FechaInicio)
		if err != nil {
			return nil, err
		}
		set["fechaInicio"] = t
	}
	if o.FechaObjetivo != nil && *o.FechaObjetivo != "" {
		t, err := ParseFecha(*o.FechaObjetivo)
		if err != nil {
			return nil, err
		}
		set["fechaObjetivo"] = t
	}
	if o.Indicadores != nil {
		set["indicadores"] = *o.Indicadores
	}
	if len(set) == 0 {
		return nil, nil
	}
	set["fechaActualizacion"] = time.Now()
	return set, nil
}
