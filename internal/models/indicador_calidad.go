package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Measurement frequencies and states accepted for an indicador. Anything else
// is rejected at the boundary.
var (
	FrecuenciasMedicion = []string{"Diaria", "Semanal", "Quincenal", "Mensual", "Bimestral", "Trimestral", "Anual"}
	EstadosIndicador    = []string{"Activo", "Inactivo", "Suspendido"}
)

type IndicadorCalidad struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre             string        `bson:"nombre" json:"nombre"`
	Descripcion        string        `bson:"descripcion" json:"descripcion"`
	ObjetivoCalidadID  bson.ObjectID `bson:"objetivoCalidadId" json:"objetivoCalidadId"`
	UnidadMedida       string        `bson:"unidadMedida" json:"unidadMedida"`
	Meta               float64       `bson:"meta" json:"meta"`
	LimiteInferior     *float64      `bson:"limiteInferior,omitempty" json:"limiteInferior,omitempty"`
	LimiteSuperior     *float64      `bson:"limiteSuperior,omitempty" json:"limiteSuperior,omitempty"`
	FrecuenciaMedicion string        `bson:"frecuenciaMedicion" json:"frecuenciaMedicion"`
	Responsable        string        `bson:"responsable" json:"responsable"`
	Estado             string        `bson:"estado" json:"estado"`
	FechaCreacion      time.Time     `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaActualizacion time.Time     `bson:"fechaUltimaModificacion" json:"fechaUltimaModificacion"`
}

// IndicadorConObjetivo populates the parent objetivo name for detail views.
type IndicadorConObjetivo struct {
	IndicadorCalidad `bson:",inline"`
	ObjetivoNombre   string `bson:"objetivoNombre" json:"objetivoNombre,omitempty"`
}
