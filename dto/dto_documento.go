package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type DocumentoCreate struct {
	Nombre          string `json:"nombre" validate:"required"`
	Codigo          string `json:"codigo" validate:"required"`
	Version         string `json:"version"`
	FechaAprobacion string `json:"fechaAprobacion"`
	Estado          string `json:"estado"`
	TipoDocumento   string `json:"tipoDocumento"`
	ProcesoAsociado string `json:"procesoAsociado"`
	ArchivoURL      string `json:"archivoUrl"`
}

type DocumentoUpdate struct {
	Nombre          *string `json:"nombre"`
	Codigo          *string `json:"codigo"`
	Version         *string `json:"version"`
	FechaAprobacion *string `json:"fechaAprobacion"`
	Estado          *string `json:"estado"`
	TipoDocumento   *string `json:"tipoDocumento"`
	ProcesoAsociado *string `json:"procesoAsociado"`
	ArchivoURL      *string `json:"archivoUrl"`
}

func (d DocumentoUpdate) SetFields() (bson.M, error) {
	set := bson.M{}
	putString(set, "nombre", d.Nombre)
	putString(set, "codigo", d.Codigo)
	if d.Version != nil {
		set["version"] = *d.Version
	}
	if d.Estado != nil {
		set["estado"] = *d.Estado
	}
	if d.TipoDocumento != nil {
		set["tipoDocumento"] = *d.TipoDocumento
	}
	if d.ProcesoAsociado != nil {
		set["procesoAsociado"] = *d.ProcesoAsociado
	}
	if d.ArchivoURL != nil {
		set["archivoUrl"] = *d.ArchivoURL
	}
	if d.FechaAprobacion != nil && *d.FechaAprobacion != "" {
		t, err := ParseFecha(*d.FechaAprobacion)
		if err != nil {
			return nil, err
		}
		set["fechaAprobacion"] = t
	}
	if len(set) == 0 {
		return nil, nil
	}
	set["updatedAt"] = time.Now()
	return set, nil
}
