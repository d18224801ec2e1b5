package dto

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type DepartamentoCreate struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type DepartamentoUpdate struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// SetFields builds the $set document from the supplied fields only. An empty
// nombre is ignored rather than stored; descripcion may be cleared.
func (d DepartamentoUpdate) SetFields() bson.M {
	set := bson.M{}
	if d.Nombre != nil && strings.TrimSpace(*d.Nombre) != "" {
		set["nombre"] = strings.TrimSpace(*d.Nombre)
	}
	if d.Descripcion != nil {
		set["descripcion"] = strings.TrimSpace(*d.Descripcion)
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = time.Now()
	return set
}
