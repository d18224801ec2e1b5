package dto

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PuestoCreate struct {
	Nombre         string `json:"nombre" validate:"required"`
	Descripcion    string `json:"descripcion"`
	DepartamentoID string `json:"departamentoId" validate:"required"`
}

type PuestoUpdate struct {
	Nombre         *string `json:"nombre"`
	Descripcion    *string `json:"descripcion"`
	DepartamentoID *string `json:"departamentoId"`
}

// SetFields covers the text fields; the handler resolves and appends
// departamentoId itself after checking the referenced document exists.
func (p PuestoUpdate) SetFields() bson.M {
	set := bson.M{}
	if p.Nombre != nil && strings.TrimSpace(*p.Nombre) != "" {
		set["nombre"] = strings.TrimSpace(*p.Nombre)
	}
	if p.Descripcion != nil {
		set["descripcion"] = strings.TrimSpace(*p.Descripcion)
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = time.Now()
	return set
}
