package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Personal is an organizational record. Email/PasswordHash/Role are only set
// for records that double as system users; everyone else has no login.
type Personal struct {
	ID             bson.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre         string         `bson:"nombre" json:"nombre"`
	Apellido       string         `bson:"apellido" json:"apellido"`
	DNI            string         `bson:"dni" json:"dni"`
	Legajo         string         `bson:"legajo" json:"legajo"`
	FechaIngreso   time.Time      `bson:"fechaIngreso,omitempty" json:"fechaIngreso,omitempty"`
	DepartamentoID bson.ObjectID  `bson:"departamentoId,omitempty" json:"departamentoId,omitempty"`
	PuestoID       bson.ObjectID  `bson:"puestoId,omitempty" json:"puestoId,omitempty"`
	Email          string         `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash   string         `bson:"password,omitempty" json:"-"`
	Role           string         `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Nested lookup results carry only the parent's name.
type NombreRef struct {
	Nombre string `bson:"nombre" json:"nombre"`
}

// PersonalEnriquecido is the aggregation shape for listings: departamento and
// puesto joined by id and unwound to single sub-documents.
type PersonalEnriquecido struct {
	Personal     `bson:",inline"`
	Departamento *NombreRef `bson:"departamento,omitempty" json:"departamento,omitempty"`
	Puesto       *NombreRef `bson:"puesto,omitempty" json:"puesto,omitempty"`
}

// PerfilUsuario is the reduced payload login and register answer with. It
// never includes the stored hash.
type PerfilUsuario struct {
	ID       bson.ObjectID `json:"id"`
	Nombre   string        `json:"nombre"`
	Apellido string        `json:"apellido"`
	Email    string        `json:"email,omitempty"`
	Role     string        `json:"role,omitempty"`
	DNI      string        `json:"dni,omitempty"`
	Legajo   string        `json:"legajo,omitempty"`
}
