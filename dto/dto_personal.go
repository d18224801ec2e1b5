package dto

// PersonalSave is shared by create and update; the personal validator checks
// required fields and cross-collection references itself, so no validate
// tags here.
type PersonalSave struct {
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	DNI            string `json:"dni"`
	Legajo         string `json:"legajo"`
	FechaIngreso   string `json:"fechaIngreso"`
	DepartamentoID string `json:"departamentoId"`
	PuestoID       string `json:"puestoId"`
}

// PersonalRegister optionally carries login credentials. Supplying only one
// of email/password is rejected by the handler.
type PersonalRegister struct {
	Nombre         string `json:"nombre" validate:"required"`
	Apellido       string `json:"apellido" validate:"required"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	DNI            string `json:"dni"`
	Legajo         string `json:"legajo"`
	FechaIngreso   string `json:"fechaIngreso"`
	DepartamentoID string `json:"departamentoId"`
	PuestoID       string `json:"puestoId"`
}
