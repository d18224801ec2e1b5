package controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoflow-backend/internal/apperr"
)

func puestoApp(store *fakePuestos, departamentos *fakeDepartamentos, personal fakeContador) *fiber.App {
	h := NewPuestoHandler(store, departamentos, personal)
	app := fiber.New()
	app.Get("/api/puestos", h.ListPuestos)
	app.Get("/api/puestos/:id", h.GetPuesto)
	app.Post("/api/puestos", h.CreatePuesto)
	app.Put("/api/puestos/:id", h.UpdatePuesto)
	app.Delete("/api/puestos/:id", h.DeletePuesto)
	return app
}

func TestCreatePuesto(t *testing.T) {
	departamentos := newFakeDepartamentos()
	departamentoID := departamentos.add("Calidad")
	app := puestoApp(newFakePuestos(), departamentos, fakeContador{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/puestos", fiber.Map{
		"nombre":         "Auditor interno",
		"departamentoId": departamentoID.Hex(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Auditor interno", body["nombre"])
	assert.Equal(t, departamentoID.Hex(), body["departamentoId"])
}

func TestCreatePuestoDepartamentoInexistente(t *testing.T) {
	app := puestoApp(newFakePuestos(), newFakeDepartamentos(), fakeContador{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/puestos", fiber.Map{
		"nombre":         "Auditor interno",
		"departamentoId": "68bd6ff6f80438824239b8a9",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Departamento especificado no encontrado.", body["message"])
}

func TestCreatePuestoDepartamentoInvalido(t *testing.T) {
	app := puestoApp(newFakePuestos(), newFakeDepartamentos(), fakeContador{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/puestos", fiber.Map{
		"nombre":         "Auditor interno",
		"departamentoId": "zzz",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apperr.CodeInvalidID, body["code"])
}

func TestUpdatePuestoCambioDeDepartamento(t *testing.T) {
	departamentos := newFakeDepartamentos()
	origen := departamentos.add("Calidad")
	destino := departamentos.add("Producción")
	puestos := newFakePuestos()
	id := puestos.add("Auditor interno", origen)
	app := puestoApp(puestos, departamentos, fakeContador{})

	resp, body := doJSON(t, app, http.MethodPut, "/api/puestos/"+id.Hex(), fiber.Map{
		"departamentoId": destino.Hex(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, destino.Hex(), body["departamentoId"])
}

func TestUpdatePuestoSinDatos(t *testing.T) {
	puestos := newFakePuestos()
	id := puestos.add("Auditor interno", newFakeDepartamentos().add("Calidad"))
	app := puestoApp(puestos, newFakeDepartamentos(), fakeContador{})

	resp, body := doJSON(t, app, http.MethodPut, "/api/puestos/"+id.Hex(), fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apperr.CodeValidation, body["code"])
}

func TestDeletePuestoConPersonal(t *testing.T) {
	puestos := newFakePuestos()
	id := puestos.add("Auditor interno", newFakeDepartamentos().add("Calidad"))
	app := puestoApp(puestos, newFakeDepartamentos(), fakeContador{n: 1})

	resp, body := doJSON(t, app, http.MethodDelete, "/api/puestos/"+id.Hex(), nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "El puesto tiene personal asociado y no puede eliminarse.", body["message"])
}
