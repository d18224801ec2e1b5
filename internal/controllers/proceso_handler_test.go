package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
)

type fakeProcesos struct {
	items map[bson.ObjectID]*models.Proceso
}

func newFakeProcesos() *fakeProcesos {
	return &fakeProcesos{items: map[bson.ObjectID]*models.Proceso{}}
}

func (f *fakeProcesos) add(nombre string) bson.ObjectID {
	id := bson.NewObjectID()
	f.items[id] = &models.Proceso{ID: id, Nombre: nombre}
	return id
}

func (f *fakeProcesos) List(context.Context) ([]models.Proceso, error) {
	out := make([]models.Proceso, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProcesos) Get(_ context.Context, id bson.ObjectID) (*models.Proceso, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProcesos) Insert(_ context.Context, p *models.Proceso) error {
	p.ID = bson.NewObjectID()
	copia := *p
	f.items[p.ID] = &copia
	return nil
}

func (f *fakeProcesos) Update(_ context.Context, id bson.ObjectID, set bson.M) error {
	p, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if estado, ok := set["estado"].(string); ok {
		p.Estado = estado
	}
	if nombre, ok := set["nombre"].(string); ok {
		p.Nombre = nombre
	}
	return nil
}

func (f *fakeProcesos) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func procesoApp(store *fakeProcesos, objetivos fakeContador) *fiber.App {
	h := NewProcesoHandler(store, objetivos)
	app := fiber.New()
	app.Get("/api/procesos", h.ListProcesos)
	app.Get("/api/procesos/:id", h.GetProceso)
	app.Post("/api/procesos", h.CreateProceso)
	app.Put("/api/procesos/:id", h.UpdateProceso)
	app.Delete("/api/procesos/:id", h.DeleteProceso)
	return app
}

func TestCreateProceso(t *testing.T) {
	app := procesoApp(newFakeProcesos(), fakeContador{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/procesos", fiber.Map{
		"nombre":      "Auditorías internas",
		"descripcion": "Planificación y ejecución de auditorías",
		"responsable": "Ana García",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "activo", body["estado"])
}

func TestCreateProcesoCamposRequeridos(t *testing.T) {
	app := procesoApp(newFakeProcesos(), fakeContador{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/procesos", fiber.Map{
		"nombre": "Auditorías internas",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apperr.CodeValidation, body["code"])
}

func TestUpdateProcesoEstado(t *testing.T) {
	store := newFakeProcesos()
	id := store.add("Auditorías internas")
	app := procesoApp(store, fakeContador{})

	resp, body := doJSON(t, app, http.MethodPut, "/api/procesos/"+id.Hex(), fiber.Map{
		"estado": "inactivo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Proceso actualizado correctamente", body["message"])
	assert.Equal(t, "inactivo", store.items[id].Estado)
}

func TestDeleteProcesoConObjetivos(t *testing.T) {
	store := newFakeProcesos()
	id := store.add("Auditorías internas")
	app := procesoApp(store, fakeContador{n: 3})

	resp, body := doJSON(t, app, http.MethodDelete, "/api/procesos/"+id.Hex(), nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apperr.CodeConflict, body["code"])
	assert.Contains(t, store.items, id)
}
