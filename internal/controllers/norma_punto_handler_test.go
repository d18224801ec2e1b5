package controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoflow-backend/internal/apperr"
)

func normaPuntoApp(store *fakeNormasPuntos) *fiber.App {
	h := NewNormaPuntoHandler(store)
	app := fiber.New()
	app.Get("/api/normas-puntos", h.ListNormasPuntos)
	app.Get("/api/normas-puntos/:id", h.GetNormaPunto)
	app.Post("/api/normas-puntos", h.CreateNormaPunto)
	app.Put("/api/normas-puntos/:id", h.UpdateNormaPunto)
	app.Delete("/api/normas-puntos/:id", h.DeleteNormaPunto)
	return app
}

func TestListNormasPuntosVacio(t *testing.T) {
	app := normaPuntoApp(newFakeNormasPuntos())

	out := httptestGet(t, app, "/api/normas-puntos")
	assert.Empty(t, out)
}

func TestCreateNormaPunto(t *testing.T) {
	app := normaPuntoApp(newFakeNormasPuntos())

	resp, body := doJSON(t, app, http.MethodPost, "/api/normas-puntos", fiber.Map{
		"norma":    "ISO 9001:2015",
		"clausula": "4.1",
		"titulo":   "Comprensión de la organización y su contexto",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "4.1", body["clausula"])
	assert.Equal(t, "Vigente", body["estado"])
}

func TestCreateNormaPuntoParDuplicado(t *testing.T) {
	store := newFakeNormasPuntos()
	store.add("ISO 9001:2015", "4.1", "Contexto")
	app := normaPuntoApp(store)

	resp, body := doJSON(t, app, http.MethodPost, "/api/normas-puntos", fiber.Map{
		"norma":    "ISO 9001:2015",
		"clausula": "4.1",
		"titulo":   "Otro título",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apperr.CodeConflict, body["code"])
}

func TestCreateNormaPuntoMismaClausulaOtraNorma(t *testing.T) {
	store := newFakeNormasPuntos()
	store.add("ISO 9001:2015", "4.1", "Contexto")
	app := normaPuntoApp(store)

	// The pair is unique, not each half on its own.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/normas-puntos", fiber.Map{
		"norma":    "ISO 14001:2015",
		"clausula": "4.1",
		"titulo":   "Contexto ambiental",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateNormaPuntoCamposRequeridos(t *testing.T) {
	app := normaPuntoApp(newFakeNormasPuntos())

	resp, body := doJSON(t, app, http.MethodPost, "/api/normas-puntos", fiber.Map{
		"norma": "ISO 9001:2015",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Los campos clausula, titulo son obligatorios.", body["message"])
}

func TestUpdateNormaPuntoClausulaTomada(t *testing.T) {
	store := newFakeNormasPuntos()
	store.add("ISO 9001:2015", "4.1", "Contexto")
	id := store.add("ISO 9001:2015", "4.2", "Partes interesadas")
	app := normaPuntoApp(store)

	resp, body := doJSON(t, app, http.MethodPut, "/api/normas-puntos/"+id.Hex(), fiber.Map{
		"clausula": "4.1",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apperr.CodeConflict, body["code"])
}

func TestUpdateNormaPuntoSoloTitulo(t *testing.T) {
	store := newFakeNormasPuntos()
	id := store.add("ISO 9001:2015", "4.1", "Contexto")
	app := normaPuntoApp(store)

	resp, body := doJSON(t, app, http.MethodPut, "/api/normas-puntos/"+id.Hex(), fiber.Map{
		"titulo": "Contexto de la organización",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Contexto de la organización", body["titulo"])
	assert.Equal(t, "4.1", body["clausula"])
}
