package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
)

// In-memory stand-ins for the mongo repositories. They honor the same
// sentinel errors so handler branching is exercised exactly as in
// production.

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func httptestGet(t *testing.T, app *fiber.App, target string) []map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

type fakeContador struct{ n int64 }

func (f fakeContador) CountByDepartamento(context.Context, bson.ObjectID) (int64, error) {
	return f.n, nil
}
func (f fakeContador) CountByPuesto(context.Context, bson.ObjectID) (int64, error)   { return f.n, nil }
func (f fakeContador) CountByProceso(context.Context, bson.ObjectID) (int64, error)  { return f.n, nil }
func (f fakeContador) CountByObjetivo(context.Context, bson.ObjectID) (int64, error) { return f.n, nil }

type fakeDepartamentos struct {
	items map[bson.ObjectID]*models.Departamento
}

func newFakeDepartamentos() *fakeDepartamentos {
	return &fakeDepartamentos{items: map[bson.ObjectID]*models.Departamento{}}
}

func (f *fakeDepartamentos) add(nombre string) bson.ObjectID {
	id := bson.NewObjectID()
	f.items[id] = &models.Departamento{ID: id, Nombre: nombre}
	return id
}

func (f *fakeDepartamentos) List(context.Context) ([]models.Departamento, error) {
	out := make([]models.Departamento, 0, len(f.items))
	for _, d := range f.items {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDepartamentos) Get(_ context.Context, id bson.ObjectID) (*models.Departamento, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copia := *d
	return &copia, nil
}

func (f *fakeDepartamentos) Insert(_ context.Context, d *models.Departamento) error {
	for _, existing := range f.items {
		if existing.Nombre == d.Nombre {
			return repository.ErrDuplicate
		}
	}
	d.ID = bson.NewObjectID()
	copia := *d
	f.items[d.ID] = &copia
	return nil
}

func (f *fakeDepartamentos) Update(_ context.Context, id bson.ObjectID, set bson.M) (*models.Departamento, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if nombre, ok := set["nombre"].(string); ok {
		for otherID, other := range f.items {
			if otherID != id && other.Nombre == nombre {
				return nil, repository.ErrDuplicate
			}
		}
		d.Nombre = nombre
	}
	if descripcion, ok := set["descripcion"].(string); ok {
		d.Descripcion = descripcion
	}
	copia := *d
	return &copia, nil
}

func (f *fakeDepartamentos) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakePuestos struct {
	items map[bson.ObjectID]*models.PuestoConDepartamento
}

func newFakePuestos() *fakePuestos {
	return &fakePuestos{items: map[bson.ObjectID]*models.PuestoConDepartamento{}}
}

func (f *fakePuestos) add(nombre string, departamentoID bson.ObjectID) bson.ObjectID {
	id := bson.NewObjectID()
	f.items[id] = &models.PuestoConDepartamento{
		Puesto: models.Puesto{ID: id, Nombre: nombre, DepartamentoID: departamentoID},
	}
	return id
}

func (f *fakePuestos) List(context.Context) ([]models.PuestoConDepartamento, error) {
	out := make([]models.PuestoConDepartamento, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePuestos) Get(_ context.Context, id bson.ObjectID) (*models.PuestoConDepartamento, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakePuestos) Insert(_ context.Context, p *models.Puesto) error {
	p.ID = bson.NewObjectID()
	f.items[p.ID] = &models.PuestoConDepartamento{Puesto: *p}
	return nil
}

func (f *fakePuestos) Update(_ context.Context, id bson.ObjectID, set bson.M) (*models.Puesto, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if nombre, ok := set["nombre"].(string); ok {
		p.Nombre = nombre
	}
	if descripcion, ok := set["descripcion"].(string); ok {
		p.Descripcion = descripcion
	}
	if departamentoID, ok := set["departamentoId"].(bson.ObjectID); ok {
		p.DepartamentoID = departamentoID
	}
	copia := p.Puesto
	return &copia, nil
}

func (f *fakePuestos) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakePersonal struct {
	items map[bson.ObjectID]*models.Personal
}

func newFakePersonal() *fakePersonal {
	return &fakePersonal{items: map[bson.ObjectID]*models.Personal{}}
}

func (f *fakePersonal) enriquecer(p models.Personal) models.PersonalEnriquecido {
	return models.PersonalEnriquecido{Personal: p}
}

func (f *fakePersonal) List(context.Context) ([]models.PersonalEnriquecido, error) {
	out := make([]models.PersonalEnriquecido, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, f.enriquecer(*p))
	}
	return out, nil
}

func (f *fakePersonal) ListByDepartamento(_ context.Context, departamentoID bson.ObjectID) ([]models.PersonalEnriquecido, error) {
	out := []models.PersonalEnriquecido{}
	for _, p := range f.items {
		if p.DepartamentoID == departamentoID {
			out = append(out, f.enriquecer(*p))
		}
	}
	return out, nil
}

func (f *fakePersonal) Get(_ context.Context, id bson.ObjectID) (*models.PersonalEnriquecido, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	enriquecido := f.enriquecer(*p)
	return &enriquecido, nil
}

func (f *fakePersonal) Insert(_ context.Context, p *models.Personal) error {
	p.ID = bson.NewObjectID()
	copia := *p
	f.items[p.ID] = &copia
	return nil
}

func (f *fakePersonal) Update(_ context.Context, id bson.ObjectID, set bson.M) error {
	p, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	for key, val := range set {
		s, isString := val.(string)
		if !isString {
			continue
		}
		switch key {
		case "nombre":
			p.Nombre = s
		case "apellido":
			p.Apellido = s
		case "dni":
			p.DNI = s
		case "legajo":
			p.Legajo = s
		}
	}
	return nil
}

func (f *fakePersonal) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakePersonal) FindByEmail(_ context.Context, email string) (*models.Personal, error) {
	for _, p := range f.items {
		if p.Email == email {
			copia := *p
			return &copia, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePersonal) ExistsDNI(_ context.Context, dni string, excludeID *bson.ObjectID) (bool, error) {
	for id, p := range f.items {
		if p.DNI == dni && (excludeID == nil || id != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePersonal) ExistsLegajo(_ context.Context, legajo string, excludeID *bson.ObjectID) (bool, error) {
	for id, p := range f.items {
		if p.Legajo == legajo && (excludeID == nil || id != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

type fakeDocumentos struct {
	items map[bson.ObjectID]*models.Documento
}

func newFakeDocumentos() *fakeDocumentos {
	return &fakeDocumentos{items: map[bson.ObjectID]*models.Documento{}}
}

func (f *fakeDocumentos) add(nombre, codigo string) bson.ObjectID {
	id := bson.NewObjectID()
	f.items[id] = &models.Documento{ID: id, Nombre: nombre, Codigo: codigo}
	return id
}

func (f *fakeDocumentos) List(context.Context) ([]models.Documento, error) {
	out := make([]models.Documento, 0, len(f.items))
	for _, d := range f.items {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDocumentos) Get(_ context.Context, id bson.ObjectID) (*models.Documento, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copia := *d
	return &copia, nil
}

func (f *fakeDocumentos) FindByCodigo(_ context.Context, codigo string) (*models.Documento, error) {
	for _, d := range f.items {
		if d.Codigo == codigo {
			copia := *d
			return &copia, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDocumentos) Insert(_ context.Context, d *models.Documento) error {
	for _, existing := range f.items {
		if existing.Codigo == d.Codigo {
			return repository.ErrDuplicate
		}
	}
	d.ID = bson.NewObjectID()
	copia := *d
	f.items[d.ID] = &copia
	return nil
}

func (f *fakeDocumentos) Update(_ context.Context, id bson.ObjectID, set bson.M) (*models.Documento, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for key, val := range set {
		s, isString := val.(string)
		if !isString {
			continue
		}
		switch key {
		case "nombre":
			d.Nombre = s
		case "codigo":
			d.Codigo = s
		case "version":
			d.Version = s
		case "estado":
			d.Estado = s
		}
	}
	copia := *d
	return &copia, nil
}

func (f *fakeDocumentos) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeNormasPuntos struct {
	items map[bson.ObjectID]*models.NormaPunto
}

func newFakeNormasPuntos() *fakeNormasPuntos {
	return &fakeNormasPuntos{items: map[bson.ObjectID]*models.NormaPunto{}}
}

func (f *fakeNormasPuntos) add(norma, clausula, titulo string) bson.ObjectID {
	id := bson.NewObjectID()
	f.items[id] = &models.NormaPunto{ID: id, Norma: norma, Clausula: clausula, Titulo: titulo}
	return id
}

func (f *fakeNormasPuntos) List(context.Context) ([]models.NormaPunto, error) {
	out := make([]models.NormaPunto, 0, len(f.items))
	for _, n := range f.items {
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNormasPuntos) Get(_ context.Context, id bson.ObjectID) (*models.NormaPunto, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copia := *n
	return &copia, nil
}

func (f *fakeNormasPuntos) FindByNormaClausula(_ context.Context, norma, clausula string) (*models.NormaPunto, error) {
	for _, n := range f.items {
		if n.Norma == norma && n.Clausula == clausula {
			copia := *n
			return &copia, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeNormasPuntos) Insert(_ context.Context, n *models.NormaPunto) error {
	for _, existing := range f.items {
		if existing.Norma == n.Norma && existing.Clausula == n.Clausula {
			return repository.ErrDuplicate
		}
	}
	n.ID = bson.NewObjectID()
	copia := *n
	f.items[n.ID] = &copia
	return nil
}

func (f *fakeNormasPuntos) Update(_ context.Context, id bson.ObjectID, set bson.M) (*models.NormaPunto, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for key, val := range set {
		s, isString := val.(string)
		if !isString {
			continue
		}
		switch key {
		case "norma":
			n.Norma = s
		case "clausula":
			n.Clausula = s
		case "titulo":
			n.Titulo = s
		case "estado":
			n.Estado = s
		}
	}
	copia := *n
	return &copia, nil
}

func (f *fakeNormasPuntos) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
