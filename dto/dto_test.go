package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	missing := Validate(DepartamentoCreate{})
	require.Equal(t, []string{"nombre"}, missing)

	missing = Validate(NormaPuntoCreate{Titulo: "Contexto"})
	require.Equal(t, []string{"norma", "clausula"}, missing)

	assert.Nil(t, Validate(DepartamentoCreate{Nombre: "Calidad"}))
}

func TestParseFecha(t *testing.T) {
	got, err := ParseFecha("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseFecha("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = ParseFecha("15/03/2024")
	assert.Error(t, err)
}

func TestDepartamentoUpdateSetFields(t *testing.T) {
	assert.Nil(t, DepartamentoUpdate{}.SetFields())

	nombre := "  Calidad  "
	set := DepartamentoUpdate{Nombre: &nombre}.SetFields()
	require.NotNil(t, set)
	assert.Equal(t, "Calidad", set["nombre"])
	assert.Contains(t, set, "updatedAt")
	assert.NotContains(t, set, "descripcion")

	// An explicit empty descripcion clears the stored value; an empty nombre
	// is ignored.
	empty := ""
	set = DepartamentoUpdate{Nombre: &empty, Descripcion: &empty}.SetFields()
	require.NotNil(t, set)
	assert.NotContains(t, set, "nombre")
	assert.Equal(t, "", set["descripcion"])
}

func TestDocumentoUpdateSetFields(t *testing.T) {
	set, err := DocumentoUpdate{}.SetFields()
	require.NoError(t, err)
	assert.Nil(t, set)

	codigo := "DOC-001"
	fecha := "2024-01-10"
	set, err = DocumentoUpdate{Codigo: &codigo, FechaAprobacion: &fecha}.SetFields()
	require.NoError(t, err)
	assert.Equal(t, "DOC-001", set["codigo"])
	assert.Contains(t, set, "fechaAprobacion")
	assert.Contains(t, set, "updatedAt")

	mala := "no-es-fecha"
	_, err = DocumentoUpdate{FechaAprobacion: &mala}.SetFields()
	assert.Error(t, err)
}

func TestNormaPuntoUpdateSetFields(t *testing.T) {
	assert.Nil(t, NormaPuntoUpdate{}.SetFields())

	clausula := "4.1"
	set := NormaPuntoUpdate{Clausula: &clausula}.SetFields()
	require.NotNil(t, set)
	assert.Equal(t, "4.1", set["clausula"])
	assert.Contains(t, set, "updatedAt")
}

func TestProcesoUpdateStampsFechaActualizacion(t *testing.T) {
	estado := "inactivo"
	set := ProcesoUpdate{Estado: &estado}.SetFields()
	require.NotNil(t, set)
	assert.Equal(t, "inactivo", set["estado"])
	assert.Contains(t, set, "fechaActualizacion")
	assert.NotContains(t, set, "updatedAt")
}
