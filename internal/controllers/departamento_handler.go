package controllers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/dto"
	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

type DepartamentoStore interface {
	List(ctx context.Context) ([]models.Departamento, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.Departamento, error)
	Insert(ctx context.Context, d *models.Departamento) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Departamento, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// DependientesPorDepartamento answers how many documents of a dependent
// collection still reference a departamento; deletes are blocked while the
// count is non-zero.
type DependientesPorDepartamento interface {
	CountByDepartamento(ctx context.Context, departamentoID bson.ObjectID) (int64, error)
}

type DepartamentoHandler struct {
	store    DepartamentoStore
	puestos  DependientesPorDepartamento
	personal DependientesPorDepartamento
}

func NewDepartamentoHandler(store DepartamentoStore, puestos, personal DependientesPorDepartamento) *DepartamentoHandler {
	return &DepartamentoHandler{store: store, puestos: puestos, personal: personal}
}

// ListDepartamentos godoc
// @Summary      List departamentos
// @Tags         departamentos
// @Produce      json
// @Success      200 {array} models.Departamento
// @Router       /api/departamentos [get]
func (h *DepartamentoHandler) ListDepartamentos(c *fiber.Ctx) error {
	departamentos, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener los departamentos de la base de datos.", err)
	}
	return c.JSON(departamentos)
}

// GetDepartamento godoc
// @Summary      Get a departamento by id
// @Tags         departamentos
// @Produce      json
// @Param        id path string true "Departamento ID"
// @Success      200 {object} models.Departamento
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /api/departamentos/{id} [get]
func (h *DepartamentoHandler) GetDepartamento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de departamento inválido.")
	}

	departamento, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Departamento no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el departamento de la base de datos.", err)
	}
	return c.JSON(departamento)
}

// CreateDepartamento godoc
// @Summary      Create a departamento
// @Tags         departamentos
// @Accept       json
// @Produce      json
// @Param        departamento body dto.DepartamentoCreate true "Departamento"
// @Success      201 {object} models.Departamento
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /api/departamentos [post]
func (h *DepartamentoHandler) CreateDepartamento(c *fiber.Ctx) error {
	var req dto.DepartamentoCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if missing := dto.Validate(req); missing != nil {
		return apperr.Validation(c, camposObligatorios(missing))
	}

	departamento := models.Departamento{
		Nombre:      req.Nombre,
		Descripcion: strings.TrimSpace(req.Descripcion),
	}
	err := h.store.Insert(c.Context(), &departamento)
	if errors.Is(err, repository.ErrDuplicate) {
		return apperr.Conflict(c, "Ya existe un departamento con ese nombre.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al crear el departamento en la base de datos.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(departamento)
}

// UpdateDepartamento applies only the fields present in the body; omitted
// fields keep their stored values.
func (h *DepartamentoHandler) UpdateDepartamento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de departamento inválido.")
	}

	var req dto.DepartamentoUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	set := req.SetFields()
	if set == nil {
		return apperr.Validation(c, "No se proporcionaron datos válidos para actualizar (nombre o descripción).")
	}

	departamento, err := h.store.Update(c.Context(), id, set)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(c, "Departamento no encontrado para actualizar.")
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(c, "Ya existe un departamento con ese nombre.")
	case err != nil:
		return apperr.Internal(c, "Error al actualizar el departamento en la base de datos.", err)
	}
	return c.JSON(departamento)
}

// DeleteDepartamento refuses to remove a departamento that still has puestos
// or personal pointing at it, instead of leaving dangling references.
func (h *DepartamentoHandler) DeleteDepartamento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de departamento inválido.")
	}

	for _, dep := range []struct {
		store   DependientesPorDepartamento
		mensaje string
	}{
		{h.puestos, "El departamento tiene puestos asociados y no puede eliminarse."},
		{h.personal, "El departamento tiene personal asociado y no puede eliminarse."},
	} {
		count, err := dep.store.CountByDepartamento(c.Context(), id)
		if err != nil {
			return apperr.Internal(c, "Error al eliminar el departamento de la base de datos.", err)
		}
		if count > 0 {
			return apperr.Conflict(c, dep.mensaje)
		}
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Departamento no encontrado para eliminar.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el departamento de la base de datos.", err)
	}
	return c.JSON(fiber.Map{"message": "Departamento eliminado correctamente.", "id": c.Params("id")})
}
