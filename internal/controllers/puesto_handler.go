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

type PuestoStore interface {
	List(ctx context.Context) ([]models.PuestoConDepartamento, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.PuestoConDepartamento, error)
	Insert(ctx context.Context, p *models.Puesto) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Puesto, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type DependientesPorPuesto interface {
	CountByPuesto(ctx context.Context, puestoID bson.ObjectID) (int64, error)
}

type PuestoHandler struct {
	store         PuestoStore
	departamentos DepartamentoStore
	personal      DependientesPorPuesto
}

func NewPuestoHandler(store PuestoStore, departamentos DepartamentoStore, personal DependientesPorPuesto) *PuestoHandler {
	return &PuestoHandler{store: store, departamentos: departamentos, personal: personal}
}

// ListPuestos godoc
// @Summary      List puestos with departamento name
// @Tags         puestos
// @Produce      json
// @Success      200 {array} models.PuestoConDepartamento
// @Router       /api/puestos [get]
func (h *PuestoHandler) ListPuestos(c *fiber.Ctx) error {
	puestos, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener los puestos de la base de datos.", err)
	}
	return c.JSON(puestos)
}

func (h *PuestoHandler) GetPuesto(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de puesto inválido.")
	}

	puesto, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Puesto no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el puesto de la base de datos.", err)
	}
	return c.JSON(puesto)
}

// CreatePuesto godoc
// @Summary      Create a puesto
// @Tags         puestos
// @Accept       json
// @Produce      json
// @Param        puesto body dto.PuestoCreate true "Puesto"
// @Success      201 {object} models.Puesto
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /api/puestos [post]
func (h *PuestoHandler) CreatePuesto(c *fiber.Ctx) error {
	var req dto.PuestoCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if missing := dto.Validate(req); missing != nil {
		return apperr.Validation(c, camposObligatorios(missing))
	}

	departamentoID, err := utils.Oid(req.DepartamentoID)
	if err != nil {
		return apperr.InvalidID(c, `El campo "departamentoId" es requerido y debe ser un ObjectId válido.`)
	}
	// The reference is checked, not enforced: the departamento can still
	// disappear between this lookup and the insert.
	if _, err := h.departamentos.Get(c.Context(), departamentoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(c, "Departamento especificado no encontrado.")
		}
		return apperr.Internal(c, "Error al crear el puesto en la base de datos.", err)
	}

	puesto := models.Puesto{
		Nombre:         req.Nombre,
		Descripcion:    strings.TrimSpace(req.Descripcion),
		DepartamentoID: departamentoID,
	}
	if err := h.store.Insert(c.Context(), &puesto); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperr.Conflict(c, "Ya existe un puesto con ese nombre.")
		}
		return apperr.Internal(c, "Error al crear el puesto en la base de datos.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(puesto)
}

func (h *PuestoHandler) UpdatePuesto(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de puesto inválido.")
	}

	var req dto.PuestoUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	set := req.SetFields()

	if req.DepartamentoID != nil {
		departamentoID, err := utils.Oid(*req.DepartamentoID)
		if err != nil {
			return apperr.InvalidID(c, `El campo "departamentoId" proporcionado es inválido.`)
		}
		if _, err := h.departamentos.Get(c.Context(), departamentoID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.NotFound(c, "Departamento especificado para la actualización no encontrado.")
			}
			return apperr.Internal(c, "Error al actualizar el puesto en la base de datos.", err)
		}
		if set == nil {
			set = bson.M{}
		}
		set["departamentoId"] = departamentoID
	}
	if len(set) == 0 {
		return apperr.Validation(c, "No se proporcionaron datos válidos para actualizar.")
	}

	puesto, err := h.store.Update(c.Context(), id, set)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(c, "Puesto no encontrado para actualizar.")
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(c, "Ya existe un puesto con ese nombre.")
	case err != nil:
		return apperr.Internal(c, "Error al actualizar el puesto en la base de datos.", err)
	}
	return c.JSON(puesto)
}

func (h *PuestoHandler) DeletePuesto(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de puesto inválido.")
	}

	count, err := h.personal.CountByPuesto(c.Context(), id)
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el puesto de la base de datos.", err)
	}
	if count > 0 {
		return apperr.Conflict(c, "El puesto tiene personal asociado y no puede eliminarse.")
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Puesto no encontrado para eliminar.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el puesto de la base de datos.", err)
	}
	return c.JSON(fiber.Map{"message": "Puesto eliminado correctamente.", "id": c.Params("id")})
}
