package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/dto"
	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

type ProcesoStore interface {
	List(ctx context.Context) ([]models.Proceso, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.Proceso, error)
	Insert(ctx context.Context, p *models.Proceso) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type DependientesPorProceso interface {
	CountByProceso(ctx context.Context, procesoID bson.ObjectID) (int64, error)
}

type ProcesoHandler struct {
	store     ProcesoStore
	objetivos DependientesPorProceso
}

func NewProcesoHandler(store ProcesoStore, objetivos DependientesPorProceso) *ProcesoHandler {
	return &ProcesoHandler{store: store, objetivos: objetivos}
}

func (h *ProcesoHandler) ListProcesos(c *fiber.Ctx) error {
	procesos, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener los procesos", err)
	}
	return c.JSON(procesos)
}

func (h *ProcesoHandler) GetProceso(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de proceso inválido.")
	}

	proceso, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Proceso no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el proceso", err)
	}
	return c.JSON(proceso)
}

// CreateProceso godoc
// @Summary      Create a proceso
// @Tags         procesos
// @Accept       json
// @Produce      json
// @Param        proceso body dto.ProcesoCreate true "Proceso"
// @Success      201 {object} models.Proceso
// @Failure      400 {object} map[string]interface{}
// @Router       /api/procesos [post]
func (h *ProcesoHandler) CreateProceso(c *fiber.Ctx) error {
	var req dto.ProcesoCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if dto.Validate(req) != nil {
		return apperr.Validation(c, "Los campos nombre, descripción y responsable son obligatorios.")
	}

	proceso := models.Proceso{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Responsable:  req.Responsable,
		Departamento: req.Departamento,
		Estado:       req.Estado,
	}
	if proceso.Estado == "" {
		proceso.Estado = "activo"
	}
	if err := h.store.Insert(c.Context(), &proceso); err != nil {
		return apperr.Internal(c, "Error al crear el proceso", err)
	}
	return c.Status(fiber.StatusCreated).JSON(proceso)
}

func (h *ProcesoHandler) UpdateProceso(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de proceso inválido.")
	}

	var req dto.ProcesoUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	set := req.SetFields()
	if set == nil {
		set = bson.M{"fechaActualizacion": time.Now()}
	}

	err = h.store.Update(c.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Proceso no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al actualizar el proceso", err)
	}
	return c.JSON(fiber.Map{"message": "Proceso actualizado correctamente"})
}

func (h *ProcesoHandler) DeleteProceso(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de proceso inválido.")
	}

	count, err := h.objetivos.CountByProceso(c.Context(), id)
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el proceso", err)
	}
	if count > 0 {
		return apperr.Conflict(c, "El proceso tiene objetivos de calidad asociados y no puede eliminarse.")
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Proceso no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el proceso", err)
	}
	return c.JSON(fiber.Map{"message": "Proceso eliminado correctamente"})
}
