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

type ObjetivoCalidadStore interface {
	List(ctx context.Context, procesoID *bson.ObjectID) ([]models.ObjetivoCalidad, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.ObjetivoCalidad, error)
	Insert(ctx context.Context, o *models.ObjetivoCalidad) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type DependientesPorObjetivo interface {
	CountByObjetivo(ctx context.Context, objetivoID bson.ObjectID) (int64, error)
}

type ObjetivoCalidadHandler struct {
	store       ObjetivoCalidadStore
	indicadores DependientesPorObjetivo
}

func NewObjetivoCalidadHandler(store ObjetivoCalidadStore, indicadores DependientesPorObjetivo) *ObjetivoCalidadHandler {
	return &ObjetivoCalidadHandler{store: store, indicadores: indicadores}
}

// ListObjetivos accepts an optional ?procesoId= filter.
func (h *ObjetivoCalidadHandler) ListObjetivos(c *fiber.Ctx) error {
	var procesoID *bson.ObjectID
	if raw := c.Query("procesoId"); raw != "" {
		id, err := utils.Oid(raw)
		if err != nil {
			return apperr.InvalidID(c, "ID de proceso inválido.")
		}
		procesoID = &id
	}

	objetivos, err := h.store.List(c.Context(), procesoID)
	if err != nil {
		return apperr.Internal(c, "Error al obtener los objetivos de calidad", err)
	}
	return c.JSON(objetivos)
}

func (h *ObjetivoCalidadHandler) GetObjetivo(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de objetivo inválido.")
	}

	objetivo, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Objetivo de calidad no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el objetivo de calidad", err)
	}
	return c.JSON(objetivo)
}

// CreateObjetivo godoc
// @Summary      Create an objetivo de calidad
// @Tags         objetivos-calidad
// @Accept       json
// @Produce      json
// @Param        objetivo body dto.ObjetivoCalidadCreate true "Objetivo"
// @Success      201 {object} models.ObjetivoCalidad
// @Failure      400 {object} map[string]interface{}
// @Router       /api/objetivos-calidad [post]
func (h *ObjetivoCalidadHandler) CreateObjetivo(c *fiber.Ctx) error {
	var req dto.ObjetivoCalidadCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if dto.Validate(req) != nil {
		return apperr.Validation(c, "Los campos nombre, descripción, responsable y procesoId son obligatorios.")
	}

	procesoID, err := utils.Oid(req.ProcesoID)
	if err != nil {
		return apperr.InvalidID(c, "ID de proceso inválido.")
	}

	objetivo := models.ObjetivoCalidad{
		ProcesoID:   procesoID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Responsable: req.Responsable,
		FechaInicio: time.Now(),
		Indicadores: req.Indicadores,
		Estado:      req.Estado,
	}
	if req.FechaInicio != "" {
		if t, err := dto.ParseFecha(req.FechaInicio); err == nil {
			objetivo.FechaInicio = t
		}
	}
	if req.FechaObjetivo != "" {
		if t, err := dto.ParseFecha(req.FechaObjetivo); err == nil {
			objetivo.FechaObjetivo = &t
		}
	}
	if objetivo.Indicadores == nil {
		objetivo.Indicadores = []string{}
	}
	if objetivo.Estado == "" {
		objetivo.Estado = "en_progreso"
	}

	if err := h.store.Insert(c.Context(), &objetivo); err != nil {
		return apperr.Internal(c, "Error al crear el objetivo de calidad", err)
	}
	return c.Status(fiber.StatusCreated).JSON(objetivo)
}

func (h *ObjetivoCalidadHandler) UpdateObjetivo(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de objetivo inválido.")
	}

	var req dto.ObjetivoCalidadUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	set, err := req.SetFields()
	if err != nil {
		return apperr.Validation(c, "Las fechas proporcionadas no son válidas.")
	}
	if set == nil {
		set = bson.M{"fechaActualizacion": time.Now()}
	}

	err = h.store.Update(c.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Objetivo de calidad no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al actualizar el objetivo de calidad", err)
	}
	return c.JSON(fiber.Map{"message": "Objetivo de calidad actualizado correctamente"})
}

func (h *ObjetivoCalidadHandler) DeleteObjetivo(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de objetivo inválido.")
	}

	count, err := h.indicadores.CountByObjetivo(c.Context(), id)
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el objetivo de calidad", err)
	}
	if count > 0 {
		return apperr.Conflict(c, "El objetivo tiene indicadores asociados y no puede eliminarse.")
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Objetivo de calidad no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el objetivo de calidad", err)
	}
	return c.JSON(fiber.Map{"message": "Objetivo de calidad eliminado correctamente"})
}
