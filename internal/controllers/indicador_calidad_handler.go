package controllers

import (
	"context"
	"errors"
	"slices"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/dto"
	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

type IndicadorCalidadStore interface {
	List(ctx context.Context) ([]models.IndicadorCalidad, error)
	ListByObjetivo(ctx context.Context, objetivoID bson.ObjectID) ([]models.IndicadorCalidad, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.IndicadorConObjetivo, error)
	Insert(ctx context.Context, i *models.IndicadorCalidad) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.IndicadorCalidad, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type IndicadorCalidadHandler struct {
	store     IndicadorCalidadStore
	objetivos ObjetivoCalidadStore
}

func NewIndicadorCalidadHandler(store IndicadorCalidadStore, objetivos ObjetivoCalidadStore) *IndicadorCalidadHandler {
	return &IndicadorCalidadHandler{store: store, objetivos: objetivos}
}

func (h *IndicadorCalidadHandler) ListIndicadores(c *fiber.Ctx) error {
	indicadores, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener los indicadores.", err)
	}
	return c.JSON(indicadores)
}

func (h *IndicadorCalidadHandler) ListIndicadoresByObjetivo(c *fiber.Ctx) error {
	objetivoID, err := utils.Oid(c.Params("objetivoId"))
	if err != nil {
		return apperr.InvalidID(c, "ID inválido.")
	}

	indicadores, err := h.store.ListByObjetivo(c.Context(), objetivoID)
	if err != nil {
		return apperr.Internal(c, "Error al obtener los indicadores.", err)
	}
	return c.JSON(indicadores)
}

func (h *IndicadorCalidadHandler) GetIndicador(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID inválido.")
	}

	indicador, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Indicador no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el indicador.", err)
	}
	return c.JSON(indicador)
}

// CreateIndicador godoc
// @Summary      Create an indicador de calidad
// @Description  The referenced objetivo must exist; frecuencia and estado are
// @Description  restricted to the declared value sets.
// @Tags         indicadores-calidad
// @Accept       json
// @Produce      json
// @Param        indicador body dto.IndicadorCalidadCreate true "Indicador"
// @Success      201 {object} models.IndicadorCalidad
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /api/indicadores-calidad [post]
func (h *IndicadorCalidadHandler) CreateIndicador(c *fiber.Ctx) error {
	var req dto.IndicadorCalidadCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if missing := dto.Validate(req); missing != nil {
		return apperr.Validation(c, camposObligatorios(missing))
	}

	objetivoID, err := utils.Oid(req.ObjetivoCalidadID)
	if err != nil {
		return apperr.InvalidID(c, "ID inválido.")
	}
	if _, err := h.objetivos.Get(c.Context(), objetivoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(c, "El objetivo de calidad asociado no existe.")
		}
		return apperr.Internal(c, "Error al crear el indicador.", err)
	}

	indicador := models.IndicadorCalidad{
		Nombre:             req.Nombre,
		Descripcion:        req.Descripcion,
		ObjetivoCalidadID:  objetivoID,
		UnidadMedida:       req.UnidadMedida,
		Meta:               *req.Meta,
		LimiteInferior:     req.LimiteInferior,
		LimiteSuperior:     req.LimiteSuperior,
		FrecuenciaMedicion: req.FrecuenciaMedicion,
		Responsable:        req.Responsable,
		Estado:             req.Estado,
	}
	if indicador.FrecuenciaMedicion == "" {
		indicador.FrecuenciaMedicion = "Mensual"
	}
	if indicador.Estado == "" {
		indicador.Estado = "Activo"
	}
	if !slices.Contains(models.FrecuenciasMedicion, indicador.FrecuenciaMedicion) {
		return apperr.Validation(c, "La frecuencia de medición no es válida.")
	}
	if !slices.Contains(models.EstadosIndicador, indicador.Estado) {
		return apperr.Validation(c, "El estado del indicador no es válido.")
	}

	if err := h.store.Insert(c.Context(), &indicador); err != nil {
		return apperr.Internal(c, "Error al crear el indicador.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(indicador)
}

func (h *IndicadorCalidadHandler) UpdateIndicador(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID inválido.")
	}

	var req dto.IndicadorCalidadUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if req.FrecuenciaMedicion != nil && !slices.Contains(models.FrecuenciasMedicion, *req.FrecuenciaMedicion) {
		return apperr.Validation(c, "La frecuencia de medición no es válida.")
	}
	if req.Estado != nil && !slices.Contains(models.EstadosIndicador, *req.Estado) {
		return apperr.Validation(c, "El estado del indicador no es válido.")
	}
	set := req.SetFields()
	if set == nil {
		return apperr.Validation(c, "No se proporcionaron datos válidos para actualizar.")
	}

	indicador, err := h.store.Update(c.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Indicador no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al actualizar el indicador.", err)
	}
	return c.JSON(indicador)
}

func (h *IndicadorCalidadHandler) DeleteIndicador(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID inválido.")
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Indicador no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el indicador.", err)
	}
	return c.JSON(fiber.Map{"message": "Indicador eliminado correctamente."})
}
