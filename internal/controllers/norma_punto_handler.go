package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/dto"
	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

type NormaPuntoStore interface {
	List(ctx context.Context) ([]models.NormaPunto, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.NormaPunto, error)
	FindByNormaClausula(ctx context.Context, norma, clausula string) (*models.NormaPunto, error)
	Insert(ctx context.Context, n *models.NormaPunto) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.NormaPunto, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type NormaPuntoHandler struct {
	store NormaPuntoStore
}

func NewNormaPuntoHandler(store NormaPuntoStore) *NormaPuntoHandler {
	return &NormaPuntoHandler{store: store}
}

func (h *NormaPuntoHandler) ListNormasPuntos(c *fiber.Ctx) error {
	puntos, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener los puntos de norma.", err)
	}
	return c.JSON(puntos)
}

func (h *NormaPuntoHandler) GetNormaPunto(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de punto de norma inválido.")
	}

	punto, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Punto de norma no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el punto de norma.", err)
	}
	return c.JSON(punto)
}

func (h *NormaPuntoHandler) parClausulaTomado(ctx context.Context, norma, clausula string, excludeID *bson.ObjectID) (bool, error) {
	existing, err := h.store.FindByNormaClausula(ctx, norma, clausula)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return excludeID == nil || existing.ID != *excludeID, nil
}

// CreateNormaPunto godoc
// @Summary      Create a punto de norma
// @Description  The (norma, clausula) pair must be unique.
// @Tags         normas-puntos
// @Accept       json
// @Produce      json
// @Param        punto body dto.NormaPuntoCreate true "Punto de norma"
// @Success      201 {object} models.NormaPunto
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /api/normas-puntos [post]
func (h *NormaPuntoHandler) CreateNormaPunto(c *fiber.Ctx) error {
	var req dto.NormaPuntoCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if missing := dto.Validate(req); missing != nil {
		return apperr.Validation(c, camposObligatorios(missing))
	}

	taken, err := h.parClausulaTomado(c.Context(), req.Norma, req.Clausula, nil)
	if err != nil {
		return apperr.Internal(c, "Error al crear el punto de norma.", err)
	}
	if taken {
		return apperr.Conflict(c, fmt.Sprintf("Ya existe un punto con norma '%s' y cláusula '%s'.", req.Norma, req.Clausula))
	}

	punto := models.NormaPunto{
		Norma:                req.Norma,
		Clausula:             req.Clausula,
		Titulo:               req.Titulo,
		DescripcionDetallada: req.DescripcionDetallada,
		Estado:               req.Estado,
	}
	if punto.Estado == "" {
		punto.Estado = "Vigente"
	}

	err = h.store.Insert(c.Context(), &punto)
	if errors.Is(err, repository.ErrDuplicate) {
		return apperr.Conflict(c, fmt.Sprintf("Ya existe un punto con norma '%s' y cláusula '%s'.", req.Norma, req.Clausula))
	}
	if err != nil {
		return apperr.Internal(c, "Error al crear el punto de norma.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(punto)
}

func (h *NormaPuntoHandler) UpdateNormaPunto(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de punto de norma inválido.")
	}

	var req dto.NormaPuntoUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	set := req.SetFields()
	if set == nil {
		set = bson.M{"updatedAt": time.Now()}
	}

	// When either half of the pair changes, the resulting pair is checked
	// against the stored document's values.
	if req.Norma != nil || req.Clausula != nil {
		actual, err := h.store.Get(c.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(c, "Punto de norma no encontrado.")
		}
		if err != nil {
			return apperr.Internal(c, "Error al actualizar el punto de norma.", err)
		}
		norma, clausula := actual.Norma, actual.Clausula
		if req.Norma != nil {
			norma = *req.Norma
		}
		if req.Clausula != nil {
			clausula = *req.Clausula
		}
		if norma != actual.Norma || clausula != actual.Clausula {
			taken, err := h.parClausulaTomado(c.Context(), norma, clausula, &id)
			if err != nil {
				return apperr.Internal(c, "Error al actualizar el punto de norma.", err)
			}
			if taken {
				return apperr.Conflict(c, fmt.Sprintf("Ya existe otro punto con norma '%s' y cláusula '%s'.", norma, clausula))
			}
		}
	}

	punto, err := h.store.Update(c.Context(), id, set)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(c, "Punto de norma no encontrado.")
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(c, "Ya existe otro punto con esa norma y cláusula.")
	case err != nil:
		return apperr.Internal(c, "Error al actualizar el punto de norma.", err)
	}
	return c.JSON(punto)
}

func (h *NormaPuntoHandler) DeleteNormaPunto(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de punto de norma inválido.")
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Punto de norma no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el punto de norma.", err)
	}
	return c.JSON(fiber.Map{"message": "Punto de norma eliminado correctamente.", "puntoId": c.Params("id")})
}
