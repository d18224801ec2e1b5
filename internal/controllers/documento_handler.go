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

type DocumentoStore interface {
	List(ctx context.Context) ([]models.Documento, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.Documento, error)
	FindByCodigo(ctx context.Context, codigo string) (*models.Documento, error)
	Insert(ctx context.Context, d *models.Documento) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Documento, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type DocumentoHandler struct {
	store DocumentoStore
}

func NewDocumentoHandler(store DocumentoStore) *DocumentoHandler {
	return &DocumentoHandler{store: store}
}

func (h *DocumentoHandler) ListDocumentos(c *fiber.Ctx) error {
	documentos, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener los documentos.", err)
	}
	return c.JSON(documentos)
}

func (h *DocumentoHandler) GetDocumento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de documento inválido.")
	}

	documento, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Documento no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener el documento.", err)
	}
	return c.JSON(documento)
}

// existeCodigo runs the uniqueness pre-check; excludeID lets an update keep
// its own codigo.
func (h *DocumentoHandler) existeCodigo(ctx context.Context, codigo string, excludeID *bson.ObjectID) (bool, error) {
	existing, err := h.store.FindByCodigo(ctx, codigo)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return excludeID == nil || existing.ID != *excludeID, nil
}

// CreateDocumento godoc
// @Summary      Create a documento
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        documento body dto.DocumentoCreate true "Documento"
// @Success      201 {object} models.Documento
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /api/documentos [post]
func (h *DocumentoHandler) CreateDocumento(c *fiber.Ctx) error {
	var req dto.DocumentoCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if missing := dto.Validate(req); missing != nil {
		return apperr.Validation(c, camposObligatorios(missing))
	}

	taken, err := h.existeCodigo(c.Context(), req.Codigo, nil)
	if err != nil {
		return apperr.Internal(c, "Error al crear el documento.", err)
	}
	if taken {
		return apperr.Conflict(c, fmt.Sprintf("Ya existe un documento con el código '%s'.", req.Codigo))
	}

	documento := models.Documento{
		Nombre:          req.Nombre,
		Codigo:          req.Codigo,
		Version:         req.Version,
		Estado:          req.Estado,
		TipoDocumento:   req.TipoDocumento,
		ProcesoAsociado: req.ProcesoAsociado,
		ArchivoURL:      req.ArchivoURL,
	}
	if documento.Estado == "" {
		documento.Estado = "Borrador"
	}
	if req.FechaAprobacion != "" {
		if t, err := dto.ParseFecha(req.FechaAprobacion); err == nil {
			documento.FechaAprobacion = &t
		}
	}

	err = h.store.Insert(c.Context(), &documento)
	if errors.Is(err, repository.ErrDuplicate) {
		// The unique index caught a concurrent insert that slipped past the
		// pre-check.
		return apperr.Conflict(c, fmt.Sprintf("Ya existe un documento con el código '%s'.", req.Codigo))
	}
	if err != nil {
		return apperr.Internal(c, "Error al crear el documento.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(documento)
}

func (h *DocumentoHandler) UpdateDocumento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de documento inválido.")
	}

	var req dto.DocumentoUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	set, err := req.SetFields()
	if err != nil {
		return apperr.Validation(c, "La fecha de aprobación no es válida.")
	}
	if set == nil {
		set = bson.M{"updatedAt": time.Now()}
	}

	if req.Codigo != nil {
		taken, err := h.existeCodigo(c.Context(), *req.Codigo, &id)
		if err != nil {
			return apperr.Internal(c, "Error al actualizar el documento.", err)
		}
		if taken {
			return apperr.Conflict(c, fmt.Sprintf("Ya existe otro documento con el código '%s'.", *req.Codigo))
		}
	}

	documento, err := h.store.Update(c.Context(), id, set)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(c, "Documento no encontrado.")
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(c, "Ya existe otro documento con ese código.")
	case err != nil:
		return apperr.Internal(c, "Error al actualizar el documento.", err)
	}
	return c.JSON(documento)
}

func (h *DocumentoHandler) DeleteDocumento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "ID de documento inválido.")
	}

	err = h.store.Delete(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Documento no encontrado.")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el documento.", err)
	}
	return c.JSON(fiber.Map{"message": "Documento eliminado correctamente.", "documentId": c.Params("id")})
}
