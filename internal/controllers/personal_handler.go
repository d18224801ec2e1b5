package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/dto"
	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

type PersonalStore interface {
	List(ctx context.Context) ([]models.PersonalEnriquecido, error)
	ListByDepartamento(ctx context.Context, departamentoID bson.ObjectID) ([]models.PersonalEnriquecido, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.PersonalEnriquecido, error)
	Insert(ctx context.Context, p *models.Personal) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) error
	Delete(ctx context.Context, id bson.ObjectID) error
	FindByEmail(ctx context.Context, email string) (*models.Personal, error)
	ExistsDNI(ctx context.Context, dni string, excludeID *bson.ObjectID) (bool, error)
	ExistsLegajo(ctx context.Context, legajo string, excludeID *bson.ObjectID) (bool, error)
}

type PersonalHandler struct {
	store         PersonalStore
	departamentos DepartamentoStore
	puestos       PuestoStore
}

func NewPersonalHandler(store PersonalStore, departamentos DepartamentoStore, puestos PuestoStore) *PersonalHandler {
	return &PersonalHandler{store: store, departamentos: departamentos, puestos: puestos}
}

// ListPersonal godoc
// @Summary      List personal enriched with departamento and puesto
// @Tags         personal
// @Produce      json
// @Success      200 {array} models.PersonalEnriquecido
// @Router       /api/personal [get]
func (h *PersonalHandler) ListPersonal(c *fiber.Ctx) error {
	personal, err := h.store.List(c.Context())
	if err != nil {
		return apperr.Internal(c, "Error al obtener la lista de personal.", err)
	}
	return c.JSON(personal)
}

func (h *PersonalHandler) GetPersonal(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "El ID '"+c.Params("id")+"' no es válido")
	}

	empleado, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Empleado no encontrado")
	}
	if err != nil {
		return apperr.Internal(c, "Error al obtener los detalles del empleado", err)
	}
	return c.JSON(empleado)
}

func (h *PersonalHandler) ListPersonalByDepartamento(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "El ID '"+c.Params("id")+"' no es válido")
	}

	personal, err := h.store.ListByDepartamento(c.Context(), id)
	if err != nil {
		return apperr.Internal(c, "Error al obtener el personal del departamento", err)
	}
	return c.JSON(personal)
}

// CreatePersonal godoc
// @Summary      Create an empleado
// @Description  Runs the full cross-collection validation before inserting.
// @Tags         personal
// @Accept       json
// @Produce      json
// @Param        empleado body dto.PersonalSave true "Empleado"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Router       /api/personal [post]
func (h *PersonalHandler) CreatePersonal(c *fiber.Ctx) error {
	var req dto.PersonalSave
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}

	refs, fieldErrs, err := h.validarPersonal(c.Context(), req, nil)
	if err != nil {
		return apperr.Internal(c, "Error al validar los datos del personal", err)
	}
	if len(fieldErrs) > 0 {
		return apperr.ValidationMap(c, fieldErrs)
	}

	empleado := models.Personal{
		Nombre:         req.Nombre,
		Apellido:       req.Apellido,
		DNI:            req.DNI,
		Legajo:         req.Legajo,
		FechaIngreso:   refs.fechaIngreso,
		DepartamentoID: refs.departamentoID,
		PuestoID:       refs.puestoID,
	}
	if err := h.store.Insert(c.Context(), &empleado); err != nil {
		return apperr.Internal(c, "Error al crear el empleado", err)
	}

	creado, err := h.store.Get(c.Context(), empleado.ID)
	if err != nil {
		return apperr.Internal(c, "Error al crear el empleado", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Empleado creado con éxito",
		"empleado": creado,
	})
}

func (h *PersonalHandler) UpdatePersonal(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "El ID '"+c.Params("id")+"' no es válido")
	}

	var req dto.PersonalSave
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}

	refs, fieldErrs, err := h.validarPersonal(c.Context(), req, &id)
	if err != nil {
		return apperr.Internal(c, "Error al validar los datos del personal", err)
	}
	if len(fieldErrs) > 0 {
		return apperr.ValidationMap(c, fieldErrs)
	}

	set := bson.M{
		"nombre":         req.Nombre,
		"apellido":       req.Apellido,
		"dni":            req.DNI,
		"legajo":         req.Legajo,
		"departamentoId": refs.departamentoID,
		"puestoId":       refs.puestoID,
		"updatedAt":      refs.ahora,
	}
	if !refs.fechaIngreso.IsZero() {
		set["fechaIngreso"] = refs.fechaIngreso
	}

	err = h.store.Update(c.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Empleado no encontrado")
	}
	if err != nil {
		return apperr.Internal(c, "Error al actualizar el empleado", err)
	}

	actualizado, err := h.store.Get(c.Context(), id)
	if err != nil {
		return apperr.Internal(c, "Error al actualizar el empleado", err)
	}
	return c.JSON(fiber.Map{
		"message":  "Empleado actualizado con éxito",
		"empleado": actualizado,
	})
}

func (h *PersonalHandler) DeletePersonal(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.InvalidID(c, "El ID '"+c.Params("id")+"' no es válido")
	}

	empleado, err := h.store.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(c, "Empleado no encontrado")
	}
	if err != nil {
		return apperr.Internal(c, "Error al eliminar el empleado", err)
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return apperr.Internal(c, "Error al eliminar el empleado", err)
	}
	return c.JSON(fiber.Map{
		"message":  "Empleado eliminado con éxito",
		"empleado": empleado,
	})
}
