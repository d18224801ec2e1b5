package controllers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"isoflow-backend/dto"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

// refsPersonal carries the resolved references out of validation so the
// handler does not re-parse them.
type refsPersonal struct {
	departamentoID bson.ObjectID
	puestoID       bson.ObjectID
	fechaIngreso   time.Time
	ahora          time.Time
}

// validarPersonal runs every check and accumulates all field failures into
// one map, instead of stopping at the first one. The checks are, in order:
// required fields, departamento existence, puesto existence, puesto belonging
// to the supplied departamento, and dni/legajo uniqueness (excluding the
// record being updated). The returned error is reserved for storage
// failures; validation outcomes live in the map.
func (h *PersonalHandler) validarPersonal(ctx context.Context, req dto.PersonalSave, excludeID *bson.ObjectID) (refsPersonal, map[string]string, error) {
	refs := refsPersonal{ahora: time.Now()}
	fieldErrs := map[string]string{}

	if req.Nombre == "" {
		fieldErrs["nombre"] = "El nombre es requerido"
	}
	if req.Apellido == "" {
		fieldErrs["apellido"] = "El apellido es requerido"
	}
	if req.DNI == "" {
		fieldErrs["dni"] = "El DNI es requerido"
	}
	if req.DepartamentoID == "" {
		fieldErrs["departamentoId"] = "El departamento es requerido"
	}
	if req.PuestoID == "" {
		fieldErrs["puestoId"] = "El puesto es requerido"
	}
	if req.Legajo == "" {
		fieldErrs["legajo"] = "El legajo es requerido"
	}
	if len(fieldErrs) > 0 {
		return refs, fieldErrs, nil
	}

	departamentoID, err := utils.Oid(req.DepartamentoID)
	if err != nil {
		fieldErrs["departamentoId"] = "ID de departamento inválido"
	} else {
		refs.departamentoID = departamentoID
		if _, err := h.departamentos.Get(ctx, departamentoID); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return refs, nil, err
			}
			fieldErrs["departamentoId"] = "El departamento especificado no existe"
		}
	}

	puestoID, err := utils.Oid(req.PuestoID)
	if err != nil {
		fieldErrs["puestoId"] = "ID de puesto inválido"
	} else {
		refs.puestoID = puestoID
		puesto, err := h.puestos.Get(ctx, puestoID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			fieldErrs["puestoId"] = "El puesto especificado no existe"
		case err != nil:
			return refs, nil, err
		case !refs.departamentoID.IsZero() && puesto.DepartamentoID != refs.departamentoID:
			// Both ids resolve, but to inconsistent documents. Reported on
			// the puesto field, never silently corrected.
			fieldErrs["puestoId"] = "El puesto no pertenece al departamento indicado"
		}
	}

	if taken, err := h.store.ExistsDNI(ctx, req.DNI, excludeID); err != nil {
		return refs, nil, err
	} else if taken {
		fieldErrs["dni"] = "Este DNI ya está registrado para otro empleado"
	}

	if taken, err := h.store.ExistsLegajo(ctx, req.Legajo, excludeID); err != nil {
		return refs, nil, err
	} else if taken {
		fieldErrs["legajo"] = "Este número de legajo ya está en uso"
	}

	if req.FechaIngreso != "" {
		if t, err := dto.ParseFecha(req.FechaIngreso); err == nil {
			refs.fechaIngreso = t
		} else {
			fieldErrs["fechaIngreso"] = "La fecha de ingreso no es válida"
		}
	}

	return refs, fieldErrs, nil
}
