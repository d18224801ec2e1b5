package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"isoflow-backend/dto"
	"isoflow-backend/internal/apperr"
	"isoflow-backend/internal/models"
	"isoflow-backend/internal/repository"
	"isoflow-backend/utils"
)

const tokenTTL = 72 * time.Hour

type AuthHandler struct {
	personal PersonalStore
	secret   string
}

func NewAuthHandler(personal PersonalStore, secret string) *AuthHandler {
	return &AuthHandler{personal: personal, secret: secret}
}

func perfil(p *models.Personal) models.PerfilUsuario {
	role := p.Role
	if role == "" && p.PasswordHash != "" {
		role = "user"
	}
	return models.PerfilUsuario{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Apellido: p.Apellido,
		Email:    p.Email,
		Role:     role,
		DNI:      p.DNI,
		Legajo:   p.Legajo,
	}
}

// Register godoc
// @Summary      Register personal, optionally with login credentials
// @Description  Creates an organizational record; only when both email and
// @Description  password are supplied does the record gain system access.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registro body dto.PersonalRegister true "Registro"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /api/personal/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.PersonalRegister
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if req.Nombre == "" || req.Apellido == "" {
		return apperr.Validation(c, "Nombre y apellido son requeridos para el personal.")
	}

	empleado := models.Personal{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		DNI:      req.DNI,
		Legajo:   req.Legajo,
	}

	if req.DepartamentoID != "" {
		id, err := utils.Oid(req.DepartamentoID)
		if err != nil {
			return apperr.InvalidID(c, "El departamentoId o puestoId proporcionado no es un ObjectId válido.")
		}
		empleado.DepartamentoID = id
	}
	if req.PuestoID != "" {
		id, err := utils.Oid(req.PuestoID)
		if err != nil {
			return apperr.InvalidID(c, "El departamentoId o puestoId proporcionado no es un ObjectId válido.")
		}
		empleado.PuestoID = id
	}
	if req.FechaIngreso != "" {
		if t, err := dto.ParseFecha(req.FechaIngreso); err == nil {
			empleado.FechaIngreso = t
		}
	}

	switch {
	case req.Email != "" && req.Password != "":
		_, err := h.personal.FindByEmail(c.Context(), req.Email)
		if err == nil {
			return apperr.Conflict(c, "El email ya está registrado para otro usuario.")
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return apperr.Internal(c, "Error interno del servidor durante el registro.", err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal(c, "Error interno del servidor durante el registro.", err)
		}
		empleado.PasswordHash = string(hash)
		empleado.Role = req.Role
		if empleado.Role == "" {
			empleado.Role = "user"
		}
	case req.Email != "" || req.Password != "":
		return apperr.Validation(c, "Para registrar un usuario, se requieren tanto email como contraseña.")
	}

	if err := h.personal.Insert(c.Context(), &empleado); err != nil {
		return apperr.Internal(c, "Error interno del servidor durante el registro.", err)
	}

	mensaje := "Personal registrado con éxito (sin acceso al sistema)."
	if empleado.PasswordHash != "" {
		mensaje = "Personal registrado con éxito como usuario."
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  mensaje,
		"personal": perfil(&empleado),
	})
}

// Login godoc
// @Summary      Authenticate and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credenciales body models.LoginRequest true "Credenciales"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Router       /api/personal/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(c, "Cuerpo de la petición inválido.")
	}
	if req.Email == "" || req.Password == "" {
		return apperr.Validation(c, "Email y contraseña son requeridos")
	}

	user, err := h.personal.FindByEmail(c.Context(), req.Email)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && user.PasswordHash == "") {
		// Personnel-only records have no stored hash and cannot log in.
		return apperr.Unauthorized(c, "Credenciales inválidas o usuario no habilitado para acceso.")
	}
	if err != nil {
		return apperr.Internal(c, "Error interno del servidor durante el login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return apperr.Unauthorized(c, "Credenciales inválidas")
	}

	claims := jwt.MapClaims{
		"uid": user.ID.Hex(),
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		return apperr.Internal(c, "Error interno del servidor durante el login", err)
	}

	return c.JSON(fiber.Map{
		"user":        perfil(user),
		"accessToken": signed,
	})
}
