package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// UserHandler usuarios de la empresa.
type UserHandler struct {
	uc    *usecase.UserUseCase
	pages pagination.Config
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, pages pagination.Config) *UserHandler {
	return &UserHandler{uc: uc, pages: pages}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario, rol y sucursal"
// @Success      201   {object}  dto.DataResponse[dto.UserResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Create(c.UserContext(), p, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(data(out))
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        role         query  string  false  "Filtrar por rol"
// @Param        branch_path  query  string  false  "company | warehouse"
// @Param        branch_id    query  string  false  "ID de la sucursal"
// @Param        limit        query  int     false  "Tamaño de página"
// @Param        page         query  int     false  "Página (desde 1)"
// @Param        sort         query  string  false  "asc | desc"
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody()
	}
	out, err := h.uc.List(c.UserContext(), p, q, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// Get godoc
// @Summary      Obtener usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.DataResponse[dto.UserResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userId} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), p, c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  path  string                 true  "ID del usuario"
// @Param        body    body  dto.UpdateUserRequest  true  "Campos a cambiar; branch_path y branch_id van juntos"
// @Success      200  {object}  dto.DataResponse[dto.UserResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{userId} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Update(c.UserContext(), p, c.Params("userId"), in)
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// RegisterJSON godoc
// @Summary      Alta masiva de usuarios (JSON)
// @Description  Todo o nada. Las filas sin password reciben una generada que se devuelve una sola vez.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUsersRequest  true  "Usuarios"
// @Success      201  {object}  dto.RegisterUsersResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/register/json [post]
func (h *UserHandler) RegisterJSON(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.RegisterUsersRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.RegisterJSON(c.UserContext(), p, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterCSV godoc
// @Summary      Alta masiva de usuarios (CSV en el cuerpo)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUsersCSVRequest  true  "CSV con cabecera email,phone,password,branch_path,branch_id,role"
// @Success      201  {object}  dto.RegisterUsersResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/register/csv [post]
func (h *UserHandler) RegisterCSV(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.RegisterUsersCSVRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.RegisterCSV(c.UserContext(), p, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterFile godoc
// @Summary      Alta masiva de usuarios (archivo CSV o XLSX)
// @Tags         users
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo con cabecera email,phone,password,branch_path,branch_id,role"
// @Success      201  {object}  dto.RegisterUsersResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/register/file/csv [post]
func (h *UserHandler) RegisterFile(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	out, err := h.uc.RegisterFile(c.UserContext(), p, file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
