package loja

import (
	"errors"
	"net/http"

	"pedidomestre/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewLojasHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateLojaHandler godoc
// @Summary Criar Loja
// @Description Cadastra uma loja e resolve as coordenadas do endereço quando possível.
// @Tags Lojas
// @Accept json
// @Produce json
// @Param request body CreateLojaRequest true "Dados da Loja"
// @Success 201 {object} LojaResponse "Loja Criada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /lojas [post]
// @Security ApiKeyAuth
func (h *Handler) CreateLojaHandler(c echo.Context) error {
	var request CreateLojaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if request.Telefone != "" && !validation.ValidatePhone(request.Telefone) {
		return c.JSON(http.StatusBadRequest, "Telefone inválido")
	}

	result, err := h.InterfaceService.CreateLoja(c.Request().Context(), request)
	if err != nil {
		if errors.Is(err, ErrCnpjInvalido) {
			return c.JSON(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// GetLojaByIDHandler godoc
// @Summary Buscar Loja por ID
// @Tags Lojas
// @Produce json
// @Param idLoja path int true "ID da Loja"
// @Success 200 {object} LojaResponse "Informações da Loja"
// @Failure 404 {string} string "Loja não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /lojas/{idLoja} [get]
// @Security ApiKeyAuth
func (h *Handler) GetLojaByIDHandler(c echo.Context) error {
	idLoja, err := validation.ParseStringToInt64(c.Param("idLoja"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idLoja' deve ser um número")
	}

	result, err := h.InterfaceService.GetLojaByID(c.Request().Context(), idLoja)
	if err != nil {
		if errors.Is(err, ErrLojaNaoEncontrada) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// GetAllLojasHandler godoc
// @Summary Listar Lojas
// @Tags Lojas
// @Produce json
// @Success 200 {object} []LojaResponse "Lojas Cadastradas"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /lojas [get]
// @Security ApiKeyAuth
func (h *Handler) GetAllLojasHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetAllLojas(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateStatusHandler godoc
// @Summary Atualizar Status da Loja
// @Description Marca a loja como aberta ou fechada. Qualquer valor fora de "aberta", "aberto" ou "open" é tratado como fechada.
// @Tags Lojas
// @Accept json
// @Produce json
// @Param idLoja path int true "ID da Loja"
// @Param request body UpdateStatusRequest true "Novo status"
// @Success 200 {object} LojaResponse "Loja Atualizada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Loja não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /lojas/{idLoja}/status [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateStatusHandler(c echo.Context) error {
	idLoja, err := validation.ParseStringToInt64(c.Param("idLoja"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idLoja' deve ser um número")
	}

	var request UpdateStatusRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.UpdateStatus(c.Request().Context(), idLoja, request.Status)
	if err != nil {
		if errors.Is(err, ErrLojaNaoEncontrada) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
