package endereco

import (
	"errors"
	"net/http"

	"pedidomestre/pkg/cep"
	"pedidomestre/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewEnderecosHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateEnderecoHandler godoc
// @Summary Criar Endereço
// @Description Cadastra o endereço do cliente, completando bairro e logradouro pela consulta de CEP e resolvendo coordenadas quando possível.
// @Tags Endereços
// @Accept json
// @Produce json
// @Param request body CreateEnderecoRequest true "Dados do Endereço"
// @Success 201 {object} EnderecoResponse "Endereço Criado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /enderecos [post]
// @Security ApiKeyAuth
func (h *Handler) CreateEnderecoHandler(c echo.Context) error {
	var request CreateEnderecoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateEndereco(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// GetEnderecoByIDHandler godoc
// @Summary Buscar Endereço por ID
// @Tags Endereços
// @Produce json
// @Param idEndereco path int true "ID do Endereço"
// @Success 200 {object} EnderecoResponse "Informações do Endereço"
// @Failure 404 {string} string "Endereço não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /enderecos/{idEndereco} [get]
// @Security ApiKeyAuth
func (h *Handler) GetEnderecoByIDHandler(c echo.Context) error {
	idEndereco, err := validation.ParseStringToInt64(c.Param("idEndereco"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idEndereco' deve ser um número")
	}

	result, err := h.InterfaceService.GetEnderecoByID(c.Request().Context(), idEndereco)
	if err != nil {
		if errors.Is(err, ErrEnderecoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// BuscarPorCepHandler godoc
// @Summary Buscar Endereço por CEP
// @Description Consulta o provedor postal e devolve logradouro, bairro, cidade e UF do CEP.
// @Tags Endereços
// @Produce json
// @Param cep path string true "CEP"
// @Success 200 {object} cep.Endereco "Endereço do CEP"
// @Failure 404 {string} string "CEP não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /enderecos/cep/{cep} [get]
// @Security ApiKeyAuth
func (h *Handler) BuscarPorCepHandler(c echo.Context) error {
	valor := c.Param("cep")
	if valor == "" {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'cep' é obrigatório")
	}

	result, err := h.InterfaceService.BuscarPorCep(c.Request().Context(), valor)
	if err != nil {
		if errors.Is(err, cep.ErrCepNaoEncontrado) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
