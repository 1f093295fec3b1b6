package bairro

import (
	"errors"
	"net/http"

	"pedidomestre/pkg/ibge"
	"pedidomestre/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewBairrosHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CriarBairrosAutomaticamenteHandler godoc
// @Summary Criar Bairros Automaticamente
// @Description Enumera os bairros da cidade da loja, calcula a taxa de entrega pela distância e cadastra todos de uma vez. Bairros já atendidos pela loja são ignorados.
// @Tags Bairros
// @Accept json
// @Produce json
// @Param idLoja path int true "ID da Loja"
// @Param request body CriarAutomaticoRequest true "Cidade e parâmetros opcionais"
// @Success 201 {object} []BairroResponse "Bairros Criados"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Loja não encontrada"
// @Failure 422 {string} string "Coordenadas ou município não resolvidos"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /bairros/loja/{idLoja}/criar-automatico [post]
// @Security ApiKeyAuth
func (h *Handler) CriarBairrosAutomaticamenteHandler(c echo.Context) error {
	idLoja, err := validation.ParseStringToInt64(c.Param("idLoja"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idLoja' deve ser um número")
	}

	var request CriarAutomaticoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CriarBairrosAutomaticamente(c.Request().Context(), idLoja, request)
	if err != nil {
		switch {
		case errors.Is(err, ErrLojaNaoEncontrada):
			return c.JSON(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrCoordenadasLoja), errors.Is(err, ibge.ErrMunicipioNaoEncontrado):
			return c.JSON(http.StatusUnprocessableEntity, err.Error())
		default:
			return c.JSON(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, result)
}

// BuscarBairrosPorCidadeHandler godoc
// @Summary Buscar Bairros por Cidade
// @Description Lista os bairros de um município segundo o IBGE, com coordenadas quando a geocodificação resolve o nome.
// @Tags Bairros
// @Accept json
// @Produce json
// @Param cidade path string true "Nome da Cidade"
// @Param uf path string true "UF"
// @Success 200 {object} []BairroCandidato "Bairros do Município"
// @Failure 404 {string} string "Município não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /bairros/cidade/{cidade}/{uf} [get]
// @Security ApiKeyAuth
func (h *Handler) BuscarBairrosPorCidadeHandler(c echo.Context) error {
	cidade := c.Param("cidade")
	uf := c.Param("uf")
	if cidade == "" || uf == "" {
		return c.JSON(http.StatusBadRequest, "Os parâmetros 'cidade' e 'uf' são obrigatórios")
	}

	result, err := h.InterfaceService.BuscarBairrosPorCidade(c.Request().Context(), cidade, uf)
	if err != nil {
		if errors.Is(err, ibge.ErrMunicipioNaoEncontrado) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// AtualizarTaxaHandler godoc
// @Summary Atualizar Taxa do Bairro
// @Description Sobrescreve a taxa de entrega calculada automaticamente para um bairro.
// @Tags Bairros
// @Accept json
// @Produce json
// @Param idBairro path int true "ID do Bairro"
// @Param request body AtualizarTaxaRequest true "Nova taxa"
// @Success 200 {object} BairroResponse "Bairro Atualizado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Bairro não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /bairros/{idBairro}/taxa [put]
// @Security ApiKeyAuth
func (h *Handler) AtualizarTaxaHandler(c echo.Context) error {
	idBairro, err := validation.ParseStringToInt64(c.Param("idBairro"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idBairro' deve ser um número")
	}

	var request AtualizarTaxaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.AtualizarTaxa(c.Request().Context(), idBairro, request.NovaTaxa)
	if err != nil {
		if errors.Is(err, ErrBairroNaoEncontrado) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
