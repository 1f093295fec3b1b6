package taxa_entrega

import (
	"errors"
	"net/http"

	"pedidomestre/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewTaxaEntregaHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CalcularTaxaEntregaHandler godoc
// @Summary Calcular Taxa de Entrega
// @Description Escolhe a loja que entrega no bairro do endereço e devolve a taxa, a distância e uma observação quando a loja preferida não é a mais próxima.
// @Tags Taxa de Entrega
// @Accept json
// @Produce json
// @Param idEndereco path int true "ID do Endereço"
// @Param lojaPreferida query int false "ID da Loja Preferida"
// @Success 200 {object} ResultadoTaxaEntrega "Taxa Calculada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Endereço não encontrado"
// @Failure 409 {string} string "Nenhuma loja pode atender"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /taxa-entrega/endereco/{idEndereco} [get]
// @Security ApiKeyAuth
func (h *Handler) CalcularTaxaEntregaHandler(c echo.Context) error {
	idEndereco, err := validation.ParseStringToInt64(c.Param("idEndereco"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idEndereco' deve ser um número")
	}

	var lojaPreferida *int64
	if valor := c.QueryParam("lojaPreferida"); valor != "" {
		id, err := validation.ParseStringToInt64(valor)
		if err != nil {
			return c.JSON(http.StatusBadRequest, "O parâmetro 'lojaPreferida' deve ser um número")
		}
		lojaPreferida = &id
	}

	result, err := h.InterfaceService.CalcularTaxaEntrega(c.Request().Context(), idEndereco, lojaPreferida)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnderecoNaoEncontrado):
			return c.JSON(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrSemCobertura),
			errors.Is(err, ErrNenhumaLojaAberta),
			errors.Is(err, ErrLojaPreferidaFechada),
			errors.Is(err, ErrForaDoRaio):
			return c.JSON(http.StatusConflict, err.Error())
		default:
			return c.JSON(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, result)
}

// ObterLojasDisponiveisHandler godoc
// @Summary Listar Lojas Disponíveis
// @Description Lista todas as lojas que atendem o bairro do endereço, com o status de cada uma, da mais próxima para a mais distante.
// @Tags Taxa de Entrega
// @Produce json
// @Param idEndereco path int true "ID do Endereço"
// @Success 200 {object} []LojaDisponivel "Lojas Disponíveis"
// @Failure 404 {string} string "Endereço não encontrado"
// @Failure 409 {string} string "Nenhuma loja atende o bairro"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /taxa-entrega/endereco/{idEndereco}/lojas [get]
// @Security ApiKeyAuth
func (h *Handler) ObterLojasDisponiveisHandler(c echo.Context) error {
	idEndereco, err := validation.ParseStringToInt64(c.Param("idEndereco"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'idEndereco' deve ser um número")
	}

	result, err := h.InterfaceService.ObterLojasDisponiveis(c.Request().Context(), idEndereco)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnderecoNaoEncontrado):
			return c.JSON(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrSemCobertura):
			return c.JSON(http.StatusConflict, err.Error())
		default:
			return c.JSON(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, result)
}
