package cnpj

import (
	"errors"
	"net/http"

	cnpjapi "pedidomestre/pkg/cnpj"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewCnpjHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ConsultarCnpjHandler godoc
// @Summary Consultar CNPJ
// @Description Valida o CNPJ e consulta os provedores de registro em ordem, devolvendo razão social, situação cadastral e endereço.
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ (com ou sem pontuação)"
// @Success 200 {object} CnpjResponse "Dados do CNPJ"
// @Failure 400 {string} string "CNPJ inválido"
// @Failure 404 {string} string "CNPJ não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /cnpj/{cnpj} [get]
// @Security ApiKeyAuth
func (h *Handler) ConsultarCnpjHandler(c echo.Context) error {
	valor := c.Param("cnpj")
	if valor == "" {
		return c.JSON(http.StatusBadRequest, "O parâmetro 'cnpj' é obrigatório")
	}

	result, err := h.InterfaceService.ConsultarCnpj(c.Request().Context(), valor)
	if err != nil {
		switch {
		case errors.Is(err, ErrCnpjInvalido):
			return c.JSON(http.StatusBadRequest, err.Error())
		case errors.Is(err, cnpjapi.ErrCnpjNaoEncontrado):
			return c.JSON(http.StatusNotFound, err.Error())
		default:
			return c.JSON(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, result)
}
