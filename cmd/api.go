package cmd

import (
	"context"
	"time"

	"pedidomestre/infra"
	_middleware "pedidomestre/infra/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := _middleware.CheckAuthorization(*container.PasetoMaker)

	e.POST("/lojas", container.HandlerLoja.CreateLojaHandler, auth)
	e.GET("/lojas", container.HandlerLoja.GetAllLojasHandler)
	e.GET("/lojas/:idLoja", container.HandlerLoja.GetLojaByIDHandler)
	e.PUT("/lojas/:idLoja/status", container.HandlerLoja.UpdateStatusHandler, auth)

	e.POST("/bairros/loja/:idLoja/criar-automatico", container.HandlerBairro.CriarBairrosAutomaticamenteHandler, auth)
	e.GET("/bairros/cidade/:cidade/:uf", container.HandlerBairro.BuscarBairrosPorCidadeHandler)
	e.PUT("/bairros/:idBairro/taxa", container.HandlerBairro.AtualizarTaxaHandler, auth)

	e.POST("/enderecos", container.HandlerEndereco.CreateEnderecoHandler)
	e.GET("/enderecos/:idEndereco", container.HandlerEndereco.GetEnderecoByIDHandler)
	e.GET("/enderecos/cep/:cep", container.HandlerEndereco.BuscarPorCepHandler)

	e.GET("/taxa-entrega/endereco/:idEndereco", container.HandlerTaxaEntrega.CalcularTaxaEntregaHandler)
	e.GET("/taxa-entrega/endereco/:idEndereco/lojas", container.HandlerTaxaEntrega.ObterLojasDisponiveisHandler)

	e.GET("/cnpj/:cnpj", container.HandlerCnpj.ConsultarCnpjHandler)

	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}
