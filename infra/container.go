package infra

import (
	"database/sql"
	"log/slog"

	"pedidomestre/infra/database"
	"pedidomestre/infra/database/db_postgresql"
	"pedidomestre/infra/token"
	"pedidomestre/internal/bairro"
	internalcnpj "pedidomestre/internal/cnpj"
	"pedidomestre/internal/endereco"
	"pedidomestre/internal/loja"
	"pedidomestre/internal/taxa_entrega"
	"pedidomestre/pkg/cep"
	cnpjapi "pedidomestre/pkg/cnpj"
	"pedidomestre/pkg/geocoding"
	"pedidomestre/pkg/httpclient"
	"pedidomestre/pkg/ibge"
	"pedidomestre/pkg/logging"

	"github.com/go-redis/redis/v8"
)

type ContainerDI struct {
	Config Config
	ConnDB *sql.DB
	Logger *slog.Logger
	Redis  *redis.Client

	RetryPolicy      *httpclient.RetryPolicy
	GeocodingGateway *geocoding.Gateway
	CepClient        *cep.Client
	IbgeClient       *ibge.Client
	CnpjGateway      *cnpjapi.Gateway
	PasetoMaker      *token.Maker

	RepositoryBairro      *bairro.Repository
	ServiceBairro         *bairro.Service
	HandlerBairro         *bairro.Handler
	RepositoryLoja        *loja.Repository
	ServiceLoja           *loja.Service
	HandlerLoja           *loja.Handler
	RepositoryEndereco    *endereco.Repository
	ServiceEndereco       *endereco.Service
	HandlerEndereco       *endereco.Handler
	RepositoryTaxaEntrega *taxa_entrega.Repository
	ServiceTaxaEntrega    *taxa_entrega.Service
	HandlerTaxaEntrega    *taxa_entrega.Handler
	ServiceCnpj           *internalcnpj.Service
	HandlerCnpj           *internalcnpj.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.Logger = logging.Setup(config.LogLevel, config.LogFormat)
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	c.RetryPolicy = httpclient.NewRetryPolicy(c.Config.MaxRetries, c.Logger)

	nominatim := geocoding.NewNominatimClient(c.Config.NominatimUrl, c.Config.GeocodingPausa, c.RetryPolicy, c.Logger)
	providers := []geocoding.Provider{nominatim}
	if c.Config.GoogleMapsKey != "" {
		google, err := geocoding.NewGoogleClient(c.Config.GoogleMapsKey, c.Logger)
		if err != nil {
			c.Logger.Warn("geocodificação do Google desabilitada", "erro", err)
		} else {
			providers = append(providers, google)
		}
	}
	c.GeocodingGateway = geocoding.NewGateway(c.Logger, providers...)

	c.CepClient = cep.NewClient(c.Config.ViaCepUrl, c.RetryPolicy, c.Logger)
	c.IbgeClient = ibge.NewClient(c.Config.IbgeUrl, c.RetryPolicy, c.Logger)
	c.CnpjGateway = cnpjapi.NewGateway(c.Logger,
		cnpjapi.NewBrasilApiClient(c.Config.BrasilApiUrl, c.RetryPolicy, c.Logger),
		cnpjapi.NewOpenCnpjClient(c.Config.OpenCnpjUrl, c.RetryPolicy, c.Logger),
		cnpjapi.NewCnpjaClient(c.Config.CnpjaUrl, c.RetryPolicy, c.Logger),
	)

	if c.Config.RedisUrl != "" {
		opt, err := redis.ParseURL(c.Config.RedisUrl)
		if err != nil {
			c.Logger.Warn("cache Redis desabilitado", "erro", err)
		} else {
			c.Redis = redis.NewClient(opt)
		}
	}

	maker, err := token.NewPasetoMaker(c.Config.SignatureToken)
	if err != nil {
		panic("failed to build paseto maker: " + err.Error())
	}
	c.PasetoMaker = &maker
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryBairro = bairro.NewBairrosRepository(c.ConnDB)
	c.RepositoryLoja = loja.NewLojasRepository(c.ConnDB)
	c.RepositoryEndereco = endereco.NewEnderecosRepository(c.ConnDB)
	c.RepositoryTaxaEntrega = taxa_entrega.NewTaxaEntregaRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceBairro = bairro.NewBairrosService(c.RepositoryBairro, c.GeocodingGateway, c.IbgeClient,
		c.Config.TaxaBase, c.Config.TaxaPorKmPadrao, c.Config.TaxaMaxima, c.Logger)
	c.ServiceLoja = loja.NewLojasService(c.RepositoryLoja, c.GeocodingGateway, c.Logger)
	c.ServiceEndereco = endereco.NewEnderecosService(c.RepositoryEndereco, c.GeocodingGateway, c.CepClient, c.Logger)
	c.ServiceTaxaEntrega = taxa_entrega.NewTaxaEntregaService(c.RepositoryTaxaEntrega, c.Config.TaxaPorKmAdicional, c.Logger)
	c.ServiceCnpj = internalcnpj.NewCnpjService(c.CnpjGateway, c.Redis, c.Logger)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerBairro = bairro.NewBairrosHandler(c.ServiceBairro)
	c.HandlerLoja = loja.NewLojasHandler(c.ServiceLoja)
	c.HandlerEndereco = endereco.NewEnderecosHandler(c.ServiceEndereco)
	c.HandlerTaxaEntrega = taxa_entrega.NewTaxaEntregaHandler(c.ServiceTaxaEntrega)
	c.HandlerCnpj = internalcnpj.NewCnpjHandler(c.ServiceCnpj)
}
