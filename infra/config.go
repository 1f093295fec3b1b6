package infra

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"pedidomestre/validation"
)

type Config struct {
	ServerName     string
	ServerPort     string
	Environment    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBDatabase     string
	DBSSLMode      string
	DBDriver       string
	SignatureToken string
	RedisUrl       string
	GoogleMapsKey  string
	LogLevel       string
	LogFormat      string

	NominatimUrl string
	ViaCepUrl    string
	IbgeUrl      string
	BrasilApiUrl string
	OpenCnpjUrl  string
	CnpjaUrl     string

	// Parametros de negocio. Os padroes valem para todas as lojas que nao
	// declaram valores proprios.
	MaxRetries         int
	GeocodingPausa     time.Duration
	TaxaBase           float64
	TaxaPorKmPadrao    float64
	TaxaMaxima         float64
	TaxaPorKmAdicional float64
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerName:     os.Getenv("SERVER_NAME"),
		ServerPort:     getEnv("SERVER_PORT", ":8080"),
		Environment:    os.Getenv("ENVIRONMENT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBDatabase:     os.Getenv("DB_DATABASE"),
		DBSSLMode:      os.Getenv("DB_SSL_MODE"),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		SignatureToken: os.Getenv("SIGNATURE_STRING"),
		RedisUrl:       os.Getenv("REDIS_URL"),
		GoogleMapsKey:  os.Getenv("GOOGLE_MAPS_KEY"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),

		NominatimUrl: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		ViaCepUrl:    getEnv("VIACEP_URL", "https://viacep.com.br/ws"),
		IbgeUrl:      getEnv("IBGE_URL", "https://servicodados.ibge.gov.br/api/v1/localidades"),
		BrasilApiUrl: getEnv("BRASILAPI_URL", "https://brasilapi.com.br"),
		OpenCnpjUrl:  getEnv("OPENCNPJ_URL", "https://api.opencnpj.org"),
		CnpjaUrl:     getEnv("CNPJA_URL", "https://open.cnpja.com"),

		MaxRetries:         getEnvInt("MAX_RETRIES", 3),
		GeocodingPausa:     getEnvDuration("GEOCODING_PAUSA", time.Second),
		TaxaBase:           getEnvFloat("TAXA_BASE", 5.00),
		TaxaPorKmPadrao:    getEnvFloat("TAXA_POR_KM_PADRAO", 7.50),
		TaxaMaxima:         getEnvFloat("TAXA_MAXIMA", 30.00),
		TaxaPorKmAdicional: getEnvFloat("TAXA_POR_KM_ADICIONAL", 1.00),
	}
}

func getEnv(chave, padrao string) string {
	if valor := os.Getenv(chave); valor != "" {
		return valor
	}
	return padrao
}

func getEnvInt(chave string, padrao int) int {
	if valor := os.Getenv(chave); valor != "" {
		if n, err := strconv.Atoi(valor); err == nil {
			return n
		}
	}
	return padrao
}

func getEnvFloat(chave string, padrao float64) float64 {
	if valor := os.Getenv(chave); valor != "" {
		if f, err := validation.ParseStringToFloat(valor); err == nil {
			return f
		}
	}
	return padrao
}

func getEnvDuration(chave string, padrao time.Duration) time.Duration {
	if valor := os.Getenv(chave); valor != "" {
		if d, err := time.ParseDuration(valor); err == nil {
			return d
		}
	}
	return padrao
}
