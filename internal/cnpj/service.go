package cnpj

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	cnpjapi "pedidomestre/pkg/cnpj"
	"pedidomestre/validation"

	"github.com/go-redis/redis/v8"
)

var ErrCnpjInvalido = errors.New("CNPJ inválido")

const cacheTTL = 30 * time.Minute

type Registro interface {
	Consultar(ctx context.Context, cnpj string) (cnpjapi.Info, error)
}

type InterfaceService interface {
	ConsultarCnpj(ctx context.Context, valor string) (CnpjResponse, error)
}

type Service struct {
	Registro Registro
	Redis    *redis.Client
	Logger   *slog.Logger
}

func NewCnpjService(registro Registro, redisClient *redis.Client, logger *slog.Logger) *Service {
	return &Service{Registro: registro, Redis: redisClient, Logger: logger}
}

// ConsultarCnpj valida os digitos verificadores e consulta os provedores de
// registro em ordem. Respostas ficam em cache por 30 minutos para poupar os
// provedores publicos, que limitam a taxa de chamadas.
func (s *Service) ConsultarCnpj(ctx context.Context, valor string) (CnpjResponse, error) {
	cnpj := limparCnpj(valor)
	if !validation.ValidateCNPJ(cnpj) {
		return CnpjResponse{}, ErrCnpjInvalido
	}

	chave := "cnpj:" + cnpj
	if s.Redis != nil {
		armazenado, err := s.Redis.Get(ctx, chave).Result()
		if err == nil {
			var resposta CnpjResponse
			if err := json.Unmarshal([]byte(armazenado), &resposta); err == nil {
				return resposta, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.Logger.Warn("falha ao consultar cache de CNPJ", "erro", err)
		}
	}

	info, err := s.Registro.Consultar(ctx, cnpj)
	if err != nil {
		return CnpjResponse{}, err
	}

	var resposta CnpjResponse
	resposta.ParseFromInfo(info)

	if s.Redis != nil {
		serializado, err := json.Marshal(resposta)
		if err == nil {
			if err := s.Redis.Set(ctx, chave, serializado, cacheTTL).Err(); err != nil {
				s.Logger.Warn("falha ao gravar cache de CNPJ", "erro", err)
			}
		}
	}
	return resposta, nil
}

func limparCnpj(valor string) string {
	var sb strings.Builder
	for _, r := range valor {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
