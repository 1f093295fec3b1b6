package geocoding

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ufPorEstado = map[string]string{
	"acre": "AC", "alagoas": "AL", "amapa": "AP", "amazonas": "AM",
	"bahia": "BA", "ceara": "CE", "distrito federal": "DF",
	"espirito santo": "ES", "goias": "GO", "maranhao": "MA",
	"mato grosso": "MT", "mato grosso do sul": "MS", "minas gerais": "MG",
	"para": "PA", "paraiba": "PB", "parana": "PR", "pernambuco": "PE",
	"piaui": "PI", "rio de janeiro": "RJ", "rio grande do norte": "RN",
	"rio grande do sul": "RS", "rondonia": "RO", "roraima": "RR",
	"santa catarina": "SC", "sao paulo": "SP", "sergipe": "SE",
	"tocantins": "TO",
}

// ExtrairUf converte o nome de um estado na sigla de duas letras.
// Siglas passam direto; nomes desconhecidos caem na heuristica das
// iniciais das duas primeiras palavras.
func ExtrairUf(estado string) string {
	estado = strings.TrimSpace(estado)
	if estado == "" {
		return ""
	}

	if len([]rune(estado)) == 2 {
		return strings.ToUpper(estado)
	}

	if uf, ok := ufPorEstado[strings.ToLower(removerAcentos(estado))]; ok {
		return uf
	}

	palavras := strings.Fields(estado)
	if len(palavras) >= 2 {
		return strings.ToUpper(string([]rune(palavras[0])[0]) + string([]rune(palavras[1])[0]))
	}

	return ""
}

func removerAcentos(s string) string {
	normalizado := norm.NFD.String(s)
	var resultado strings.Builder
	for _, r := range normalizado {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		resultado.WriteRune(r)
	}
	return resultado.String()
}
