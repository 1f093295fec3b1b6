package geodist

import (
	"database/sql"
	"math"
)

const raioTerraKm = 6371.0

// DistanciaKm calcula a distancia de circulo maximo (Haversine) em
// quilometros entre duas coordenadas em graus decimais.
func DistanciaKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := grausParaRadianos(lat2 - lat1)
	dLon := grausParaRadianos(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(grausParaRadianos(lat1))*math.Cos(grausParaRadianos(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return raioTerraKm * c
}

// DistanciaKmNull retorna 0 quando qualquer coordenada esta ausente.
// Chamadores nao devem confundir "0 km" com "sem dado".
func DistanciaKmNull(lat1, lon1, lat2, lon2 sql.NullFloat64) float64 {
	if !lat1.Valid || !lon1.Valid || !lat2.Valid || !lon2.Valid {
		return 0
	}
	return DistanciaKm(lat1.Float64, lon1.Float64, lat2.Float64, lon2.Float64)
}

func grausParaRadianos(graus float64) float64 {
	return graus * (math.Pi / 180.0)
}
