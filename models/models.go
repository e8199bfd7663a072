package models

// Estado represents a state in the normalized catalog hierarchy.
type Estado struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Cidade represents a city; (Nome, EstadoID) is unique, so the same city
// name may repeat across states but not within one.
type Cidade struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	EstadoID int64  `json:"estado_id"`
}

// Restaurante is the catalog form of a restaurant, joined with the names of
// its state and city for API responses.
type Restaurante struct {
	ID                int64  `json:"id"`
	Nome              string `json:"nome"`
	CardapioPrincipal string `json:"cardapio_principal"`
	EstadoID          int64  `json:"estado_id"`
	EstadoNome        string `json:"estado_nome"`
	CidadeID          int64  `json:"cidade_id"`
	CidadeNome        string `json:"cidade_nome"`
}

// Coordenadas holds an optional geographic position. Lat/Lon are pointers
// because the document store keeps an explicit null placeholder for
// restaurants that have not been geocoded yet.
type Coordenadas struct {
	Lat *float64 `json:"lat" bson:"lat"`
	Lon *float64 `json:"lon" bson:"lon"`
}

// HorarioFuncionamento is a fixed seven-slot weekly schedule. A fixed struct
// instead of a free map keeps malformed weekday keys out of the store.
type HorarioFuncionamento struct {
	Segunda string `json:"segunda" bson:"segunda"`
	Terca   string `json:"terça" bson:"terça"`
	Quarta  string `json:"quarta" bson:"quarta"`
	Quinta  string `json:"quinta" bson:"quinta"`
	Sexta   string `json:"sexta" bson:"sexta"`
	Sabado  string `json:"sábado" bson:"sábado"`
	Domingo string `json:"domingo" bson:"domingo"`
}

// HorarioPadrao is the schedule applied when a restaurant document is
// inserted without one.
func HorarioPadrao() HorarioFuncionamento {
	return HorarioFuncionamento{
		Segunda: "08:00-18:00",
		Terca:   "08:00-18:00",
		Quarta:  "08:00-18:00",
		Quinta:  "08:00-18:00",
		Sexta:   "08:00-18:00",
		Sabado:  "08:00-14:00",
		Domingo: "Fechado",
	}
}

// RestauranteDoc is the denormalized document form of a restaurant. It has
// no foreign keys and no uniqueness constraint; state and city are plain
// labels.
type RestauranteDoc struct {
	Nome              string               `json:"nome" bson:"nome"`
	Estado            string               `json:"estado" bson:"estado"`
	Cidade            string               `json:"cidade" bson:"cidade"`
	CardapioPrincipal string               `json:"cardapio_principal" bson:"cardapio_principal"`
	Avaliacoes        []string             `json:"avaliacoes" bson:"avaliacoes"`
	Fotos             []string             `json:"fotos" bson:"fotos"`
	Horario           HorarioFuncionamento `json:"horario_funcionamento" bson:"horario_funcionamento"`
	Coordenadas       *Coordenadas         `json:"coordenadas" bson:"coordenadas"`
}

// TemCoordenadas reports whether the document carries a usable position.
// A coordinate object with a null latitude counts as no coordinate.
func (d RestauranteDoc) TemCoordenadas() bool {
	return d.Coordenadas != nil && d.Coordenadas.Lat != nil && d.Coordenadas.Lon != nil
}

// RestauranteProximo is a proximity-search result: the document form plus
// the distance from the query point. Never persisted.
type RestauranteProximo struct {
	RestauranteDoc
	DistanciaKm float64 `json:"distancia_km"`
}
