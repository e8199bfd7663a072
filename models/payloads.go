package models

import (
	"fmt"
	"unicode/utf8"
)

// EstadoCreate is the request body for creating a state.
type EstadoCreate struct {
	Nome string `json:"nome"`
}

func (p EstadoCreate) Validate() error {
	return validarTexto("nome", p.Nome, 80)
}

// CidadeCreate is the request body for creating a city under an existing state.
type CidadeCreate struct {
	Nome     string `json:"nome"`
	EstadoID int64  `json:"estado_id"`
}

func (p CidadeCreate) Validate() error {
	return validarTexto("nome", p.Nome, 80)
}

// RestauranteCreateIDs creates a restaurant when the caller already holds
// normalized state and city ids. The optional document fields are mirrored
// to the document store on success.
type RestauranteCreateIDs struct {
	Nome              string                `json:"nome"`
	EstadoID          int64                 `json:"estado_id"`
	CidadeID          int64                 `json:"cidade_id"`
	CardapioPrincipal string                `json:"cardapio_principal"`
	Avaliacoes        []string              `json:"avaliacoes,omitempty"`
	Fotos             []string              `json:"fotos,omitempty"`
	Horario           *HorarioFuncionamento `json:"horario_funcionamento,omitempty"`
	Coordenadas       *Coordenadas          `json:"coordenadas,omitempty"`
}

func (p RestauranteCreateIDs) Validate() error {
	if err := validarTexto("nome", p.Nome, 120); err != nil {
		return err
	}
	return validarTexto("cardapio_principal", p.CardapioPrincipal, 120)
}

// RestauranteCreateNames creates a restaurant from free-text state and city
// labels, resolving or creating the hierarchy on the way.
type RestauranteCreateNames struct {
	Nome              string                `json:"nome"`
	EstadoNome        string                `json:"estado_nome"`
	CidadeNome        string                `json:"cidade_nome"`
	CardapioPrincipal string                `json:"cardapio_principal"`
	Avaliacoes        []string              `json:"avaliacoes,omitempty"`
	Fotos             []string              `json:"fotos,omitempty"`
	Horario           *HorarioFuncionamento `json:"horario_funcionamento,omitempty"`
	Coordenadas       *Coordenadas          `json:"coordenadas,omitempty"`
}

func (p RestauranteCreateNames) Validate() error {
	if err := validarTexto("nome", p.Nome, 120); err != nil {
		return err
	}
	if err := validarTexto("estado_nome", p.EstadoNome, 80); err != nil {
		return err
	}
	if err := validarTexto("cidade_nome", p.CidadeNome, 80); err != nil {
		return err
	}
	return validarTexto("cardapio_principal", p.CardapioPrincipal, 120)
}

// validarTexto enforces the 1..max rune bound shared by all text fields.
// Rune count, not byte length, so accented names like "Paraíba" measure
// the way users expect.
func validarTexto(campo, valor string, max int) error {
	n := utf8.RuneCountInString(valor)
	if n == 0 {
		return &ValidationError{Msg: fmt.Sprintf("%s não pode ser vazio", campo)}
	}
	if n > max {
		return &ValidationError{Msg: fmt.Sprintf("%s excede %d caracteres", campo, max)}
	}
	return nil
}
