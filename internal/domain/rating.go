package domain

import (
	"fmt"
	"strings"
)

// RatingCategory é a escala fechada de satisfação usada pelos totens de votação
type RatingCategory int

const (
	RatingRuim RatingCategory = iota + 1
	RatingRegular
	RatingBom
	RatingOtimo
)

// AllRatings lista as categorias na ordem de exibição (da melhor para a pior)
var AllRatings = []RatingCategory{RatingOtimo, RatingBom, RatingRegular, RatingRuim}

var ratingLabels = map[RatingCategory]string{
	RatingOtimo:   "Ótimo",
	RatingBom:     "Bom",
	RatingRegular: "Regular",
	RatingRuim:    "Ruim",
}

var ratingColors = map[RatingCategory]string{
	RatingOtimo:   "#22c55e",
	RatingBom:     "#3b82f6",
	RatingRegular: "#f59e0b",
	RatingRuim:    "#ef4444",
}

var ratingAliases = map[string]RatingCategory{
	"otimo":   RatingOtimo,
	"ótimo":   RatingOtimo,
	"bom":     RatingBom,
	"regular": RatingRegular,
	"ruim":    RatingRuim,
	"4":       RatingOtimo,
	"3":       RatingBom,
	"2":       RatingRegular,
	"1":       RatingRuim,
}

// ParseRating converte o valor enviado pelo backend para a categoria correspondente
func ParseRating(value string) (RatingCategory, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if rating, ok := ratingAliases[key]; ok {
		return rating, nil
	}
	return 0, fmt.Errorf("%w: avaliação desconhecida %q", ErrInvalidVote, value)
}

func (r RatingCategory) Valid() bool {
	return r >= RatingRuim && r <= RatingOtimo
}

func (r RatingCategory) Label() string {
	if label, ok := ratingLabels[r]; ok {
		return label
	}
	return "Desconhecido"
}

// Weight é o peso usado no cálculo da média (Ótimo=4 ... Ruim=1)
func (r RatingCategory) Weight() int {
	if !r.Valid() {
		return 0
	}
	return int(r)
}

func (r RatingCategory) Color() string {
	return ratingColors[r]
}

// Negative indica as avaliações que entram na tabela de respostas negativas
func (r RatingCategory) Negative() bool {
	return r == RatingRegular || r == RatingRuim
}

func (r RatingCategory) String() string {
	return r.Label()
}

func (r RatingCategory) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: categoria %d", ErrInvalidVote, int(r))
	}
	return []byte(r.Label()), nil
}

func (r *RatingCategory) UnmarshalText(text []byte) error {
	rating, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = rating
	return nil
}

// VisibleRatings aplica o filtro de empresas com totem de 3 botões, que não possuem "Ruim"
func VisibleRatings(company *Company) []RatingCategory {
	if company != nil && company.HidesRuim() {
		return []RatingCategory{RatingOtimo, RatingBom, RatingRegular}
	}
	return AllRatings
}
