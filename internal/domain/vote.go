package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Vote é um voto individual registrado no totem
type Vote struct {
	ID              string         `json:"id"`
	CompanyID       string         `json:"company_id"`
	ServiceTypeID   string         `json:"service_type_id"`
	ServiceTypeName string         `json:"service_type_name,omitempty"`
	Rating          RatingCategory `json:"rating"`
	Comment         *string        `json:"comment,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}

// Validate rejeita registros sem os campos mínimos para agregação
func (v Vote) Validate() error {
	switch {
	case strings.TrimSpace(v.ID) == "":
		return fmt.Errorf("%w: id vazio", ErrInvalidVote)
	case v.Timestamp.IsZero():
		return fmt.Errorf("%w: voto %s sem data", ErrInvalidVote, v.ID)
	case !v.Rating.Valid():
		return fmt.Errorf("%w: voto %s com avaliação %d", ErrInvalidVote, v.ID, int(v.Rating))
	}
	return nil
}

func (v Vote) HasComment() bool {
	return v.Comment != nil && strings.TrimSpace(*v.Comment) != ""
}

// RecentLess ordena do mais recente para o mais antigo; empates pelo id crescente
func RecentLess(a, b Vote) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return CompareVoteIDs(a.ID, b.ID) < 0
}

// SortRecent ordena os votos in-place usando RecentLess
func SortRecent(votes []Vote) {
	sort.SliceStable(votes, func(i, j int) bool {
		return RecentLess(votes[i], votes[j])
	})
}

// CompareVoteIDs compara ids numéricos pelo valor e os demais lexicograficamente
func CompareVoteIDs(a, b string) int {
	if isDigits(a) && isDigits(b) {
		a = strings.TrimLeft(a, "0")
		b = strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
