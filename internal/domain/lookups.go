package domain

import (
	"sort"
	"time"
)

// Lookups é um retrato imutável das empresas e serviços conhecidos.
// Nunca é alterado depois de criado, apenas substituído por inteiro.
type Lookups struct {
	Companies   map[string]Company     `json:"companies"`
	Services    map[string]ServiceInfo `json:"services"`
	RefreshedAt time.Time              `json:"refreshed_at"`
}

func NewLookups(companies []Company, services []ServiceInfo, refreshedAt time.Time) *Lookups {
	l := &Lookups{
		Companies:   make(map[string]Company, len(companies)),
		Services:    make(map[string]ServiceInfo, len(services)),
		RefreshedAt: refreshedAt,
	}
	for _, c := range companies {
		l.Companies[c.ID] = c
	}
	for _, s := range services {
		l.Services[s.ID] = s
	}
	return l
}

func (l *Lookups) Company(id string) (Company, bool) {
	if l == nil {
		return Company{}, false
	}
	c, ok := l.Companies[id]
	return c, ok
}

// CompanyName retorna o nome da empresa ou o próprio id quando desconhecida
func (l *Lookups) CompanyName(id string) string {
	if c, ok := l.Company(id); ok && c.Name != "" {
		return c.Name
	}
	return id
}

func (l *Lookups) Service(id string) (ServiceInfo, bool) {
	if l == nil {
		return ServiceInfo{}, false
	}
	s, ok := l.Services[id]
	return s, ok
}

// CompanyIDs retorna os ids em ordem estável
func (l *Lookups) CompanyIDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, 0, len(l.Companies))
	for id := range l.Companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return CompareVoteIDs(ids[i], ids[j]) < 0 })
	return ids
}

func (l *Lookups) Empty() bool {
	return l == nil || (len(l.Companies) == 0 && len(l.Services) == 0)
}
