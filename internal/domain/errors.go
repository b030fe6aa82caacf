package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork = errors.New("falha de comunicação com o backend de votos")
	ErrAuth    = errors.New("sessão inválida ou expirada")
	ErrTimeout = errors.New("tempo limite excedido")
	ErrRender  = errors.New("falha ao gerar o documento")

	// ErrStaleResponse marca respostas de buscas que já foram superadas por outra mais recente
	ErrStaleResponse = errors.New("resposta obsoleta descartada")

	ErrInvalidVote     = errors.New("voto inválido")
	ErrInvalidRange    = errors.New("intervalo de datas inválido")
	ErrCompanyNotFound = errors.New("empresa não encontrada")
	ErrMonitorNotFound = errors.New("monitor não encontrado")
)

// FetchError carrega o contexto de uma falha ao consultar o backend
type FetchError struct {
	Err        error  // ErrNetwork, ErrAuth ou ErrTimeout
	Op         string // operação do cliente
	CompanyID  string
	StatusCode int
	Details    string
}

func (e *FetchError) Error() string {
	msg := e.Err.Error()
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(err error, op string, status int, details string) *FetchError {
	return &FetchError{Err: err, Op: op, StatusCode: status, Details: details}
}
