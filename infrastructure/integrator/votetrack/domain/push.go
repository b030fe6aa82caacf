package votetrackdomain

import jsoniter "github.com/json-iterator/go"

const (
	EventJoinCompany  = "joinCompany"
	EventLeaveCompany = "leaveCompany"
	EventNewVote      = "newVote"
	EventVoteUpdate   = "voteUpdate"

	// AllCompaniesRoom é a sala do backend que recebe votos de todas as empresas
	AllCompaniesRoom = "all"
)

// PushFrame é o envelope trocado pelo canal WebSocket
type PushFrame struct {
	Event     string              `json:"event"`
	CompanyID FlexibleID          `json:"companyId,omitempty"`
	Data      jsoniter.RawMessage `json:"data,omitempty"`
}
