package votetrackdomain

import (
	"bytes"
	"strconv"
)

// FlexibleID aceita ids enviados como número ou como string
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	*id = FlexibleID(data)
	return nil
}

func (id FlexibleID) String() string {
	return string(id)
}

// Vote é o voto como enviado pela API do VoteTrack
type Vote struct {
	ID            FlexibleID `json:"id"`
	CompanyID     FlexibleID `json:"companyId"`
	ServiceTypeID FlexibleID `json:"serviceTypeId"`
	Rating        string     `json:"rating"`
	Comment       *string    `json:"comment"`
	CreatedAt     string     `json:"createdAt"`
	ServiceType   *struct {
		Name string `json:"name"`
	} `json:"serviceType,omitempty"`
}
