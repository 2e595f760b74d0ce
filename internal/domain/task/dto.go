package task

import "time"

type TaskResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	Type           string    `json:"type"`
	DateFrom       time.Time `json:"date_from"`
	DateTo         time.Time `json:"date_to"`
	SequenceNumber int       `json:"sequence_number"`
	Status         string    `json:"status"`
}

func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		CompanyID:      t.CompanyID,
		Type:           string(t.Type),
		DateFrom:       t.DateFrom,
		DateTo:         t.DateTo,
		SequenceNumber: t.SequenceNumber,
		Status:         string(t.Status),
	}
}
