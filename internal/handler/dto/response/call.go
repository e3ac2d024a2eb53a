package response

import "calldesk-booking/internal/usecase/commands"

type TransferResponse struct {
	Transferred bool `json:"transferred"`
}

func FromTransferResult(r *commands.TransferResult) *TransferResponse {
	return &TransferResponse{Transferred: r.Transferred}
}
