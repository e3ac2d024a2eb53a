package request

type TransferCallRequest struct {
	Reason string `json:"reason" form:"reason" binding:"required"`
}
