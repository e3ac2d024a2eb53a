package commands

import (
	"context"
	"errors"
	"log/slog"

	"calldesk-booking/internal/domain/call"
	"calldesk-booking/internal/pkg/errs"
	"calldesk-booking/internal/pkg/metrics"
	"calldesk-booking/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

type CallCommands interface {
	TransferCall(ctx context.Context, callID, reason string) (*TransferResult, error)
}

type callUseCaseImpl struct {
	telephony shared.Telephony
	inflight  singleflight.Group
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewCallUseCase(telephony shared.Telephony, m *metrics.Metrics, logger *slog.Logger) CallCommands {
	return &callUseCaseImpl{
		telephony: telephony,
		metrics:   m,
		logger:    logger,
	}
}

// TransferCall hands the call over to a human agent. Gateway failures are
// reported through Transferred, not as an error.
func (c *callUseCaseImpl) TransferCall(ctx context.Context, callID, reason string) (*TransferResult, error) {
	transfer, err := call.NewTransfer(callID, reason)
	if err != nil {
		switch {
		case errors.Is(err, call.ErrEmptyCallID):
			return nil, errs.Mark(err, errs.ErrCallIDRequired)
		case errors.Is(err, call.ErrInvalidReason):
			return nil, errs.Mark(err, errs.ErrInvalidTransferReason)
		default:
			return nil, err
		}
	}

	result := &TransferResult{
		CallID: transfer.CallID(),
		Reason: transfer.Reason().String(),
	}

	if !c.telephony.Enabled() {
		c.logger.WarnContext(ctx, "call transfer skipped, telephony is not configured",
			slog.String("call_id", transfer.CallID()))
		c.metrics.CountTransfer(result.Reason, "disabled")
		return result, nil
	}

	// Concurrent requests for the same call share one gateway round trip.
	_, err, deduped := c.inflight.Do(transfer.CallID(), func() (any, error) {
		return nil, c.telephony.Transfer(context.WithoutCancel(ctx), transfer)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "call transfer failed",
			slog.String("call_id", transfer.CallID()),
			slog.String("reason", result.Reason),
			slog.String("error", err.Error()))
		c.metrics.CountTransfer(result.Reason, "failed")
		return result, nil
	}

	c.logger.InfoContext(ctx, "call transferred",
		slog.String("call_id", transfer.CallID()),
		slog.String("reason", result.Reason),
		slog.Bool("deduped", deduped))
	c.metrics.CountTransfer(result.Reason, "transferred")
	result.Transferred = true
	return result, nil
}
