package telephony

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"calldesk-booking/internal/domain/call"
	"calldesk-booking/internal/infra"
	"calldesk-booking/internal/pkg/config"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// CallUpdater is the subset of the Twilio REST API used to redirect a live call.
type CallUpdater interface {
	UpdateCall(sid string, params *openapi.UpdateCallParams) (*openapi.ApiV2010Call, error)
}

type TwilioGateway struct {
	calls       CallUpdater
	transferURL string
	message     string
	timeout     time.Duration
	logger      *slog.Logger
}

// NewTwilioGateway returns a disabled gateway when no account is configured.
func NewTwilioGateway(cfg config.TelephonyConfig, logger *slog.Logger) *TwilioGateway {
	if !cfg.Enabled() {
		return NewGateway(nil, cfg, logger)
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewGateway(client.Api, cfg, logger)
}

func NewGateway(calls CallUpdater, cfg config.TelephonyConfig, logger *slog.Logger) *TwilioGateway {
	return &TwilioGateway{
		calls:       calls,
		transferURL: cfg.TransferURL,
		message:     cfg.GoodbyeMessage,
		timeout:     cfg.Timeout,
		logger:      logger,
	}
}

func (g *TwilioGateway) Enabled() bool {
	return g.calls != nil
}

// Transfer redirects the call to the transfer URL, which answers with the goodbye message.
// The SDK call is not cancelable, so ctx and the configured timeout only bound the wait.
func (g *TwilioGateway) Transfer(ctx context.Context, t call.Transfer) error {
	if !g.Enabled() {
		return infra.WrapRepoErr(g.logger, infra.KindGatewayFailure, "telephony is not configured", nil)
	}

	target := g.redirectURL()
	params := &openapi.UpdateCallParams{}
	params.SetUrl(target)
	params.SetMethod("POST")

	g.logger.InfoContext(ctx, "transferring call",
		slog.String("call_id", t.CallID()),
		slog.String("reason", t.Reason().String()),
		slog.String("url", target))

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		_, err := g.calls.UpdateCall(t.CallID(), params)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return infra.WrapRepoErr(g.logger, infra.KindGatewayFailure, fmt.Sprintf("failed to update call %s", t.CallID()), err)
		}
		return nil
	case <-ctx.Done():
		return infra.WrapRepoErr(g.logger, infra.KindGatewayTimeout, fmt.Sprintf("update of call %s did not complete", t.CallID()), ctx.Err())
	}
}

func (g *TwilioGateway) redirectURL() string {
	return fmt.Sprintf("%s?say=%s", g.transferURL, url.QueryEscape(g.message))
}
