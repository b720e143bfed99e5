// Package payment charges cards through a gateway abstraction. The only
// implementation here is a simulated processor; the breaker wrapper keeps
// checkout responsive when the gateway misbehaves.
package payment

import "context"

type ChargeStatus int

const (
	ChargeStatusSuccess ChargeStatus = iota
	ChargeStatusFailed
)

type RefusalReason int

const (
	RefusalUnknown RefusalReason = iota
	RefusalInsufficientFunds
	RefusalCardExpired
	RefusalSuspectedFraud
	RefusalIssuerUnavailable
)

func (r RefusalReason) String() string {
	switch r {
	case RefusalInsufficientFunds:
		return "insufficient funds"
	case RefusalCardExpired:
		return "card expired"
	case RefusalSuspectedFraud:
		return "suspected fraud"
	case RefusalIssuerUnavailable:
		return "issuer unavailable"
	default:
		return "unknown reason"
	}
}

type ChargeRequest struct {
	OrderNumber string
	Amount      float64
	// Token is issued by the client-side payment widget and passed through
	// to the processor verbatim.
	Token string
}

type ChargeResult struct {
	Status        ChargeStatus
	TransactionID string
	OrderNumber   string
	Refusal       RefusalReason
	RefusalDetail string
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, transactionID string) error
}
