package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type GetResponseStatus interface {
	GetStatus() (ChargeStatus, RefusalReason, string)
}

type RandomStatus struct{}

func (r RandomStatus) GetStatus() (ChargeStatus, RefusalReason, string) {
	randomInt := rand.Intn(101) // 101 because Intn is exclusive of the upper bound
	return calcStatus(randomInt)
}

func calcStatus(randomInt int) (ChargeStatus, RefusalReason, string) {
	if randomInt < 95 {
		return ChargeStatusSuccess, RefusalUnknown, ""
	}
	otherReason := randomInt - 95
	if otherReason == 0 || otherReason > 4 {
		return ChargeStatusFailed, RefusalUnknown, "unknown reason"
	}

	return ChargeStatusFailed, RefusalReason(otherReason), ""
}

// SimulatedGateway stands in for a real card processor. It approves most
// charges and refuses the rest according to the injected status source.
type SimulatedGateway struct {
	status GetResponseStatus
}

func NewSimulatedGateway(s GetResponseStatus) *SimulatedGateway {
	return &SimulatedGateway{status: s}
}

func (g *SimulatedGateway) Charge(_ context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount: %.2f", req.Amount)
	}
	if req.Token == "" {
		return nil, fmt.Errorf("missing payment token for order %s", req.OrderNumber)
	}

	charge, refusalKnown, refusalOther := g.status.GetStatus()
	txnID := fmt.Sprintf("TXN-%d-%s", time.Now().Unix(), uuid.NewString())

	return &ChargeResult{
		Status:        charge,
		TransactionID: txnID,
		OrderNumber:   req.OrderNumber,
		Refusal:       refusalKnown,
		RefusalDetail: refusalOther,
	}, nil
}

// Refund is always success for this implementation.
func (g *SimulatedGateway) Refund(context.Context, string) error {
	return nil
}
