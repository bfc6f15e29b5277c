package service

import (
	"context"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
)

// PaymentProvider confirms payment for a checkout. The storefront has no
// real gateway integration yet, so confirmation is modeled as a collaborator
// interface rather than a string comparison buried in the order workflow.
type PaymentProvider interface {
	Confirm(ctx context.Context, method string, amount float64) (domain.PaymentStatus, error)
}

// DirectChargeProvider treats card payments as charged immediately and
// everything else (cash on delivery, bank transfer) as pending settlement.
type DirectChargeProvider struct{}

func (DirectChargeProvider) Confirm(_ context.Context, method string, _ float64) (domain.PaymentStatus, error) {
	if method == "card" {
		return domain.PaymentPaid, nil
	}
	return domain.PaymentPending, nil
}
