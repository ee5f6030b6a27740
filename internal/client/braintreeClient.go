package client

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"

	"storefront-backend/internal/config"
)

// ChargeResult is the gateway's confirmation of a successful charge.
type ChargeResult struct {
	TransactionID string
	// the amount the gateway actually charged, in minor units
	Amount int64
}

// PaymentGateway is the capability the order pipeline charges against.
type PaymentGateway interface {
	Charge(ctx context.Context, amountMinorUnits int64, currency, paymentToken string) (*ChargeResult, error)
}

type braintreeGatewayImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeGateway initializes the Braintree SDK gateway.
func NewBraintreeGateway(cfg *config.Braintree) PaymentGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeGatewayImpl{
		gateway: gateway,
	}
}

func (c *braintreeGatewayImpl) Charge(ctx context.Context, amountMinorUnits int64, currency, paymentToken string) (*ChargeResult, error) {
	req := &braintree.TransactionRequest{
		Type: "sale",
		// minor units with 2 decimal places: 5500 -> 55.00
		Amount:             braintree.NewDecimal(amountMinorUnits, 2),
		PaymentMethodNonce: paymentToken,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	tx, err := c.gateway.Transaction().Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("transaction creation failed: %w", err)
	}

	if tx.Status == braintree.TransactionStatusProcessorDeclined {
		return nil, fmt.Errorf("transaction declined by processor: %s", tx.ProcessorResponseText)
	}

	// back from the gateway's decimal representation to minor units
	confirmed := decimal.New(tx.Amount.Unscaled, -int32(tx.Amount.Scale)).
		Mul(decimal.NewFromInt(100)).
		IntPart()

	return &ChargeResult{
		TransactionID: tx.Id,
		Amount:        confirmed,
	}, nil
}
