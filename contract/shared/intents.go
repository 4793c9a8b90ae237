package shared

import (
	"fmt"

	"alwaysliquid_posts/sdk"
)

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// TransferAllowFor returns the first transfer.allow intent in asset. other
// reports whether transfer.allow intents in other assets were attached.
func TransferAllowFor(asset sdk.Asset) (ta *TransferAllow, other bool, err error) {
	for _, intent := range CurrentEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := sdk.Asset(intent.Args["token"])
		if token != asset {
			other = true
			continue
		}
		limit, err := ParseAmount(intent.Args["limit"])
		if err != nil {
			return nil, other, fmt.Errorf("intent limit: %w", err)
		}
		return &TransferAllow{Limit: limit, Token: token}, other, nil
	}
	return nil, other, nil
}

// AttachedPayment returns what the caller attached in asset. No intent means
// nothing was attached. Intents only in other assets are not a payment for
// this call and are reported as insufficient.
func AttachedPayment(asset sdk.Asset) (Amount, error) {
	ta, other, err := TransferAllowFor(asset)
	if err != nil {
		return 0, err
	}
	if ta != nil {
		return ta.Limit, nil
	}
	if other {
		return 0, fmt.Errorf("no payment attached in %s: %w", asset, ErrInsufficientPayment)
	}
	return 0, nil
}
