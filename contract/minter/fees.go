package minter

import (
	"fmt"

	"alwaysliquid_posts/contract/shared"
)

// FeeConfig holds the protocol fee rates in basis points. The author share
// is whatever is left and is never stored.
type FeeConfig struct {
	DaoBps      uint64
	DevBps      uint64
	ReferrerBps uint64
}

// Validate rejects rates that would leave the author with a negative share.
func (f FeeConfig) Validate() error {
	if f.DaoBps > shared.BpsDenominator || f.DevBps > shared.BpsDenominator || f.ReferrerBps > shared.BpsDenominator {
		return fmt.Errorf("fee above %d bps: %w", shared.BpsDenominator, shared.ErrInvalidArgument)
	}
	if f.DaoBps+f.DevBps+f.ReferrerBps > shared.BpsDenominator {
		return fmt.Errorf("fees sum to %d bps: %w", f.DaoBps+f.DevBps+f.ReferrerBps, shared.ErrInvalidArgument)
	}
	return nil
}

// AuthorBps is the nominal author rate, before rounding dust and a missing referrer.
func (f FeeConfig) AuthorBps() uint64 {
	return shared.BpsDenominator - f.DaoBps - f.DevBps - f.ReferrerBps
}

// Split is one mint payment divided between its recipients.
type Split struct {
	Dao      shared.Amount
	Dev      shared.Amount
	Referrer shared.Amount
	Author   shared.Amount
}

// Sum adds up all four shares.
func (s Split) Sum() shared.Amount {
	return s.Dao + s.Dev + s.Referrer + s.Author
}

// SplitPayment floors every fee share and gives the author the remainder,
// which also absorbs the referrer share when there is no referrer.
func SplitPayment(total shared.Amount, fees FeeConfig, hasReferrer bool) (Split, error) {
	if total < 0 {
		return Split{}, fmt.Errorf("negative payment %s: %w", total, shared.ErrInvalidArgument)
	}
	if err := fees.Validate(); err != nil {
		return Split{}, err
	}
	s := Split{
		Dao: shared.ShareOf(total, fees.DaoBps),
		Dev: shared.ShareOf(total, fees.DevBps),
	}
	if hasReferrer {
		s.Referrer = shared.ShareOf(total, fees.ReferrerBps)
	}
	s.Author = total - s.Dao - s.Dev - s.Referrer
	if s.Author < 0 || s.Sum() != total {
		return Split{}, fmt.Errorf("split of %s does not add up: %w", total, shared.ErrInvalidArgument)
	}
	return s, nil
}
