package shared

import (
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// AmountScale is the precision multiplier of asset amounts (milli units).
const AmountScale = 1000

// BpsDenominator is the basis point base of every fee rate.
const BpsDenominator = 10000

// Amount is an asset amount in milli units, 1.000 HIVE == Amount(1000).
type Amount int64

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ParseAmount reads a human decimal like "1.5" or "0.001" into milli units.
// More than three decimals or negative values are rejected so nothing gets rounded silently.
// Example payload: ParseAmount("1.250")
func ParseAmount(val string) (Amount, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, fmt.Errorf("empty amount: %w", ErrInvalidArgument)
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", val, ErrInvalidArgument)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %q: %w", val, ErrInvalidArgument)
	}
	scaled := d.Shift(3)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than 3 decimals: %w", val, ErrInvalidArgument)
	}
	if scaled.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("amount %q too large: %w", val, ErrInvalidArgument)
	}
	return Amount(scaled.IntPart()), nil
}

// String renders the amount with three fixed decimals for events and views.
// Example payload: Amount(1500).String() == "1.500"
func (a Amount) String() string {
	return decimal.New(int64(a), -3).StringFixed(3)
}

// Int64 exposes the raw scaled value for host transfer functions.
func (a Amount) Int64() int64 {
	return int64(a)
}

// MulQuantity returns price*quantity, ok=false when the product does not fit an Amount.
func MulQuantity(price Amount, quantity uint64) (Amount, bool) {
	if price < 0 {
		return 0, false
	}
	product, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(uint64(price)), uint256.NewInt(quantity))
	if overflow || !product.IsUint64() || product.Uint64() > math.MaxInt64 {
		return 0, false
	}
	return Amount(product.Uint64()), true
}

// ShareOf returns floor(total * bps / 10000). The intermediate product is
// computed in 256 bits so large totals never wrap.
func ShareOf(total Amount, bps uint64) Amount {
	if total <= 0 || bps == 0 {
		return 0
	}
	share, overflow := new(uint256.Int).MulDivOverflow(
		uint256.NewInt(uint64(total)),
		uint256.NewInt(bps),
		uint256.NewInt(BpsDenominator),
	)
	if overflow || !share.IsUint64() {
		// bps <= 10000 keeps the share <= total, this only triggers on bad configs
		return total
	}
	return Amount(share.Uint64())
}
