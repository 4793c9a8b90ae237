package shared

import (
	"fmt"
	"strconv"
	"strings"

	"alwaysliquid_posts/sdk"
)

// UnwrapPayload trims quotes and whitespace, reverting if the payload is empty.
func UnwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		Failf(ErrInvalidArgument, "%s", errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		Failf(ErrInvalidArgument, "%s", errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				Failf(ErrInvalidArgument, "%s", errMsg)
			}
		}
	}
	return raw
}

// RawPayload returns the payload as-is (JSON bodies keep their quotes).
func RawPayload(payload *string, errMsg string) string {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		Failf(ErrInvalidArgument, "%s", errMsg)
	}
	return *payload
}

// SplitLast cuts `head|tail` at the last pipe. Post ids and texts may contain
// pipes themselves, numbers and addresses never do.
func SplitLast(raw string, errMsg string) (string, string) {
	idx := strings.LastIndex(raw, "|")
	if idx < 0 {
		Failf(ErrInvalidArgument, "%s", errMsg)
	}
	return raw[:idx], raw[idx+1:]
}

// SplitFirst cuts `head|tail` at the first pipe.
func SplitFirst(raw string, errMsg string) (string, string) {
	idx := strings.Index(raw, "|")
	if idx < 0 {
		Failf(ErrInvalidArgument, "%s", errMsg)
	}
	return raw[:idx], raw[idx+1:]
}

// ParseUintField is the uint variant used for ids, bps and durations.
func ParseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		Failf(ErrInvalidArgument, "invalid %s %q", field, val)
	}
	return n
}

// ParseAmountField wraps ParseAmount with a field name for the revert message.
func ParseAmountField(val string, field string) Amount {
	amt, err := ParseAmount(val)
	if err != nil {
		Fail(fmt.Errorf("invalid %s: %w", field, err))
	}
	return amt
}

// ParseAddressField trims and validates an address.
func ParseAddressField(val string, field string) sdk.Address {
	addr := sdk.Address(strings.TrimSpace(val))
	if !addr.IsValid() {
		Failf(ErrInvalidArgument, "invalid %s address %q", field, val)
	}
	return addr
}

// ParseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func ParseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// Strptr is a tiny helper so we can take a literal string and hand a pointer back to the host.
func Strptr(s string) *string { return &s }
