package shared

import (
	"strconv"
	"time"

	"alwaysliquid_posts/sdk"
)

// cachedEnv is scoped to the currently executing frame. Whenever tx.id or the
// immediate caller changes we refresh sdk.GetEnv() so nested contract calls in
// the same transaction never see the outer frame's snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedFrame     string
)

// CurrentEnv caches the env per frame so we dont poke the host api every few
// lines and every helper sees the same snapshot.
func CurrentEnv() *sdk.Env {
	frame := envKey("tx.id") + "|" + envKey("msg.caller") + "|" + envKey("contract.id")
	if !cachedEnvLoaded || cachedFrame != frame {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedFrame = frame
	}
	return &cachedEnv
}

func envKey(key string) string {
	if ptr := sdk.GetEnvKey(key); ptr != nil {
		return *ptr
	}
	return ""
}

// CallerAddress is the immediate invoker. Every authorization check in this
// repo compares against it, so a contract relaying an owner's call is still
// just the contract.
func CallerAddress() sdk.Address {
	env := CurrentEnv()
	if env.Caller.Address != "" {
		return env.Caller.Address
	}
	return env.Sender.Address
}

// SenderAddress returns the address that signed the transaction.
func SenderAddress() sdk.Address {
	return CurrentEnv().Sender.Address
}

// ContractID returns the id of the running contract.
func ContractID() string {
	return CurrentEnv().ContractId
}

// NowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func NowUnix() int64 {
	if ts := CurrentEnv().Timestamp; ts != "" {
		if v, ok := ParseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := ParseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// ParseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func ParseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.000", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
