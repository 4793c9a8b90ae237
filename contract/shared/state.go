package shared

import (
	"strconv"

	"alwaysliquid_posts/sdk"
)

// StateReader reads a raw state key. Contracts pass sdk.StateGetObject for
// their own state or a closure over sdk.ContractStateGet for another contract.
type StateReader func(key string) *string

// OwnState reads the running contract's state.
func OwnState(key string) *string {
	return sdk.StateGetObject(key)
}

// ContractState returns a reader over another contract's state (view-only).
func ContractState(contractID string) StateReader {
	return func(key string) *string {
		return sdk.ContractStateGet(contractID, key)
	}
}

// StateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func StateSetIfChanged(key, value string) {
	if existing := sdk.StateGetObject(key); existing != nil && *existing == value {
		return
	}
	sdk.StateSetObject(key, value)
}

// GetCount reads the string counter under the key and defaults to zero.
func GetCount(read StateReader, key string) uint64 {
	ptr := read(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// SetCount stores uint64 counters back as decimal strings for the host kv.
func SetCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// PackU64 appends x to dst in little-endian order so keys stay compact.
func PackU64(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// PackString appends a length prefixed string so composite keys can not collide.
func PackString(s string, dst []byte) []byte {
	dst = PackU64(uint64(len(s)), dst)
	return append(dst, s...)
}
