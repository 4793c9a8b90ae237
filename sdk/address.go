package sdk

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM      AddressType = "evm"
	AddressTypeKey      AddressType = "key"
	AddressTypeHive     AddressType = "hive"
	AddressTypeSystem   AddressType = "system"
	AddressTypeContract AddressType = "contract"
	AddressTypeUnknown  AddressType = "unknown"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// IsZero reports an empty address, used for "no referrer" and unbound minters.
func (a Address) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
// Example payload: sdk.Address("contract:posts").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the DID prefix to categorize the address (evm, key, hive,...).
// Example payload: sdk.Address("did:pkh:eip155:1:0xabc").Type()
func (a Address) Type() AddressType {
	s := a.String()
	switch {
	case strings.HasPrefix(s, "did:pkh:eip155:"):
		return AddressTypeEVM
	case strings.HasPrefix(s, "did:key:"):
		return AddressTypeKey
	case strings.HasPrefix(s, "hive:"):
		return AddressTypeHive
	case strings.HasPrefix(s, "system:"):
		return AddressTypeSystem
	case strings.HasPrefix(s, "contract:"):
		return AddressTypeContract
	default:
		return AddressTypeUnknown
	}
}

// IsValid is a light sanity check: known prefix, non-empty account part and,
// for EVM DIDs, a well formed 20 byte hex account.
// Example payload: sdk.Address("hive:foo").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	switch a.Type() {
	case AddressTypeUnknown:
		return false
	case AddressTypeEVM:
		// did:pkh:eip155:<chainId>:<0xaccount>
		parts := strings.Split(s, ":")
		if len(parts) != 5 || parts[3] == "" {
			return false
		}
		return common.IsHexAddress(parts[4])
	default:
		idx := strings.Index(s, ":")
		return idx > 0 && idx < len(s)-1 && !strings.ContainsAny(s, "| \t\n")
	}
}

// ContractAddress turns a bare contract id into the address form the host uses
// for contract callers.
// Example payload: sdk.ContractAddress("vsc1posts")
func ContractAddress(contractID string) Address {
	if strings.HasPrefix(contractID, "contract:") {
		return Address(contractID)
	}
	return Address("contract:" + contractID)
}
