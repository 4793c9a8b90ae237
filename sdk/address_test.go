package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressTypes(t *testing.T) {
	assert.Equal(t, AddressTypeHive, Address("hive:alice").Type())
	assert.Equal(t, AddressTypeEVM, Address("did:pkh:eip155:1:0x52908400098527886E0F7030069857D2E4169EE7").Type())
	assert.Equal(t, AddressTypeKey, Address("did:key:z6Mk").Type())
	assert.Equal(t, AddressTypeContract, Address("contract:vsc1posts").Type())
	assert.Equal(t, AddressTypeUnknown, Address("alice").Type())
	assert.Equal(t, AddressDomainContract, Address("contract:vsc1posts").Domain())
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
}

func TestAddressIsValid(t *testing.T) {
	cases := map[string]bool{
		"hive:alice":             true,
		"contract:vsc1minter":    true,
		"hive:":                  false,
		"alice":                  false,
		"":                       false,
		"hive:ali|ce":            false,
		"did:pkh:eip155:1:0x52908400098527886E0F7030069857D2E4169EE7": true,
		"did:pkh:eip155:1:0x1234":                                     false,
		"did:pkh:eip155::0x52908400098527886E0F7030069857D2E4169EE7":  false,
	}
	for addr, want := range cases {
		assert.Equal(t, want, Address(addr).IsValid(), addr)
	}
}

func TestContractAddress(t *testing.T) {
	assert.Equal(t, Address("contract:vsc1posts"), ContractAddress("vsc1posts"))
	assert.Equal(t, Address("contract:vsc1posts"), ContractAddress("contract:vsc1posts"))
	assert.True(t, Address("").IsZero())
	assert.False(t, Address("hive:bob").IsZero())
}

func TestParseEnv(t *testing.T) {
	env := ParseEnv(`{
		"contract.id": "vsc1posts",
		"tx.id": "tx-1",
		"block.timestamp": "2025-09-03T00:00:00",
		"msg.sender": "hive:alice",
		"msg.caller": "contract:vsc1minter",
		"msg.required_auths": ["hive:alice"],
		"msg.required_posting_auths": [],
		"intents": [{"type": "transfer.allow", "args": {"limit": "1.000", "token": "hive"}}]
	}`)
	assert.Equal(t, "vsc1posts", env.ContractId)
	assert.Equal(t, "tx-1", env.TxId)
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, []Address{"hive:alice"}, env.Sender.RequiredAuths)
	assert.Equal(t, Address("contract:vsc1minter"), env.Caller.Address)
	assert.Len(t, env.Intents, 1)
	assert.Equal(t, "1.000", env.Intents[0].Args["limit"])

	direct := ParseEnv(`{"msg.sender": "hive:bob"}`)
	assert.Equal(t, Address("hive:bob"), direct.Caller.Address)
}
