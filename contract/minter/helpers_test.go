package minter_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alwaysliquid_posts/contract/minter"
	"alwaysliquid_posts/contract/posts"
	"alwaysliquid_posts/sdk"
	"alwaysliquid_posts/simhost"
)

const (
	LedgerID = "posts"
	MinterID = "minter"
	StatsID  = "stats"

	ownerAddress    = sdk.Address("hive:tibfox")
	daoAddress      = sdk.Address("hive:dao")
	devAddress      = sdk.Address("hive:dev")
	authorAddress   = sdk.Address("hive:author")
	buyerAddress    = sdk.Address("hive:buyer")
	referrerAddress = sdk.Address("hive:referrer")

	defaultTimestamp = simhost.DefaultTimestamp
	startingBalance  = int64(200_000)
	postID           = "testjkdnw6t6dq37gg7"
)

// SetupMintTest deploys ledger and minter the way production does: ledger
// first, minter with the ledger id, then the ledger hands minting to it.
// Fees are 20% dao, 10% dev, 10% referrer and the global price is 1.000.
func SetupMintTest(t *testing.T) *simhost.Host {
	h := simhost.New()
	h.Register(LedgerID, posts.Actions())
	h.Register(MinterID, minter.Actions())
	h.Register(StatsID, statsActions())
	CallLedger(t, h, "contract_init", "1.000|contract:metadata|AlwaysLiquid|ALPOST", ownerAddress, true)
	CallContract(t, h, "contract_init", "hive:dao|hive:dev|posts|2000|1000|1000", nil, ownerAddress, true)
	CallLedger(t, h, "owner_change_minter_address", sdk.ContractAddress(MinterID).String(), ownerAddress, true)
	h.Deposit(buyerAddress, startingBalance, sdk.AssetHive)
	h.Deposit(buyerAddress, startingBalance, sdk.AssetHbd)
	return h
}

// statsActions is a stand-in stats contract: it counts spend per receiver
// and refuses receivers listed under the "block" key.
func statsActions() map[string]simhost.Handler {
	return map[string]simhost.Handler{
		minter.StatsAction: func(p *string) *string {
			receiver, amount, _ := strings.Cut(*p, "|")
			if blocked := sdk.StateGetObject("block"); blocked != nil && *blocked == receiver {
				sdk.Revert("stats refused "+receiver, "stats")
			}
			sdk.StateSetObject("spent:"+receiver, amount)
			return nil
		},
		"block": func(p *string) *string {
			sdk.StateSetObject("block", *p)
			return nil
		},
	}
}

// CallContract executes a minter action and asserts the expected outcome.
func CallContract(t *testing.T, h *simhost.Host, action string, payload string, intents []sdk.Intent, caller sdk.Address, expectedResult bool) simhost.TxResult {
	t.Helper()
	return CallContractAt(t, h, action, payload, intents, caller, expectedResult, defaultTimestamp)
}

// CallContractAt lets tests override the block time for deadline checks.
func CallContractAt(t *testing.T, h *simhost.Host, action string, payload string, intents []sdk.Intent, caller sdk.Address, expectedResult bool, timestamp string) simhost.TxResult {
	t.Helper()
	return call(t, h, MinterID, action, payload, intents, caller, expectedResult, timestamp)
}

// CallLedger executes a ledger action directly.
func CallLedger(t *testing.T, h *simhost.Host, action string, payload string, caller sdk.Address, expectedResult bool) simhost.TxResult {
	t.Helper()
	return call(t, h, LedgerID, action, payload, nil, caller, expectedResult, defaultTimestamp)
}

func call(t *testing.T, h *simhost.Host, contract, action, payload string, intents []sdk.Intent, caller sdk.Address, expectedResult bool, timestamp string) simhost.TxResult {
	t.Helper()
	res := h.Call(simhost.Tx{
		Caller:    caller,
		Contract:  contract,
		Action:    action,
		Payload:   payload,
		Intents:   intents,
		Timestamp: timestamp,
	})
	for _, line := range res.Logs {
		t.Logf("[%s] %s", res.TxID, line)
	}
	if expectedResult {
		assert.True(t, res.Success, fmt.Sprintf("%s.%s failed with %s: %s", contract, action, res.Symbol, res.Err))
	} else {
		assert.False(t, res.Success, fmt.Sprintf("%s.%s did not fail (as expected)", contract, action))
	}
	return res
}

// callTx builds a raw transaction for contracts other than the default minter.
func callTx(contract, action, payload string, intents []sdk.Intent, caller sdk.Address) simhost.Tx {
	return simhost.Tx{
		Caller:   caller,
		Contract: contract,
		Action:   action,
		Payload:  payload,
		Intents:  intents,
	}
}

// transferIntent attaches limit HIVE to a call.
func transferIntent(limit string) []sdk.Intent {
	return simhost.TransferAllow(limit, sdk.AssetHive)
}

func transferIntentWithToken(limit string, token sdk.Asset) []sdk.Intent {
	return simhost.TransferAllow(limit, token)
}

// mintRequest builds the minter mint body for postID by the default author.
func mintRequest(t *testing.T, id string, qty uint64, referrer sdk.Address) string {
	t.Helper()
	b, err := tinyjson.Marshal(minter.MintRequest{
		PostID:      id,
		Author:      authorAddress.String(),
		Receiver:    buyerAddress.String(),
		Referrer:    referrer.String(),
		TextPreview: "This is a test post",
		Image:       "ipfs://image",
		Quantity:    qty,
	})
	require.NoError(t, err)
	return string(b)
}

// balances snapshots every party's HIVE balance.
type balances map[sdk.Address]int64

func snapshot(h *simhost.Host) balances {
	out := balances{}
	for _, a := range []sdk.Address{daoAddress, devAddress, authorAddress, buyerAddress, referrerAddress, sdk.ContractAddress(MinterID)} {
		out[a] = h.BalanceOf(a, sdk.AssetHive)
	}
	return out
}

func (b balances) delta(after balances) balances {
	out := balances{}
	for a, v := range after {
		out[a] = v - b[a]
	}
	return out
}

func ledgerBalance(t *testing.T, h *simhost.Host, holder sdk.Address, tokenID uint64) string {
	t.Helper()
	return CallLedger(t, h, "balance_of", fmt.Sprintf("%s|%d", holder, tokenID), buyerAddress, true).Ret
}
