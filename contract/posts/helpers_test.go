package posts_test

import (
	"fmt"
	"testing"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alwaysliquid_posts/contract/posts"
	"alwaysliquid_posts/sdk"
	"alwaysliquid_posts/simhost"
)

const (
	ContractID       = "posts"
	ownerAddress     = sdk.Address("hive:tibfox")
	minterAddress    = sdk.Address("hive:minter")
	authorAddress    = sdk.Address("hive:author")
	collectorAddress = sdk.Address("hive:collector")
	defaultTimestamp = simhost.DefaultTimestamp
)

// SetupLedgerTest deploys the ledger with a 1.000 global price and binds a
// plain account as minter so tests can drive mint directly.
func SetupLedgerTest(t *testing.T) *simhost.Host {
	h := simhost.New()
	h.Register(ContractID, posts.Actions())
	CallContract(t, h, "contract_init", "1.000|contract:metadata|AlwaysLiquid Posts|POST", ownerAddress, true)
	CallContract(t, h, "owner_change_minter_address", minterAddress.String(), ownerAddress, true)
	return h
}

// CallContract executes a ledger action and asserts the expected outcome.
func CallContract(t *testing.T, h *simhost.Host, action string, payload string, caller sdk.Address, expectedResult bool) simhost.TxResult {
	t.Helper()
	return CallContractAt(t, h, action, payload, caller, expectedResult, defaultTimestamp)
}

// CallContractAt lets tests move the block time for deadline checks.
func CallContractAt(t *testing.T, h *simhost.Host, action string, payload string, caller sdk.Address, expectedResult bool, timestamp string) simhost.TxResult {
	t.Helper()
	res := h.Call(simhost.Tx{
		Caller:    caller,
		Contract:  ContractID,
		Action:    action,
		Payload:   payload,
		Timestamp: timestamp,
	})
	for _, line := range res.Logs {
		t.Logf("[%s] %s", res.TxID, line)
	}
	if expectedResult {
		assert.True(t, res.Success, fmt.Sprintf("%s failed with %s: %s", action, res.Symbol, res.Err))
	} else {
		assert.False(t, res.Success, fmt.Sprintf("%s did not fail (as expected)", action))
	}
	return res
}

// mintPayload builds the JSON body of a ledger mint.
func mintPayload(t *testing.T, postID string, author, receiver sdk.Address, preview string, qty uint64) string {
	t.Helper()
	b, err := tinyjson.Marshal(posts.MintArgs{
		PostID:      postID,
		Author:      author.String(),
		Receiver:    receiver.String(),
		TextPreview: preview,
		Image:       "ipfs://image",
		Quantity:    qty,
	})
	require.NoError(t, err)
	return string(b)
}

func mint(t *testing.T, h *simhost.Host, postID string, qty uint64) simhost.TxResult {
	t.Helper()
	return CallContract(t, h, "mint", mintPayload(t, postID, authorAddress, collectorAddress, "This is a test post", qty), minterAddress, true)
}

func getPost(t *testing.T, h *simhost.Host, tokenID uint64) posts.PostView {
	t.Helper()
	res := CallContract(t, h, "get_post", fmt.Sprint(tokenID), collectorAddress, true)
	var view posts.PostView
	require.NoError(t, tinyjson.Unmarshal([]byte(res.Ret), &view))
	return view
}
