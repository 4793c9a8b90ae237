package simhost

import (
	"strconv"

	"github.com/shopspring/decimal"

	"alwaysliquid_posts/sdk"
)

var _ sdk.Backend = (*Host)(nil)

func (h *Host) Log(msg string) {
	h.logs = append(h.logs, msg)
}

func (h *Host) Abort(msg string) {
	panic(&Fault{Msg: msg, Symbol: "abort"})
}

func (h *Host) Revert(msg, symbol string) {
	panic(&Fault{Msg: msg, Symbol: symbol})
}

func (h *Host) StateSet(key, value string) {
	f := h.top()
	h.state[f.contract][key] = value
}

func (h *Host) StateGet(key string) *string {
	f := h.top()
	if v, ok := h.state[f.contract][key]; ok {
		return &v
	}
	return nil
}

func (h *Host) StateDelete(key string) {
	f := h.top()
	delete(h.state[f.contract], key)
}

func (h *Host) Env() sdk.Env {
	env := h.top().env
	env.Intents = append([]sdk.Intent(nil), env.Intents...)
	return env
}

func (h *Host) EnvKey(key string) *string {
	env := h.top().env
	var v string
	switch key {
	case "contract.id":
		v = env.ContractId
	case "tx.id":
		v = env.TxId
	case "block.id":
		v = env.BlockId
	case "block.height":
		v = strconv.FormatUint(env.BlockHeight, 10)
	case "block.timestamp":
		v = env.Timestamp
	case "msg.sender":
		v = env.Sender.Address.String()
	case "msg.caller":
		v = env.Caller.Address.String()
	default:
		return nil
	}
	return &v
}

func (h *Host) Balance(addr sdk.Address, asset sdk.Asset) int64 {
	return h.balances[addr][asset]
}

// Draw moves amount from the frame's caller to the running contract, bounded
// by the caller's transfer.allow intent for that asset.
func (h *Host) Draw(amount int64, asset sdk.Asset) {
	f := h.top()
	if amount <= 0 {
		panic(&Fault{Msg: "draw amount must be positive", Symbol: "sdk_error"})
	}
	limit, ok := allowance(f.env.Intents, asset)
	if !ok {
		panic(&Fault{Msg: "no transfer.allow intent for " + asset.String(), Symbol: "sdk_error"})
	}
	if f.drawn[asset]+amount > limit {
		panic(&Fault{Msg: "draw exceeds transfer.allow limit", Symbol: "sdk_error"})
	}
	from := f.env.Caller.Address
	if h.balances[from][asset] < amount {
		panic(&Fault{Msg: "insufficient balance of " + from.String(), Symbol: "sdk_error"})
	}
	f.drawn[asset] += amount
	h.credit(from, asset, -amount)
	h.credit(sdk.ContractAddress(f.contract), asset, amount)
}

// Transfer sends amount from the running contract to to.
func (h *Host) Transfer(to sdk.Address, amount int64, asset sdk.Asset) {
	f := h.top()
	if amount <= 0 {
		panic(&Fault{Msg: "transfer amount must be positive", Symbol: "sdk_error"})
	}
	if !to.IsValid() {
		panic(&Fault{Msg: "invalid transfer recipient " + to.String(), Symbol: "sdk_error"})
	}
	if h.rejecting[to] {
		panic(&Fault{Msg: "recipient rejected transfer: " + to.String(), Symbol: "sdk_error"})
	}
	from := sdk.ContractAddress(f.contract)
	if h.balances[from][asset] < amount {
		panic(&Fault{Msg: "contract balance too low", Symbol: "sdk_error"})
	}
	h.credit(from, asset, -amount)
	h.credit(to, asset, amount)
}

func (h *Host) ContractRead(contractID, key string) *string {
	if v, ok := h.state[contractID][key]; ok {
		return &v
	}
	return nil
}

// ContractCall runs a nested call. The callee sees the running contract as
// its caller and only the intents handed over in options.
func (h *Host) ContractCall(contractID, method, payload string, options *sdk.ContractCallOptions) *string {
	outer := h.top().env
	env := sdk.Env{
		ContractId:  contractID,
		TxId:        outer.TxId,
		Index:       outer.Index,
		OpIndex:     outer.OpIndex,
		BlockId:     outer.BlockId,
		BlockHeight: outer.BlockHeight,
		Timestamp:   outer.Timestamp,
		Sender:      outer.Sender,
		Caller:      sdk.Caller{Address: sdk.ContractAddress(outer.ContractId)},
		Payer:       outer.Payer,
	}
	if options != nil {
		env.Intents = options.Intents
	}
	return h.invoke(env, method, payload)
}

func allowance(intents []sdk.Intent, asset sdk.Asset) (int64, bool) {
	for _, intent := range intents {
		if intent.Type != "transfer.allow" || sdk.Asset(intent.Args["token"]) != asset {
			continue
		}
		d, err := decimal.NewFromString(intent.Args["limit"])
		if err != nil {
			return 0, false
		}
		return d.Shift(3).IntPart(), true
	}
	return 0, false
}

// TransferAllow builds the intent list for attaching limit (decimal text) of asset to a call.
// Example payload: TransferAllow("1.000", sdk.AssetHive)
func TransferAllow(limit string, asset sdk.Asset) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": asset.String()},
	}}
}
