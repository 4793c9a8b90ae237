// Package simhost is an in-memory VSC host. It runs contract packages
// in-process through the sdk backend hook: per-contract key/value state,
// asset balances, transfer.allow intents, nested contract calls, log capture
// and full rollback of a transaction on abort or revert.
package simhost

import (
	"fmt"
	"sync"

	"alwaysliquid_posts/sdk"
)

// DefaultTimestamp is used for calls that do not carry their own block time.
const DefaultTimestamp = "2025-09-03T00:00:00"

const maxCallDepth = 16

// hostMu serializes every transaction across all hosts: the sdk backend is
// process wide and the chain totally orders calls anyway. txCounter keeps
// tx ids unique across hosts since contracts cache their env per tx id.
var (
	hostMu    sync.Mutex
	txCounter uint64
)

// Handler is the shape of every exported contract action.
type Handler = func(payload *string) *string

// Tx is a single contract call submitted to the host.
type Tx struct {
	Caller    sdk.Address
	Contract  string
	Action    string
	Payload   string
	Intents   []sdk.Intent
	Timestamp string
}

// TxResult reports the outcome of a transaction. Logs of failed transactions
// are discarded together with their state changes.
type TxResult struct {
	TxID    string
	Success bool
	Ret     string
	Err     string
	Symbol  string
	Logs    []string
}

// Fault is the panic value raised by aborts and reverts inside a call.
type Fault struct {
	Msg    string
	Symbol string
}

func (f *Fault) Error() string {
	return f.Symbol + ": " + f.Msg
}

type frame struct {
	contract string
	env      sdk.Env
	drawn    map[sdk.Asset]int64
}

// Host holds the simulated chain state.
type Host struct {
	contracts map[string]map[string]Handler
	state     map[string]map[string]string
	balances  map[sdk.Address]map[sdk.Asset]int64
	rejecting map[sdk.Address]bool
	frames    []*frame
	logs      []string
	txSeq     uint64

	// OnLog, when set, sees every log line of committed transactions.
	OnLog func(txID string, line string)
}

// New returns an empty host.
func New() *Host {
	return &Host{
		contracts: map[string]map[string]Handler{},
		state:     map[string]map[string]string{},
		balances:  map[sdk.Address]map[sdk.Asset]int64{},
		rejecting: map[sdk.Address]bool{},
	}
}

// Register deploys a contract under id with its exported actions.
func (h *Host) Register(id string, actions map[string]Handler) {
	hostMu.Lock()
	defer hostMu.Unlock()
	h.contracts[id] = actions
	if _, ok := h.state[id]; !ok {
		h.state[id] = map[string]string{}
	}
}

// Deposit credits addr with amount milli units of asset.
func (h *Host) Deposit(addr sdk.Address, amount int64, asset sdk.Asset) {
	hostMu.Lock()
	defer hostMu.Unlock()
	h.credit(addr, asset, amount)
}

// BalanceOf returns the asset balance of addr in milli units.
func (h *Host) BalanceOf(addr sdk.Address, asset sdk.Asset) int64 {
	hostMu.Lock()
	defer hostMu.Unlock()
	return h.balances[addr][asset]
}

// RejectTransfersTo makes every transfer to addr fail, like a recipient that refuses funds.
func (h *Host) RejectTransfersTo(addr sdk.Address) {
	hostMu.Lock()
	defer hostMu.Unlock()
	h.rejecting[addr] = true
}

// StateValue reads a raw key of a contract outside of any transaction.
func (h *Host) StateValue(contract, key string) *string {
	hostMu.Lock()
	defer hostMu.Unlock()
	if v, ok := h.state[contract][key]; ok {
		return &v
	}
	return nil
}

// Call executes tx atomically. Any abort, revert or unexpected panic inside
// the call tree restores state and balances to what they were before.
func (h *Host) Call(tx Tx) (res TxResult) {
	hostMu.Lock()
	defer hostMu.Unlock()

	sdk.UseBackend(h)
	h.txSeq++
	txCounter++
	txID := fmt.Sprintf("tx-%d", txCounter)
	ts := tx.Timestamp
	if ts == "" {
		ts = DefaultTimestamp
	}
	snap := h.snapshot()
	h.logs = nil
	h.frames = nil

	defer func() {
		if r := recover(); r != nil {
			h.restore(snap)
			h.frames = nil
			h.logs = nil
			res = TxResult{TxID: txID, Success: false}
			switch v := r.(type) {
			case *Fault:
				res.Err, res.Symbol = v.Msg, v.Symbol
			case error:
				res.Err, res.Symbol = v.Error(), "panic"
			default:
				res.Err, res.Symbol = fmt.Sprint(v), "panic"
			}
		}
	}()

	env := sdk.Env{
		ContractId:  tx.Contract,
		TxId:        txID,
		BlockId:     fmt.Sprintf("block-%d", h.txSeq),
		BlockHeight: h.txSeq,
		Timestamp:   ts,
		Sender: sdk.Sender{
			Address:              tx.Caller,
			RequiredAuths:        []sdk.Address{tx.Caller},
			RequiredPostingAuths: []sdk.Address{},
		},
		Caller:  sdk.Caller{Address: tx.Caller},
		Payer:   tx.Caller,
		Intents: tx.Intents,
	}
	ret := h.invoke(env, tx.Action, tx.Payload)

	res = TxResult{TxID: txID, Success: true, Logs: h.logs}
	if ret != nil {
		res.Ret = *ret
	}
	if h.OnLog != nil {
		for _, line := range h.logs {
			h.OnLog(txID, line)
		}
	}
	return res
}

func (h *Host) invoke(env sdk.Env, action, payload string) *string {
	if len(h.frames) >= maxCallDepth {
		panic(&Fault{Msg: "max call depth exceeded", Symbol: "sdk_error"})
	}
	actions, ok := h.contracts[env.ContractId]
	if !ok {
		panic(&Fault{Msg: "contract not found: " + env.ContractId, Symbol: "sdk_error"})
	}
	fn, ok := actions[action]
	if !ok {
		panic(&Fault{Msg: "unknown action: " + action, Symbol: "sdk_error"})
	}
	h.frames = append(h.frames, &frame{
		contract: env.ContractId,
		env:      env,
		drawn:    map[sdk.Asset]int64{},
	})
	defer func() { h.frames = h.frames[:len(h.frames)-1] }()
	p := payload
	return fn(&p)
}

func (h *Host) top() *frame {
	if len(h.frames) == 0 {
		panic(&Fault{Msg: "sdk call outside of a transaction", Symbol: "sdk_error"})
	}
	return h.frames[len(h.frames)-1]
}

func (h *Host) credit(addr sdk.Address, asset sdk.Asset, amount int64) {
	if h.balances[addr] == nil {
		h.balances[addr] = map[sdk.Asset]int64{}
	}
	h.balances[addr][asset] += amount
}

type snapshot struct {
	state    map[string]map[string]string
	balances map[sdk.Address]map[sdk.Asset]int64
}

func (h *Host) snapshot() snapshot {
	s := snapshot{
		state:    make(map[string]map[string]string, len(h.state)),
		balances: make(map[sdk.Address]map[sdk.Asset]int64, len(h.balances)),
	}
	for c, kv := range h.state {
		cp := make(map[string]string, len(kv))
		for k, v := range kv {
			cp[k] = v
		}
		s.state[c] = cp
	}
	for a, bal := range h.balances {
		cp := make(map[sdk.Asset]int64, len(bal))
		for k, v := range bal {
			cp[k] = v
		}
		s.balances[a] = cp
	}
	return s
}

func (h *Host) restore(s snapshot) {
	h.state = s.state
	h.balances = s.balances
}
