package scenario

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/CosmWasm/tinyjson"
	"go.uber.org/zap"

	"alwaysliquid_posts/contract/minter"
	"alwaysliquid_posts/contract/posts"
	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
	"alwaysliquid_posts/simhost"
)

// ExpectOK is the expectation of a step that must commit.
const ExpectOK = "ok"

// StepResult is the outcome of one scenario step.
type StepResult struct {
	Name     string
	Contract string
	Action   string
	TxID     string
	Success  bool
	Ret      string
	Symbol   string
	Err      string
	Logs     []string
	Expected string
	Matched  bool
}

// BalanceLine is one address/asset balance after the run.
type BalanceLine struct {
	Address string
	Asset   string
	Amount  shared.Amount
}

// Report collects everything a run produced.
type Report struct {
	Steps      []StepResult
	Balances   []BalanceLine
	Mismatches int
}

// Runner replays a scenario on a fresh simulated host.
type Runner struct {
	sc   *Scenario
	host *simhost.Host
	log  *zap.Logger
}

// NewRunner deploys nothing yet; Run does the deployment and the steps.
func NewRunner(sc *Scenario, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	h := simhost.New()
	h.Register(sc.Deploy.LedgerID, posts.Actions())
	h.Register(sc.Deploy.MinterID, minter.Actions())
	if sc.Deploy.Stats != "" {
		h.Register(sc.Deploy.Stats, statsRecorder())
	}
	h.OnLog = func(txID, line string) {
		log.Debug("contract event", zap.String("tx", txID), zap.String("line", line))
	}
	return &Runner{sc: sc, host: h, log: log}
}

// Host exposes the simulated chain for inspection after a run.
func (r *Runner) Host() *simhost.Host {
	return r.host
}

// Run deploys the contracts, seeds balances and executes every step in
// order. Steps whose outcome differs from Expect are counted as mismatches;
// only a failing deployment or a cancelled context returns an error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	d := r.sc.Deploy
	for _, st := range BuildPlan(d).Steps {
		res := r.host.Call(simhost.Tx{
			Caller:   sdk.Address(st.Caller),
			Contract: st.Contract,
			Action:   st.Action,
			Payload:  st.Payload,
		})
		if !res.Success {
			return nil, fmt.Errorf("deploy %s.%s: %s: %s", st.Contract, st.Action, res.Symbol, res.Err)
		}
		r.log.Info("deployed", zap.String("contract", st.Contract), zap.String("action", st.Action))
	}

	for _, b := range r.sc.Balances {
		amt, _ := shared.ParseAmount(b.Amount)
		r.host.Deposit(sdk.Address(b.Address), amt.Int64(), assetOr(b.Asset, d.Asset))
	}

	report := &Report{}
	for i, st := range r.sc.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		tx, err := r.buildTx(st)
		if err != nil {
			return report, fmt.Errorf("steps[%d] %s: %w", i, st.Name, err)
		}
		res := r.host.Call(tx)
		sr := StepResult{
			Name:     stepName(st, i),
			Contract: tx.Contract,
			Action:   tx.Action,
			TxID:     res.TxID,
			Success:  res.Success,
			Ret:      res.Ret,
			Symbol:   res.Symbol,
			Err:      res.Err,
			Logs:     res.Logs,
			Expected: expectOf(st),
		}
		sr.Matched = matches(sr)
		if !sr.Matched {
			report.Mismatches++
		}
		r.logStep(sr)
		report.Steps = append(report.Steps, sr)
	}
	report.Balances = r.balances()
	return report, nil
}

func (r *Runner) buildTx(st Step) (simhost.Tx, error) {
	d := r.sc.Deploy
	tx := simhost.Tx{
		Caller:    sdk.Address(st.Caller),
		Contract:  d.contractFor(st.Contract),
		Action:    st.Action,
		Payload:   st.Payload,
		Timestamp: st.Timestamp,
	}
	if st.Mint != nil {
		if tx.Action == "" {
			tx.Action = "mint"
		}
		body, err := tinyjson.Marshal(minter.MintRequest{
			PostID:      st.Mint.PostID,
			Author:      st.Mint.Author,
			Receiver:    st.Mint.Receiver,
			Referrer:    st.Mint.Referrer,
			TextPreview: st.Mint.TextPreview,
			Image:       st.Mint.Image,
			Quantity:    st.Mint.Quantity,
		})
		if err != nil {
			return tx, fmt.Errorf("encode mint: %w", err)
		}
		tx.Payload = string(body)
	}
	if st.Attach != "" {
		tx.Intents = simhost.TransferAllow(st.Attach, sdk.Asset(d.Asset))
	}
	return tx, nil
}

func (r *Runner) logStep(sr StepResult) {
	fields := []zap.Field{
		zap.String("step", sr.Name),
		zap.String("tx", sr.TxID),
		zap.String("call", sr.Contract+"."+sr.Action),
		zap.Bool("success", sr.Success),
	}
	if sr.Ret != "" {
		fields = append(fields, zap.String("ret", sr.Ret))
	}
	if !sr.Success {
		fields = append(fields, zap.String("symbol", sr.Symbol), zap.String("err", sr.Err))
	}
	if sr.Matched {
		r.log.Info("step", fields...)
		return
	}
	r.log.Warn("unexpected outcome", append(fields, zap.String("expected", sr.Expected))...)
}

// balances lists the report addresses, or every seeded account plus the
// fee receivers when none are named.
func (r *Runner) balances() []BalanceLine {
	d := r.sc.Deploy
	addrs := r.sc.Report
	if len(addrs) == 0 {
		seen := map[string]bool{}
		for _, a := range append([]string{d.Dao, d.Dev}, seededAddresses(r.sc.Balances)...) {
			if !seen[a] {
				seen[a] = true
				addrs = append(addrs, a)
			}
		}
		sort.Strings(addrs)
	}
	var out []BalanceLine
	for _, a := range addrs {
		for _, asset := range []sdk.Asset{sdk.AssetHive, sdk.AssetHbd} {
			amt := r.host.BalanceOf(sdk.Address(a), asset)
			if amt == 0 {
				continue
			}
			out = append(out, BalanceLine{Address: a, Asset: asset.String(), Amount: shared.Amount(amt)})
		}
	}
	return out
}

func seededAddresses(bs []Balance) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Address)
	}
	return out
}

func assetOr(asset, fallback string) sdk.Asset {
	if asset == "" {
		return sdk.Asset(fallback)
	}
	return sdk.Asset(strings.ToLower(asset))
}

func expectOf(st Step) string {
	if st.Expect == "" {
		return ExpectOK
	}
	return st.Expect
}

func matches(sr StepResult) bool {
	if sr.Expected == ExpectOK {
		return sr.Success
	}
	return !sr.Success && sr.Symbol == sr.Expected
}

func stepName(st Step, i int) string {
	if st.Name != "" {
		return st.Name
	}
	return fmt.Sprintf("step-%d", i+1)
}

// statsRecorder is the stats contract the simulator deploys when a
// scenario names one: it sums spend per receiver under "spent:<receiver>".
func statsRecorder() map[string]simhost.Handler {
	return map[string]simhost.Handler{
		minter.StatsAction: func(p *string) *string {
			receiver, raw, ok := strings.Cut(shared.RawPayload(p, "receiver|amount required"), "|")
			if !ok {
				shared.Failf(shared.ErrInvalidArgument, "expected receiver|amount")
			}
			amt, err := shared.ParseAmount(raw)
			if err != nil {
				shared.Fail(err)
			}
			key := "spent:" + receiver
			var prev shared.Amount
			if v := sdk.StateGetObject(key); v != nil {
				prev, _ = shared.ParseAmount(*v)
			}
			sdk.StateSetObject(key, (prev + amt).String())
			return nil
		},
	}
}
