package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"alwaysliquid_posts/sdk"
)

// PlanStep is one owner transaction of the deployment sequence.
type PlanStep struct {
	Contract string `yaml:"contract"`
	Action   string `yaml:"action"`
	Payload  string `yaml:"payload,omitempty"`
	Caller   string `yaml:"caller"`
}

// Plan is the ordered deployment of a ledger and its minter.
type Plan struct {
	Deploy Deploy     `yaml:"deploy"`
	Steps  []PlanStep `yaml:"steps"`
}

// BuildPlan returns the transactions that install d: ledger init, minter
// init pointing at the ledger, then the ledger handing minting to the
// minter. A stats contract is wired and enabled last when configured.
func BuildPlan(d Deploy) Plan {
	owner := d.Owner
	minterInit := fmt.Sprintf("%s|%s|%s|%d|%d|%d|%s",
		d.Dao, d.Dev, d.LedgerID, d.DaoBps, d.DevBps, d.ReferrerBps, d.Asset)
	steps := []PlanStep{
		{Contract: d.LedgerID, Action: "contract_init", Caller: owner,
			Payload: fmt.Sprintf("%s|%s|%s|%s", d.DefaultPrice, d.Metadata, d.Name, d.Symbol)},
		{Contract: d.MinterID, Action: "contract_init", Caller: owner, Payload: minterInit},
		{Contract: d.LedgerID, Action: "owner_change_minter_address", Caller: owner,
			Payload: sdk.ContractAddress(d.MinterID).String()},
	}
	if d.Stats != "" {
		steps = append(steps,
			PlanStep{Contract: d.MinterID, Action: "change_stats_address", Caller: owner, Payload: d.Stats},
			PlanStep{Contract: d.MinterID, Action: "toggle_stats_enabled", Caller: owner},
		)
	}
	return Plan{Deploy: d, Steps: steps}
}

// WriteYAML renders p as a yaml document.
func (p Plan) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}
