// Package scenario loads deployment and mint scenarios for the posts
// contracts and replays them against the in-memory host.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// Deploy describes one ledger plus minter installation.
type Deploy struct {
	Owner        string `mapstructure:"owner" yaml:"owner"`
	LedgerID     string `mapstructure:"ledger_id" yaml:"ledger_id"`
	MinterID     string `mapstructure:"minter_id" yaml:"minter_id"`
	DefaultPrice string `mapstructure:"default_price" yaml:"default_price"`
	Metadata     string `mapstructure:"metadata" yaml:"metadata"`
	Name         string `mapstructure:"name" yaml:"name"`
	Symbol       string `mapstructure:"symbol" yaml:"symbol"`
	Dao          string `mapstructure:"dao" yaml:"dao"`
	Dev          string `mapstructure:"dev" yaml:"dev"`
	DaoBps       uint64 `mapstructure:"dao_bps" yaml:"dao_bps"`
	DevBps       uint64 `mapstructure:"dev_bps" yaml:"dev_bps"`
	ReferrerBps  uint64 `mapstructure:"referrer_bps" yaml:"referrer_bps"`
	Asset        string `mapstructure:"asset" yaml:"asset"`
	Stats        string `mapstructure:"stats" yaml:"stats,omitempty"`
}

// Balance seeds an account before the steps run.
type Balance struct {
	Address string `mapstructure:"address"`
	Amount  string `mapstructure:"amount"`
	Asset   string `mapstructure:"asset"`
}

// Mint is the structured form of a minter mint payload.
type Mint struct {
	PostID      string `mapstructure:"post_id"`
	Author      string `mapstructure:"author"`
	Receiver    string `mapstructure:"receiver"`
	Referrer    string `mapstructure:"referrer"`
	TextPreview string `mapstructure:"text_preview"`
	Image       string `mapstructure:"image"`
	Quantity    uint64 `mapstructure:"quantity"`
}

// Step is one transaction. Either Payload or Mint is used; Mint builds the
// JSON body of a minter mint. Expect is "ok" (default) or a revert symbol.
type Step struct {
	Name      string `mapstructure:"name"`
	Caller    string `mapstructure:"caller"`
	Contract  string `mapstructure:"contract"`
	Action    string `mapstructure:"action"`
	Payload   string `mapstructure:"payload"`
	Mint      *Mint  `mapstructure:"mint"`
	Attach    string `mapstructure:"attach"`
	Timestamp string `mapstructure:"timestamp"`
	Expect    string `mapstructure:"expect"`
}

// Scenario is the root of a scenario file.
type Scenario struct {
	Deploy   Deploy    `mapstructure:"deploy"`
	Balances []Balance `mapstructure:"balances"`
	Steps    []Step    `mapstructure:"steps"`
	Report   []string  `mapstructure:"report"`
}

// DefaultDeploy mirrors the production parameters: 1.000 per edition and
// 20% dao, 10% dev, 10% referrer fees paid in HIVE.
func DefaultDeploy() Deploy {
	return Deploy{
		LedgerID:     "posts",
		MinterID:     "minter",
		DefaultPrice: "1.000",
		Metadata:     "contract:metadata",
		Name:         "AlwaysLiquid",
		Symbol:       "ALPOST",
		DaoBps:       2000,
		DevBps:       1000,
		ReferrerBps:  1000,
		Asset:        sdk.AssetHive.String(),
	}
}

// Load reads a scenario file (yaml, json or toml, by extension) with viper,
// filling unset deploy fields from DefaultDeploy.
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	def := DefaultDeploy()
	v.SetDefault("deploy.ledger_id", def.LedgerID)
	v.SetDefault("deploy.minter_id", def.MinterID)
	v.SetDefault("deploy.default_price", def.DefaultPrice)
	v.SetDefault("deploy.metadata", def.Metadata)
	v.SetDefault("deploy.name", def.Name)
	v.SetDefault("deploy.symbol", def.Symbol)
	v.SetDefault("deploy.dao_bps", def.DaoBps)
	v.SetDefault("deploy.dev_bps", def.DevBps)
	v.SetDefault("deploy.referrer_bps", def.ReferrerBps)
	v.SetDefault("deploy.asset", def.Asset)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the parts of a scenario that would otherwise only fail
// half way through a run.
func (sc *Scenario) Validate() error {
	var errs []error
	d := sc.Deploy
	for field, addr := range map[string]string{"owner": d.Owner, "dao": d.Dao, "dev": d.Dev} {
		if !sdk.Address(addr).IsValid() {
			errs = append(errs, fmt.Errorf("deploy.%s: invalid address %q", field, addr))
		}
	}
	if d.LedgerID == "" || d.MinterID == "" || d.LedgerID == d.MinterID {
		errs = append(errs, errors.New("deploy: ledger_id and minter_id must be set and differ"))
	}
	if _, err := shared.ParseAmount(d.DefaultPrice); err != nil {
		errs = append(errs, fmt.Errorf("deploy.default_price: %w", err))
	}
	for i, b := range sc.Balances {
		if !sdk.Address(b.Address).IsValid() {
			errs = append(errs, fmt.Errorf("balances[%d]: invalid address %q", i, b.Address))
		}
		if _, err := shared.ParseAmount(b.Amount); err != nil {
			errs = append(errs, fmt.Errorf("balances[%d]: %w", i, err))
		}
	}
	for i, st := range sc.Steps {
		if !sdk.Address(st.Caller).IsValid() {
			errs = append(errs, fmt.Errorf("steps[%d] %s: invalid caller %q", i, st.Name, st.Caller))
		}
		if st.Action == "" && st.Mint == nil {
			errs = append(errs, fmt.Errorf("steps[%d] %s: action or mint required", i, st.Name))
		}
		if st.Attach != "" {
			if _, err := shared.ParseAmount(st.Attach); err != nil {
				errs = append(errs, fmt.Errorf("steps[%d] %s: attach: %w", i, st.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// contractFor maps a step's contract field to a deployed id. "ledger" and
// "minter" name the deployed pair, anything else is taken literally.
func (d Deploy) contractFor(name string) string {
	switch strings.ToLower(name) {
	case "", "minter":
		return d.MinterID
	case "ledger", "posts":
		return d.LedgerID
	default:
		return name
	}
}
