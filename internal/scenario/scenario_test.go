package scenario

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"alwaysliquid_posts/contract/shared"
)

func TestLoadAppliesDeployDefaults(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "launch.yaml"))
	require.NoError(t, err)

	def := DefaultDeploy()
	assert.Equal(t, "hive:tibfox", sc.Deploy.Owner)
	assert.Equal(t, def.LedgerID, sc.Deploy.LedgerID)
	assert.Equal(t, def.MinterID, sc.Deploy.MinterID)
	assert.Equal(t, uint64(2000), sc.Deploy.DaoBps)
	assert.Equal(t, "hive", sc.Deploy.Asset)
	require.Len(t, sc.Steps, 7)
	require.NotNil(t, sc.Steps[0].Mint)
	assert.Equal(t, uint64(1), sc.Steps[0].Mint.Quantity)
	assert.Equal(t, "hive:referrer", sc.Steps[0].Mint.Referrer)
	assert.Equal(t, "deadline_passed", sc.Steps[5].Expect)
}

func TestLoadRejectsBrokenScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	body := `
deploy:
  owner: nobody
  dao: hive:dao
  dev: hive:dev
  default_price: "1.0001"
balances:
  - address: hive:buyer
    amount: "-1"
steps:
  - caller: hive:buyer
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	for _, want := range []string{"deploy.owner", "deploy.default_price", "balances[0]", "action or mint required"} {
		assert.Contains(t, err.Error(), want)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildPlanOrder(t *testing.T) {
	d := DefaultDeploy()
	d.Owner, d.Dao, d.Dev = "hive:tibfox", "hive:dao", "hive:dev"

	p := BuildPlan(d)
	require.Len(t, p.Steps, 3)
	assert.Equal(t, PlanStep{Contract: "posts", Action: "contract_init", Caller: "hive:tibfox",
		Payload: "1.000|contract:metadata|AlwaysLiquid|ALPOST"}, p.Steps[0])
	assert.Equal(t, "hive:dao|hive:dev|posts|2000|1000|1000|hive", p.Steps[1].Payload)
	assert.Equal(t, "owner_change_minter_address", p.Steps[2].Action)
	assert.Equal(t, "contract:minter", p.Steps[2].Payload)

	d.Stats = "stats"
	p = BuildPlan(d)
	require.Len(t, p.Steps, 5)
	assert.Equal(t, "toggle_stats_enabled", p.Steps[4].Action)
}

func TestPlanWriteYAML(t *testing.T) {
	d := DefaultDeploy()
	d.Owner, d.Dao, d.Dev = "hive:tibfox", "hive:dao", "hive:dev"

	var buf bytes.Buffer
	require.NoError(t, BuildPlan(d).WriteYAML(&buf))

	var got Plan
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, BuildPlan(d), got)
	assert.Contains(t, buf.String(), "action: owner_change_minter_address")
}

func TestRunLaunchScenario(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "launch.yaml"))
	require.NoError(t, err)

	r := NewRunner(sc, zaptest.NewLogger(t))
	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.Mismatches)
	require.Len(t, report.Steps, 7)
	for _, s := range report.Steps {
		assert.True(t, s.Matched, "%s: %s %s", s.Name, s.Symbol, s.Err)
	}
	assert.Equal(t, "1", report.Steps[0].Ret)
	assert.Empty(t, report.Steps[2].Logs, "reverted steps leave no events")
	assert.Equal(t, "5", report.Steps[6].Ret)

	got := map[string]shared.Amount{}
	for _, b := range report.Balances {
		got[b.Address+"/"+b.Asset] = b.Amount
	}
	assert.Equal(t, map[string]shared.Amount{
		"hive:buyer/hive":    195_000,
		"hive:dao/hive":      1_000,
		"hive:dev/hive":      500,
		"hive:author/hive":   3_400,
		"hive:referrer/hive": 100,
	}, got)

	spent := r.Host().StateValue("stats", "spent:hive:buyer")
	require.NotNil(t, spent)
	assert.Equal(t, "5.000", *spent)
}

func TestRunCountsMismatches(t *testing.T) {
	d := DefaultDeploy()
	d.Owner, d.Dao, d.Dev = "hive:tibfox", "hive:dao", "hive:dev"
	sc := &Scenario{
		Deploy:   d,
		Balances: []Balance{{Address: "hive:buyer", Amount: "10"}},
		Steps: []Step{
			{Name: "unpaid", Caller: "hive:buyer", Mint: &Mint{PostID: "p", Author: "hive:a", Receiver: "hive:buyer", Quantity: 1}},
			{Name: "pause", Caller: "hive:tibfox", Action: "toggle_paused", Expect: "not_owner"},
		},
	}
	require.NoError(t, sc.Validate())

	report, err := NewRunner(sc, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Mismatches)
	assert.Equal(t, "insufficient_payment", report.Steps[0].Symbol)
	assert.Equal(t, "true", report.Steps[1].Ret)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	d := DefaultDeploy()
	d.Owner, d.Dao, d.Dev = "hive:tibfox", "hive:dao", "hive:dev"
	sc := &Scenario{Deploy: d, Steps: []Step{{Caller: "hive:tibfox", Action: "get_config"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := NewRunner(sc, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Steps)
}
