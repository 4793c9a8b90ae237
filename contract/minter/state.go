package minter

import (
	"fmt"
	"strconv"
	"strings"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

const ConfigKey = "cfg"

// encodeConfig serializes Config to a pipe-delimited string.
// Format: owner|dao|dev|ledger|daoBps|devBps|refBps|asset|paused|stats|statsEnabled
func encodeConfig(cfg *Config) string {
	return strings.Join([]string{
		cfg.Owner.String(),
		cfg.Dao.String(),
		cfg.Dev.String(),
		cfg.Ledger,
		strconv.FormatUint(cfg.Fees.DaoBps, 10),
		strconv.FormatUint(cfg.Fees.DevBps, 10),
		strconv.FormatUint(cfg.Fees.ReferrerBps, 10),
		cfg.Asset.String(),
		boolToString(cfg.Paused),
		cfg.Stats,
		boolToString(cfg.StatsEnabled),
	}, "|")
}

func decodeConfig(raw string) (*Config, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 11 {
		return nil, fmt.Errorf("minter config has %d fields", len(parts))
	}
	var bps [3]uint64
	for i := range bps {
		v, err := strconv.ParseUint(parts[4+i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fee field %d: %v", i, err)
		}
		bps[i] = v
	}
	return &Config{
		Owner:        sdk.Address(parts[0]),
		Dao:          sdk.Address(parts[1]),
		Dev:          sdk.Address(parts[2]),
		Ledger:       parts[3],
		Fees:         FeeConfig{DaoBps: bps[0], DevBps: bps[1], ReferrerBps: bps[2]},
		Asset:        sdk.Asset(parts[7]),
		Paused:       parts[8] == "1",
		Stats:        parts[9],
		StatsEnabled: parts[10] == "1",
	}, nil
}

func boolToString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func loadConfig() *Config {
	ptr := sdk.StateGetObject(ConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := decodeConfig(*ptr)
	if err != nil {
		sdk.Abort("corrupt minter config: " + err.Error())
	}
	return cfg
}

func requireConfig() *Config {
	cfg := loadConfig()
	if cfg == nil {
		shared.Fail(shared.ErrNotInitialized)
	}
	return cfg
}

func saveConfig(cfg *Config) {
	shared.StateSetIfChanged(ConfigKey, encodeConfig(cfg))
}

func requireOwner() *Config {
	cfg := requireConfig()
	if shared.CallerAddress() != cfg.Owner {
		shared.Failf(shared.ErrUnauthorized, "only owner")
	}
	return cfg
}

// parseContractID accepts a bare contract id or its contract: address form.
func parseContractID(val string, field string) string {
	id := strings.TrimPrefix(strings.TrimSpace(val), "contract:")
	if id == "" || strings.ContainsAny(id, "| \t\n") {
		shared.Failf(shared.ErrInvalidArgument, "invalid %s contract id %q", field, val)
	}
	return id
}
