package minter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CosmWasm/tinyjson"

	"alwaysliquid_posts/contract/posts"
	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// StatsAction is called on the stats contract after every mint when the hook is enabled.
const StatsAction = "add_spent"

// Actions lists the exported entry points by their wasm export name.
func Actions() map[string]func(*string) *string {
	return map[string]func(*string) *string{
		"contract_init":        Init,
		"mint":                 Mint,
		"toggle_paused":        TogglePaused,
		"change_dao_address":   ChangeDaoAddress,
		"change_dev_address":   ChangeDevAddress,
		"change_stats_address": ChangeStatsAddress,
		"toggle_stats_enabled": ToggleStatsEnabled,
		"owner_transfer":       OwnerTransfer,
		"get_config":           GetConfig,
		"preview_split":        PreviewSplit,
	}
}

// Init configures fees, recipients and the ledger. The caller becomes owner.
// Payload: daoAddress|devAddress|ledgerContractId|daoFeeBps|devFeeBps|referrerFeeBps[|asset]
func Init(payload *string) *string {
	if loadConfig() != nil {
		shared.Fail(shared.ErrAlreadyInitialized)
	}
	raw := shared.UnwrapPayload(payload, "init payload required")
	parts := strings.Split(raw, "|")
	if len(parts) != 6 && len(parts) != 7 {
		shared.Failf(shared.ErrInvalidArgument, "expected dao|dev|ledger|daoBps|devBps|refBps[|asset]")
	}
	cfg := &Config{
		Owner:  shared.CallerAddress(),
		Dao:    shared.ParseAddressField(parts[0], "dao"),
		Dev:    shared.ParseAddressField(parts[1], "dev"),
		Ledger: parseContractID(parts[2], "ledger"),
		Fees: FeeConfig{
			DaoBps:      shared.ParseUintField(parts[3], "dao fee"),
			DevBps:      shared.ParseUintField(parts[4], "dev fee"),
			ReferrerBps: shared.ParseUintField(parts[5], "referrer fee"),
		},
		Asset: sdk.AssetHive,
	}
	if len(parts) == 7 {
		cfg.Asset = sdk.Asset(strings.TrimSpace(parts[6]))
		if !cfg.Asset.IsPayment() {
			shared.Failf(shared.ErrInvalidArgument, "unsupported asset %q", parts[6])
		}
	}
	if cfg.Ledger == shared.ContractID() {
		shared.Failf(shared.ErrInvalidArgument, "ledger cannot be the minter itself")
	}
	if err := cfg.Fees.Validate(); err != nil {
		shared.Fail(err)
	}
	saveConfig(cfg)
	emitInitEvent(cfg)
	return shared.Strptr("ok")
}

// Mint sells quantity editions of a post. The attached transfer.allow
// intent must equal unit price times quantity. The ledger mint, the draw,
// the payouts and the stats hook either all happen or none does.
// Payload: JSON MintRequest. Returns the token id.
func Mint(payload *string) *string {
	cfg := requireConfig()
	if cfg.Paused {
		shared.Fail(shared.ErrPaused)
	}
	var req MintRequest
	raw := shared.RawPayload(payload, "mint payload required")
	if err := tinyjson.Unmarshal([]byte(raw), &req); err != nil {
		shared.Failf(shared.ErrInvalidArgument, "mint payload: %v", err)
	}
	if req.Quantity == 0 {
		shared.Failf(shared.ErrInvalidQuantity, "quantity must be at least 1")
	}
	author := sdk.Address(req.Author)
	referrer := sdk.Address(req.Referrer)
	if !author.IsValid() {
		shared.Failf(shared.ErrInvalidArgument, "invalid author address %q", req.Author)
	}
	if !referrer.IsZero() && !referrer.IsValid() {
		shared.Failf(shared.ErrInvalidArgument, "invalid referrer address %q", req.Referrer)
	}

	ledger := shared.ContractState(cfg.Ledger)
	unit := posts.ResolvePrice(ledger, req.PostID, author)
	total, err := requirePayment(unit, req.Quantity, cfg.Asset)
	if err != nil {
		shared.Fail(err)
	}
	if !posts.LookupMintWindow(ledger, req.PostID, author).OpenAt(shared.NowUnix()) {
		shared.Failf(shared.ErrDeadlinePassed, "minting deadline has passed for post %s", req.PostID)
	}

	tokenID := callLedgerMint(cfg.Ledger, &req)

	split, err := SplitPayment(total, cfg.Fees, !referrer.IsZero())
	if err != nil {
		shared.Fail(err)
	}
	if total > 0 {
		sdk.HiveDraw(total.Int64(), cfg.Asset)
		payout(cfg.Dao, split.Dao, cfg.Asset)
		payout(cfg.Dev, split.Dev, cfg.Asset)
		payout(referrer, split.Referrer, cfg.Asset)
		payout(author, split.Author, cfg.Asset)
	}
	if cfg.StatsEnabled && cfg.Stats != "" {
		sdk.ContractCall(cfg.Stats, StatsAction, req.Receiver+"|"+total.String(), nil)
	}
	emitMintEvent(&req, tokenID, unit, split, shared.SenderAddress())
	return shared.Strptr(strconv.FormatUint(tokenID, 10))
}

// requirePayment checks the attached payment against unit*quantity. An
// unrepresentable total can never be paid and counts as insufficient.
func requirePayment(unit shared.Amount, quantity uint64, asset sdk.Asset) (shared.Amount, error) {
	total, ok := shared.MulQuantity(unit, quantity)
	if !ok {
		return 0, fmt.Errorf("price %s x %d overflows: %w", unit, quantity, shared.ErrInsufficientPayment)
	}
	paid, err := shared.AttachedPayment(asset)
	if err != nil {
		return 0, err
	}
	if paid != total {
		return 0, fmt.Errorf("attached %s, required %s: %w", paid, total, shared.ErrInsufficientPayment)
	}
	return total, nil
}

func callLedgerMint(ledger string, req *MintRequest) uint64 {
	body, err := tinyjson.Marshal(posts.MintArgs{
		PostID:      req.PostID,
		Author:      req.Author,
		Receiver:    req.Receiver,
		TextPreview: req.TextPreview,
		Image:       req.Image,
		Quantity:    req.Quantity,
	})
	if err != nil {
		sdk.Abort("marshal ledger mint: " + err.Error())
	}
	ret := sdk.ContractCall(ledger, "mint", string(body), nil)
	if ret == nil {
		sdk.Abort("ledger mint returned nothing")
	}
	tokenID, err := strconv.ParseUint(*ret, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("ledger mint returned %q", *ret))
	}
	return tokenID
}

// payout skips empty shares; a refused transfer aborts the whole mint.
func payout(to sdk.Address, amt shared.Amount, asset sdk.Asset) {
	if amt <= 0 || to.IsZero() {
		return
	}
	sdk.HiveTransfer(to, amt.Int64(), asset)
}

// -----------------------------------------------------------------------------
// Owner settings
// -----------------------------------------------------------------------------

// TogglePaused flips the pause flag.
func TogglePaused(_ *string) *string {
	cfg := requireOwner()
	cfg.Paused = !cfg.Paused
	saveConfig(cfg)
	emitPausedEvent(cfg.Paused, cfg.Owner)
	return shared.Strptr(strconv.FormatBool(cfg.Paused))
}

// ChangeDaoAddress sets the DAO treasury. Payload: address
func ChangeDaoAddress(payload *string) *string {
	cfg := requireOwner()
	addr := shared.ParseAddressField(shared.UnwrapPayload(payload, "dao address required"), "dao")
	old := cfg.Dao
	cfg.Dao = addr
	saveConfig(cfg)
	emitAddressChangeEvent("dao", old.String(), addr.String())
	return shared.Strptr("ok")
}

// ChangeDevAddress sets the developer payout address. Payload: address
func ChangeDevAddress(payload *string) *string {
	cfg := requireOwner()
	addr := shared.ParseAddressField(shared.UnwrapPayload(payload, "dev address required"), "dev")
	old := cfg.Dev
	cfg.Dev = addr
	saveConfig(cfg)
	emitAddressChangeEvent("dev", old.String(), addr.String())
	return shared.Strptr("ok")
}

// ChangeStatsAddress sets the stats contract. Payload: contract id
func ChangeStatsAddress(payload *string) *string {
	cfg := requireOwner()
	id := parseContractID(shared.UnwrapPayload(payload, "stats contract id required"), "stats")
	old := cfg.Stats
	cfg.Stats = id
	saveConfig(cfg)
	emitAddressChangeEvent("stats", old, id)
	return shared.Strptr("ok")
}

// ToggleStatsEnabled flips the stats hook.
func ToggleStatsEnabled(_ *string) *string {
	cfg := requireOwner()
	cfg.StatsEnabled = !cfg.StatsEnabled
	saveConfig(cfg)
	emitStatsEnabledEvent(cfg.StatsEnabled)
	return shared.Strptr(strconv.FormatBool(cfg.StatsEnabled))
}

// OwnerTransfer moves ownership of the minter. Payload: address
func OwnerTransfer(payload *string) *string {
	cfg := requireOwner()
	owner := shared.ParseAddressField(shared.UnwrapPayload(payload, "owner address required"), "owner")
	old := cfg.Owner
	cfg.Owner = owner
	saveConfig(cfg)
	emitOwnerTransferEvent(old, owner)
	return shared.Strptr("ok")
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetConfig returns the JSON view of the minter configuration.
func GetConfig(_ *string) *string {
	cfg := requireConfig()
	return marshalView(ConfigView{
		Owner:        cfg.Owner.String(),
		Dao:          cfg.Dao.String(),
		Dev:          cfg.Dev.String(),
		Ledger:       cfg.Ledger,
		DaoBps:       cfg.Fees.DaoBps,
		DevBps:       cfg.Fees.DevBps,
		ReferrerBps:  cfg.Fees.ReferrerBps,
		AuthorBps:    cfg.Fees.AuthorBps(),
		Asset:        cfg.Asset.String(),
		Paused:       cfg.Paused,
		Stats:        cfg.Stats,
		StatsEnabled: cfg.StatsEnabled,
	})
}

// PreviewSplit shows how a payment would be divided. Payload: amount|withReferrer
func PreviewSplit(payload *string) *string {
	cfg := requireConfig()
	raw := shared.UnwrapPayload(payload, "amount|withReferrer required")
	amtStr, refStr := shared.SplitLast(raw, "expected amount|withReferrer")
	total := shared.ParseAmountField(amtStr, "amount")
	split, err := SplitPayment(total, cfg.Fees, shared.ParseBoolField(refStr))
	if err != nil {
		shared.Fail(err)
	}
	return marshalView(newSplitView(total, split))
}

func marshalView(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("marshal view: " + err.Error())
	}
	return shared.Strptr(string(b))
}
