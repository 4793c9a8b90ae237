package posts

import (
	"fmt"
	"strconv"
	"strings"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// -----------------------------------------------------------------------------
// Ledger config
// -----------------------------------------------------------------------------

// encodeConfig serializes LedgerConfig to a pipe-delimited string.
// Format: owner|minter|metadata|name|symbol
func encodeConfig(cfg *LedgerConfig) string {
	return strings.Join([]string{
		cfg.Owner.String(),
		cfg.Minter.String(),
		cfg.MetadataAddress.String(),
		cfg.Name,
		cfg.Symbol,
	}, "|")
}

func decodeConfig(raw string) (*LedgerConfig, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 5 {
		return nil, fmt.Errorf("ledger config has %d fields", len(parts))
	}
	return &LedgerConfig{
		Owner:           sdk.Address(parts[0]),
		Minter:          sdk.Address(parts[1]),
		MetadataAddress: sdk.Address(parts[2]),
		Name:            parts[3],
		Symbol:          parts[4],
	}, nil
}

func loadConfig() *LedgerConfig {
	ptr := sdk.StateGetObject(ConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := decodeConfig(*ptr)
	if err != nil {
		sdk.Abort("corrupt ledger config: " + err.Error())
	}
	return cfg
}

// requireConfig reverts with not_initialized before init ran.
func requireConfig() *LedgerConfig {
	cfg := loadConfig()
	if cfg == nil {
		shared.Fail(shared.ErrNotInitialized)
	}
	return cfg
}

func saveConfig(cfg *LedgerConfig) {
	shared.StateSetIfChanged(ConfigKey, encodeConfig(cfg))
}

// -----------------------------------------------------------------------------
// Post records
// -----------------------------------------------------------------------------

func encodePost(p *Post) string {
	w := shared.NewWriter()
	w.WriteUint64(p.TokenID)
	w.WriteString(p.PostID)
	w.WriteAddress(p.Author)
	w.WriteString(p.TextPreview)
	w.WriteString(p.Image)
	w.WriteInt64(p.FirstMintAt)
	return string(w.Bytes())
}

func decodePost(raw string) (*Post, error) {
	r := shared.NewReader([]byte(raw))
	p := &Post{}
	var err error
	if p.TokenID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if p.PostID, err = r.ReadString(); err != nil {
		return nil, err
	}
	if p.Author, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if p.TextPreview, err = r.ReadString(); err != nil {
		return nil, err
	}
	if p.Image, err = r.ReadString(); err != nil {
		return nil, err
	}
	if p.FirstMintAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPost reads the post record of tokenID through read.
func LoadPost(read shared.StateReader, tokenID uint64) (*Post, bool) {
	ptr := read(PostMetaKey(tokenID))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	p, err := decodePost(*ptr)
	if err != nil {
		sdk.Abort(fmt.Sprintf("corrupt post %d: %v", tokenID, err))
	}
	return p, true
}

func savePost(p *Post) {
	sdk.StateSetObject(PostMetaKey(p.TokenID), encodePost(p))
}

// LookupTokenID resolves the token id of (postID, author), false before the first mint.
func LookupTokenID(read shared.StateReader, postID string, author sdk.Address) (uint64, bool) {
	ptr := read(PostIndexKey(postID, author))
	if ptr == nil || *ptr == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// nextTokenID bumps the token counter. Ids start at 1 and are never reused.
func nextTokenID() uint64 {
	id := shared.GetCount(shared.OwnState, TokenCounterKey) + 1
	shared.SetCount(TokenCounterKey, id)
	return id
}

// -----------------------------------------------------------------------------
// Amounts and quantities
// -----------------------------------------------------------------------------

// readAmount returns the stored amount under key, ok=false when unset.
func readAmount(read shared.StateReader, key string) (shared.Amount, bool) {
	ptr := read(key)
	if ptr == nil || *ptr == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return shared.Amount(v), true
}

func writeAmount(key string, amt shared.Amount) {
	sdk.StateSetObject(key, strconv.FormatInt(amt.Int64(), 10))
}

// BalanceOf returns the quantity of tokenID held by holder.
func BalanceOf(read shared.StateReader, holder sdk.Address, tokenID uint64) uint64 {
	return shared.GetCount(read, balanceKey(tokenID, holder))
}

// SupplyOf returns the total minted quantity of tokenID.
func SupplyOf(read shared.StateReader, tokenID uint64) uint64 {
	return shared.GetCount(read, supplyKey(tokenID))
}

// credit adds qty to the holder balance and the token supply. Both only
// ever grow; an overflow aborts the mint rather than wrapping.
func credit(tokenID uint64, holder sdk.Address, qty uint64) {
	bal := BalanceOf(shared.OwnState, holder, tokenID)
	supply := SupplyOf(shared.OwnState, tokenID)
	if bal+qty < bal || supply+qty < supply {
		shared.Failf(shared.ErrInvalidQuantity, "quantity overflows supply of token %d", tokenID)
	}
	shared.SetCount(balanceKey(tokenID, holder), bal+qty)
	shared.SetCount(supplyKey(tokenID), supply+qty)
}
