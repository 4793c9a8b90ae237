package minter

import (
	"fmt"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

func emitInitEvent(cfg *Config) {
	sdk.Log(fmt.Sprintf(
		"init|by:%s|ledger:%s|dao:%d|dev:%d|ref:%d|asset:%s",
		cfg.Owner,
		cfg.Ledger,
		cfg.Fees.DaoBps,
		cfg.Fees.DevBps,
		cfg.Fees.ReferrerBps,
		cfg.Asset,
	))
}

// emitMintEvent carries everything an indexer needs to book a sale, split
// included. by is the signer that paid.
func emitMintEvent(req *MintRequest, tokenID uint64, unit shared.Amount, s Split, payer sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"m|id:%d|post:%s|author:%s|to:%s|q:%d|p:%s|dao:%s|dev:%s|ref:%s|ra:%s|aa:%s|by:%s",
		tokenID,
		req.PostID,
		req.Author,
		req.Receiver,
		req.Quantity,
		unit,
		s.Dao,
		s.Dev,
		req.Referrer,
		s.Referrer,
		s.Author,
		payer,
	))
}

func emitPausedEvent(paused bool, by sdk.Address) {
	sdk.Log(fmt.Sprintf("pz|v:%t|by:%s", paused, by))
}

// emitAddressChangeEvent covers dao, dev and stats target swaps.
func emitAddressChangeEvent(field, old, new string) {
	sdk.Log(fmt.Sprintf("ca|f:%s|old:%s|new:%s", field, old, new))
}

func emitStatsEnabledEvent(enabled bool) {
	sdk.Log(fmt.Sprintf("se|v:%t", enabled))
}

func emitOwnerTransferEvent(old, new sdk.Address) {
	sdk.Log(fmt.Sprintf("ot|old:%s|new:%s", old, new))
}
