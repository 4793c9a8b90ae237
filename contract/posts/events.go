package posts

import (
	"fmt"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// emitInitEvent announces the collection once the ledger is configured.
func emitInitEvent(owner sdk.Address, name, symbol string) {
	sdk.Log(fmt.Sprintf("init|by:%s|name:%s|sym:%s", owner, name, symbol))
}

// emitMintEvent is the ledger side of every mint, the minter logs the money side.
func emitMintEvent(tokenID uint64, postID string, author, receiver sdk.Address, qty uint64, first bool) {
	sdk.Log(fmt.Sprintf(
		"mn|id:%d|post:%s|author:%s|to:%s|q:%d|first:%t",
		tokenID,
		postID,
		author,
		receiver,
		qty,
		first,
	))
}

func emitPostPriceEvent(postID string, author sdk.Address, price shared.Amount) {
	sdk.Log(fmt.Sprintf("pp|post:%s|author:%s|p:%s", postID, author, price))
}

func emitAuthorPriceEvent(author sdk.Address, price shared.Amount) {
	sdk.Log(fmt.Sprintf("ap|author:%s|p:%s", author, price))
}

func emitMintTimeEvent(postID string, author sdk.Address, seconds uint64) {
	sdk.Log(fmt.Sprintf("mt|post:%s|author:%s|s:%d", postID, author, seconds))
}

// emitTextPreviewEvent records who touched a preview, author or owner.
func emitTextPreviewEvent(tokenID uint64, by sdk.Address) {
	sdk.Log(fmt.Sprintf("tp|id:%d|by:%s", tokenID, by))
}

func emitDefaultPriceEvent(old, new shared.Amount) {
	sdk.Log(fmt.Sprintf("dp|old:%s|new:%s", old, new))
}

// emitMinterChangeEvent lets watchers see the handoff, the old minter is dead from here on.
func emitMinterChangeEvent(old, new sdk.Address) {
	sdk.Log(fmt.Sprintf("mc|old:%s|new:%s", old, new))
}

func emitMetadataChangeEvent(old, new sdk.Address) {
	sdk.Log(fmt.Sprintf("md|old:%s|new:%s", old, new))
}

func emitOwnerTransferEvent(old, new sdk.Address) {
	sdk.Log(fmt.Sprintf("ot|old:%s|new:%s", old, new))
}
