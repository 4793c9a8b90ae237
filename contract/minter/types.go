// Package minter is the minting authority: it prices a mint from the ledger
// state, collects the exact payment, drives the ledger mint and splits the
// proceeds between the DAO, the developer, an optional referrer and the author.
package minter

import (
	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

//go:generate tinyjson -all -snake_case types.go

// Config is the minter's contract state.
type Config struct {
	Owner        sdk.Address
	Dao          sdk.Address
	Dev          sdk.Address
	Ledger       string
	Fees         FeeConfig
	Asset        sdk.Asset
	Paused       bool
	Stats        string
	StatsEnabled bool
}

// MintRequest is the JSON payload of the minter mint action. Referrer may be empty.
//
//tinyjson:json
type MintRequest struct {
	PostID      string `json:"post_id"`
	Author      string `json:"author"`
	Receiver    string `json:"receiver"`
	Referrer    string `json:"referrer"`
	TextPreview string `json:"text_preview"`
	Image       string `json:"image"`
	Quantity    uint64 `json:"quantity"`
}

// ConfigView is returned by get_config.
//
//tinyjson:json
type ConfigView struct {
	Owner        string `json:"owner"`
	Dao          string `json:"dao"`
	Dev          string `json:"dev"`
	Ledger       string `json:"ledger"`
	DaoBps       uint64 `json:"dao_bps"`
	DevBps       uint64 `json:"dev_bps"`
	ReferrerBps  uint64 `json:"referrer_bps"`
	AuthorBps    uint64 `json:"author_bps"`
	Asset        string `json:"asset"`
	Paused       bool   `json:"paused"`
	Stats        string `json:"stats"`
	StatsEnabled bool   `json:"stats_enabled"`
}

// SplitView is returned by preview_split.
//
//tinyjson:json
type SplitView struct {
	Total    string `json:"total"`
	Dao      string `json:"dao"`
	Dev      string `json:"dev"`
	Referrer string `json:"referrer"`
	Author   string `json:"author"`
}

func newSplitView(total shared.Amount, s Split) SplitView {
	return SplitView{
		Total:    total.String(),
		Dao:      s.Dao.String(),
		Dev:      s.Dev.String(),
		Referrer: s.Referrer.String(),
		Author:   s.Author.String(),
	}
}
