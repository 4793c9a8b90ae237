// Package posts is the token ledger contract: one edition token per
// (post id, author), balances per holder and the author facing price and
// mint window settings the minter reads before every mint.
package posts

import (
	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

//go:generate tinyjson -all -snake_case types.go

const (
	// MaxPreviewLength caps text previews, counted in unicode code points.
	MaxPreviewLength = 1000
	// MaxImageLength caps the image reference in bytes.
	MaxImageLength = 500
	// MaxPostIDLength caps the off-chain post id in bytes.
	MaxPostIDLength = 256
)

// Post is the stored record of a minted post.
type Post struct {
	TokenID     uint64
	PostID      string
	Author      sdk.Address
	TextPreview string
	Image       string
	FirstMintAt int64
}

// LedgerConfig holds the contract level settings. An empty Minter means
// the ledger is not yet wired to a minting contract and rejects every mint.
type LedgerConfig struct {
	Owner           sdk.Address
	Minter          sdk.Address
	MetadataAddress sdk.Address
	Name            string
	Symbol          string
}

// MintArgs is the JSON payload of the ledger mint action.
//
//tinyjson:json
type MintArgs struct {
	PostID      string `json:"post_id"`
	Author      string `json:"author"`
	Receiver    string `json:"receiver"`
	TextPreview string `json:"text_preview"`
	Image       string `json:"image"`
	Quantity    uint64 `json:"quantity"`
}

// PostView is returned by get_post.
//
//tinyjson:json
type PostView struct {
	TokenID         uint64 `json:"token_id"`
	PostID          string `json:"post_id"`
	Author          string `json:"author"`
	TextPreview     string `json:"text_preview"`
	Image           string `json:"image"`
	FirstMintAt     int64  `json:"first_mint_at"`
	DeadlineSeconds uint64 `json:"deadline_seconds"`
	Price           string `json:"price"`
	Supply          uint64 `json:"supply"`
}

// ConfigView is returned by get_config.
//
//tinyjson:json
type ConfigView struct {
	Owner           string `json:"owner"`
	Minter          string `json:"minter"`
	MetadataAddress string `json:"metadata_address"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	DefaultPrice    string `json:"default_price"`
	TokenCount      uint64 `json:"token_count"`
}

func newPostView(p *Post, deadline uint64, price shared.Amount, supply uint64) PostView {
	return PostView{
		TokenID:         p.TokenID,
		PostID:          p.PostID,
		Author:          p.Author.String(),
		TextPreview:     p.TextPreview,
		Image:           p.Image,
		FirstMintAt:     p.FirstMintAt,
		DeadlineSeconds: deadline,
		Price:           price.String(),
		Supply:          supply,
	}
}
