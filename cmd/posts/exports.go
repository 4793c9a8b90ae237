//go:build wasm

package main

import "alwaysliquid_posts/contract/posts"

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return posts.Init(payload) }

//go:wasmexport mint
func Mint(payload *string) *string { return posts.Mint(payload) }

//go:wasmexport get_post
func GetPost(payload *string) *string { return posts.GetPost(payload) }

//go:wasmexport get_post_id
func GetPostID(payload *string) *string { return posts.GetPostID(payload) }

//go:wasmexport get_post_price
func GetPostPrice(payload *string) *string { return posts.GetPostPrice(payload) }

//go:wasmexport balance_of
func BalanceOf(payload *string) *string { return posts.GetBalance(payload) }

//go:wasmexport total_supply
func TotalSupply(payload *string) *string { return posts.GetTotalSupply(payload) }

//go:wasmexport get_config
func GetConfig(payload *string) *string { return posts.GetConfig(payload) }

//go:wasmexport author_set_post_price
func AuthorSetPostPrice(payload *string) *string { return posts.AuthorSetPostPrice(payload) }

//go:wasmexport author_set_default_price
func AuthorSetDefaultPrice(payload *string) *string { return posts.AuthorSetDefaultPrice(payload) }

//go:wasmexport author_set_mint_time
func AuthorSetMintTime(payload *string) *string { return posts.AuthorSetMintTime(payload) }

//go:wasmexport author_set_text_preview
func AuthorSetTextPreview(payload *string) *string { return posts.AuthorSetTextPreview(payload) }

//go:wasmexport owner_change_text_preview
func OwnerChangeTextPreview(payload *string) *string { return posts.OwnerChangeTextPreview(payload) }

//go:wasmexport owner_change_default_price
func OwnerChangeDefaultPrice(payload *string) *string { return posts.OwnerChangeDefaultPrice(payload) }

//go:wasmexport owner_change_minter_address
func OwnerChangeMinterAddress(payload *string) *string { return posts.OwnerChangeMinterAddress(payload) }

//go:wasmexport owner_change_metadata_address
func OwnerChangeMetadataAddress(payload *string) *string {
	return posts.OwnerChangeMetadataAddress(payload)
}

//go:wasmexport owner_transfer
func OwnerTransfer(payload *string) *string { return posts.OwnerTransfer(payload) }
