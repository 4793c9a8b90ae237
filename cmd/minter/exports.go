//go:build wasm

package main

import "alwaysliquid_posts/contract/minter"

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return minter.Init(payload) }

//go:wasmexport mint
func Mint(payload *string) *string { return minter.Mint(payload) }

//go:wasmexport toggle_paused
func TogglePaused(payload *string) *string { return minter.TogglePaused(payload) }

//go:wasmexport change_dao_address
func ChangeDaoAddress(payload *string) *string { return minter.ChangeDaoAddress(payload) }

//go:wasmexport change_dev_address
func ChangeDevAddress(payload *string) *string { return minter.ChangeDevAddress(payload) }

//go:wasmexport change_stats_address
func ChangeStatsAddress(payload *string) *string { return minter.ChangeStatsAddress(payload) }

//go:wasmexport toggle_stats_enabled
func ToggleStatsEnabled(payload *string) *string { return minter.ToggleStatsEnabled(payload) }

//go:wasmexport owner_transfer
func OwnerTransfer(payload *string) *string { return minter.OwnerTransfer(payload) }

//go:wasmexport get_config
func GetConfig(payload *string) *string { return minter.GetConfig(payload) }

//go:wasmexport preview_split
func PreviewSplit(payload *string) *string { return minter.PreviewSplit(payload) }
