////////////////////////////////////////////////////////////////////////////////
// AlwaysLiquid minter: sells post editions and splits the proceeds
// build: tinygo build -o artifacts/minter.wasm -target=wasm-unknown ./cmd/minter
////////////////////////////////////////////////////////////////////////////////

package main

func main() {}
