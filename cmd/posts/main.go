////////////////////////////////////////////////////////////////////////////////
// AlwaysLiquid posts: edition token ledger for the vsc network
// build: tinygo build -o artifacts/posts.wasm -target=wasm-unknown ./cmd/posts
////////////////////////////////////////////////////////////////////////////////

package main

func main() {}
