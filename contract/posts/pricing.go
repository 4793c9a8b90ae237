package posts

import (
	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// PriceSource tells which tier a resolved price came from.
type PriceSource string

const (
	PriceFromPost   PriceSource = "post"
	PriceFromAuthor PriceSource = "author"
	PriceFromGlobal PriceSource = "global"
)

// ResolvePrice returns the unit price of (postID, author): the post override
// if set, else the author's default, else the global default. A missing
// global default resolves to zero. The ledger calls it on its own state, the
// minter on the ledger's state read cross-contract, so both always agree.
func ResolvePrice(read shared.StateReader, postID string, author sdk.Address) shared.Amount {
	price, _ := ResolvePriceSource(read, postID, author)
	return price
}

// ResolvePriceSource is ResolvePrice plus the tier that matched.
func ResolvePriceSource(read shared.StateReader, postID string, author sdk.Address) (shared.Amount, PriceSource) {
	if p, ok := readAmount(read, PostPriceKey(postID, author)); ok {
		return p, PriceFromPost
	}
	if p, ok := readAmount(read, AuthorPriceKey(author)); ok {
		return p, PriceFromAuthor
	}
	p, _ := readAmount(read, DefaultPriceKey)
	return p, PriceFromGlobal
}
