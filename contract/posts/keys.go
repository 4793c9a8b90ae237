package posts

import (
	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// State layout. The minter reads the price, index, meta and deadline keys
// of this contract directly, so their encoding is part of the contract's
// public surface.
const (
	ConfigKey       = "cfg"
	DefaultPriceKey = "dprice"
	TokenCounterKey = "count:tok"
)

const (
	kPostIndex    byte = 0x01 // postId+author -> tokenId
	kPostMeta     byte = 0x02 // tokenId -> Post
	kPostPrice    byte = 0x03 // postId+author -> Amount
	kPostDeadline byte = 0x04 // postId+author -> seconds
	kAuthorPrice  byte = 0x05 // author -> Amount
	kBalance      byte = 0x06 // tokenId+holder -> quantity
	kSupply       byte = 0x07 // tokenId -> quantity
)

// postKey mixes the prefix with the length prefixed post id and author so
// ("ab","c") and ("a","bc") never share a key.
func postKey(prefix byte, postID string, author sdk.Address) string {
	buf := make([]byte, 0, 1+8+len(postID)+len(author))
	buf = append(buf, prefix)
	buf = shared.PackString(postID, buf)
	buf = append(buf, author...)
	return string(buf)
}

func tokenKey(prefix byte, tokenID uint64) string {
	buf := make([]byte, 0, 9)
	buf = append(buf, prefix)
	buf = shared.PackU64(tokenID, buf)
	return string(buf)
}

// PostIndexKey maps a post to its token id.
func PostIndexKey(postID string, author sdk.Address) string {
	return postKey(kPostIndex, postID, author)
}

// PostMetaKey stores the encoded Post record.
func PostMetaKey(tokenID uint64) string {
	return tokenKey(kPostMeta, tokenID)
}

// PostPriceKey stores the author's price override for a post.
func PostPriceKey(postID string, author sdk.Address) string {
	return postKey(kPostPrice, postID, author)
}

// PostDeadlineKey stores the mint window length in seconds.
func PostDeadlineKey(postID string, author sdk.Address) string {
	return postKey(kPostDeadline, postID, author)
}

// AuthorPriceKey stores the author's default price.
func AuthorPriceKey(author sdk.Address) string {
	buf := make([]byte, 0, 1+len(author))
	buf = append(buf, kAuthorPrice)
	buf = append(buf, author...)
	return string(buf)
}

func balanceKey(tokenID uint64, holder sdk.Address) string {
	buf := make([]byte, 0, 9+len(holder))
	buf = append(buf, kBalance)
	buf = shared.PackU64(tokenID, buf)
	buf = append(buf, holder...)
	return string(buf)
}

func supplyKey(tokenID uint64) string {
	return tokenKey(kSupply, tokenID)
}
