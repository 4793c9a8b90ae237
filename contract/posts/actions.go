package posts

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/CosmWasm/tinyjson"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// Actions lists the exported entry points by their wasm export name.
func Actions() map[string]func(*string) *string {
	return map[string]func(*string) *string{
		"contract_init":                 Init,
		"mint":                          Mint,
		"get_post":                      GetPost,
		"get_post_id":                   GetPostID,
		"get_post_price":                GetPostPrice,
		"balance_of":                    GetBalance,
		"total_supply":                  GetTotalSupply,
		"get_config":                    GetConfig,
		"author_set_post_price":         AuthorSetPostPrice,
		"author_set_default_price":      AuthorSetDefaultPrice,
		"author_set_mint_time":          AuthorSetMintTime,
		"author_set_text_preview":       AuthorSetTextPreview,
		"owner_change_text_preview":     OwnerChangeTextPreview,
		"owner_change_default_price":    OwnerChangeDefaultPrice,
		"owner_change_minter_address":   OwnerChangeMinterAddress,
		"owner_change_metadata_address": OwnerChangeMetadataAddress,
		"owner_transfer":                OwnerTransfer,
	}
}

// Init configures the collection and makes the caller its owner. The minter
// stays unbound until the owner wires one with owner_change_minter_address.
// Payload: defaultPrice|metadataAddress|name|symbol
func Init(payload *string) *string {
	if loadConfig() != nil {
		shared.Fail(shared.ErrAlreadyInitialized)
	}
	raw := shared.UnwrapPayload(payload, "init payload required")
	parts := strings.Split(raw, "|")
	if len(parts) != 4 {
		shared.Failf(shared.ErrInvalidArgument, "expected defaultPrice|metadataAddress|name|symbol")
	}
	price := shared.ParseAmountField(parts[0], "default price")
	metadata := shared.ParseAddressField(parts[1], "metadata")
	name := strings.TrimSpace(parts[2])
	symbol := strings.TrimSpace(parts[3])
	if name == "" || symbol == "" {
		shared.Failf(shared.ErrInvalidArgument, "collection name and symbol required")
	}
	cfg := &LedgerConfig{
		Owner:           shared.CallerAddress(),
		MetadataAddress: metadata,
		Name:            name,
		Symbol:          symbol,
	}
	saveConfig(cfg)
	writeAmount(DefaultPriceKey, price)
	emitInitEvent(cfg.Owner, name, symbol)
	return shared.Strptr("ok")
}

// Mint credits quantity editions of a post to the receiver. Only the bound
// minter may call it. The first mint of (post id, author) assigns the token
// id and freezes the first mint timestamp.
// Payload: JSON MintArgs. Returns the token id.
func Mint(payload *string) *string {
	cfg := requireConfig()
	caller := shared.CallerAddress()
	if cfg.Minter.IsZero() || caller != cfg.Minter {
		shared.Failf(shared.ErrUnauthorized, "only minter can mint")
	}
	var args MintArgs
	raw := shared.RawPayload(payload, "mint payload required")
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		shared.Failf(shared.ErrInvalidArgument, "mint payload: %v", err)
	}
	tokenID, first, err := mintPost(&args, shared.NowUnix())
	if err != nil {
		shared.Fail(err)
	}
	emitMintEvent(tokenID, args.PostID, sdk.Address(args.Author), sdk.Address(args.Receiver), args.Quantity, first)
	return shared.Strptr(strconv.FormatUint(tokenID, 10))
}

// mintPost runs the ledger side of a mint and reports whether it created the post.
func mintPost(args *MintArgs, now int64) (uint64, bool, error) {
	if args.Quantity == 0 {
		return 0, false, fmt.Errorf("quantity must be at least 1: %w", shared.ErrInvalidQuantity)
	}
	if err := validatePostID(args.PostID); err != nil {
		return 0, false, err
	}
	author := sdk.Address(args.Author)
	receiver := sdk.Address(args.Receiver)
	if !author.IsValid() {
		return 0, false, fmt.Errorf("author %q: %w", args.Author, shared.ErrInvalidArgument)
	}
	if !receiver.IsValid() {
		return 0, false, fmt.Errorf("receiver %q: %w", args.Receiver, shared.ErrInvalidArgument)
	}
	if err := validatePreview(args.TextPreview); err != nil {
		return 0, false, err
	}
	if len(args.Image) > MaxImageLength {
		return 0, false, fmt.Errorf("image longer than %d bytes: %w", MaxImageLength, shared.ErrInvalidArgument)
	}

	tokenID, exists := LookupTokenID(shared.OwnState, args.PostID, author)
	if exists {
		window := LookupMintWindow(shared.OwnState, args.PostID, author)
		if !window.OpenAt(now) {
			return 0, false, fmt.Errorf("post %s: %w", args.PostID, shared.ErrDeadlinePassed)
		}
	} else {
		tokenID = nextTokenID()
		sdk.StateSetObject(PostIndexKey(args.PostID, author), strconv.FormatUint(tokenID, 10))
		savePost(&Post{
			TokenID:     tokenID,
			PostID:      args.PostID,
			Author:      author,
			TextPreview: args.TextPreview,
			Image:       args.Image,
			FirstMintAt: now,
		})
	}
	credit(tokenID, receiver, args.Quantity)
	return tokenID, !exists, nil
}

func validatePostID(postID string) error {
	if postID == "" {
		return fmt.Errorf("post id required: %w", shared.ErrInvalidArgument)
	}
	if len(postID) > MaxPostIDLength {
		return fmt.Errorf("post id longer than %d bytes: %w", MaxPostIDLength, shared.ErrInvalidArgument)
	}
	// pipe payloads are trimmed, so padded ids would key a different post there
	if strings.TrimSpace(postID) != postID {
		return fmt.Errorf("post id %q has surrounding whitespace: %w", postID, shared.ErrInvalidArgument)
	}
	return nil
}

// validatePreview counts code points, so emoji and accents cost one each.
func validatePreview(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("text preview is not valid utf-8: %w", shared.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(text) > MaxPreviewLength {
		return shared.ErrPreviewTooLong
	}
	return nil
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetPost returns the JSON view of a token. Payload: tokenId
func GetPost(payload *string) *string {
	tokenID := shared.ParseUintField(shared.UnwrapPayload(payload, "token id required"), "token id")
	p, ok := LoadPost(shared.OwnState, tokenID)
	if !ok {
		shared.Failf(shared.ErrNotFound, "token id %d does not exist", tokenID)
	}
	view := newPostView(
		p,
		shared.GetCount(shared.OwnState, PostDeadlineKey(p.PostID, p.Author)),
		ResolvePrice(shared.OwnState, p.PostID, p.Author),
		SupplyOf(shared.OwnState, tokenID),
	)
	return marshalView(view)
}

// GetPostID returns the token id of a post. Payload: postId|author
func GetPostID(payload *string) *string {
	postID, author := parsePostRef(payload)
	tokenID, ok := LookupTokenID(shared.OwnState, postID, author)
	if !ok {
		shared.Failf(shared.ErrNotFound, "post %s by %s was never minted", postID, author)
	}
	return shared.Strptr(strconv.FormatUint(tokenID, 10))
}

// GetPostPrice resolves the current unit price. Payload: postId|author
func GetPostPrice(payload *string) *string {
	postID, author := parsePostRef(payload)
	return shared.Strptr(ResolvePrice(shared.OwnState, postID, author).String())
}

// GetBalance returns a holder's quantity of a token. Payload: holder|tokenId
func GetBalance(payload *string) *string {
	raw := shared.UnwrapPayload(payload, "holder|tokenId required")
	holderStr, idStr := shared.SplitLast(raw, "expected holder|tokenId")
	holder := shared.ParseAddressField(holderStr, "holder")
	tokenID := shared.ParseUintField(idStr, "token id")
	return shared.Strptr(strconv.FormatUint(BalanceOf(shared.OwnState, holder, tokenID), 10))
}

// GetTotalSupply returns the minted quantity of a token. Payload: tokenId
func GetTotalSupply(payload *string) *string {
	tokenID := shared.ParseUintField(shared.UnwrapPayload(payload, "token id required"), "token id")
	return shared.Strptr(strconv.FormatUint(SupplyOf(shared.OwnState, tokenID), 10))
}

// GetConfig returns the JSON view of the ledger configuration.
func GetConfig(_ *string) *string {
	cfg := requireConfig()
	price, _ := readAmount(shared.OwnState, DefaultPriceKey)
	return marshalView(ConfigView{
		Owner:           cfg.Owner.String(),
		Minter:          cfg.Minter.String(),
		MetadataAddress: cfg.MetadataAddress.String(),
		Name:            cfg.Name,
		Symbol:          cfg.Symbol,
		DefaultPrice:    price.String(),
		TokenCount:      shared.GetCount(shared.OwnState, TokenCounterKey),
	})
}

func marshalView(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("marshal view: " + err.Error())
	}
	return shared.Strptr(string(b))
}

// parsePostRef reads postId|author. The author is taken after the last pipe
// so post ids may contain pipes.
func parsePostRef(payload *string) (string, sdk.Address) {
	raw := shared.UnwrapPayload(payload, "postId|author required")
	postID, authorStr := shared.SplitLast(raw, "expected postId|author")
	if err := validatePostID(postID); err != nil {
		shared.Fail(err)
	}
	return postID, shared.ParseAddressField(authorStr, "author")
}

// -----------------------------------------------------------------------------
// Author settings
// -----------------------------------------------------------------------------

// requirePostAuthor allows (postID, caller) settings before the first mint.
// Once minted, the stored author must be the caller.
func requirePostAuthor(postID string, caller sdk.Address) {
	tokenID, ok := LookupTokenID(shared.OwnState, postID, caller)
	if !ok {
		return
	}
	if p, found := LoadPost(shared.OwnState, tokenID); found && p.Author != caller {
		shared.Failf(shared.ErrUnauthorized, "only the post author can change it")
	}
}

// AuthorSetPostPrice overrides the price of one of the caller's posts.
// Payload: postId|price
func AuthorSetPostPrice(payload *string) *string {
	requireConfig()
	raw := shared.UnwrapPayload(payload, "postId|price required")
	postID, priceStr := shared.SplitLast(raw, "expected postId|price")
	if err := validatePostID(postID); err != nil {
		shared.Fail(err)
	}
	price := shared.ParseAmountField(priceStr, "price")
	author := shared.CallerAddress()
	requirePostAuthor(postID, author)
	writeAmount(PostPriceKey(postID, author), price)
	emitPostPriceEvent(postID, author, price)
	return shared.Strptr("ok")
}

// AuthorSetDefaultPrice sets the price of every post of the caller without
// an override. Payload: price
func AuthorSetDefaultPrice(payload *string) *string {
	requireConfig()
	price := shared.ParseAmountField(shared.UnwrapPayload(payload, "price required"), "price")
	author := shared.CallerAddress()
	writeAmount(AuthorPriceKey(author), price)
	emitAuthorPriceEvent(author, price)
	return shared.Strptr("ok")
}

// AuthorSetMintTime sets the mint window length of one of the caller's
// posts, 0 removes the deadline. Payload: postId|seconds
func AuthorSetMintTime(payload *string) *string {
	requireConfig()
	raw := shared.UnwrapPayload(payload, "postId|seconds required")
	postID, secStr := shared.SplitLast(raw, "expected postId|seconds")
	if err := validatePostID(postID); err != nil {
		shared.Fail(err)
	}
	seconds := shared.ParseUintField(secStr, "seconds")
	author := shared.CallerAddress()
	requirePostAuthor(postID, author)
	shared.SetCount(PostDeadlineKey(postID, author), seconds)
	emitMintTimeEvent(postID, author, seconds)
	return shared.Strptr("ok")
}

// AuthorSetTextPreview lets the stored author rewrite a preview.
// Payload: tokenId|text
func AuthorSetTextPreview(payload *string) *string {
	requireConfig()
	tokenID, text := parsePreviewChange(payload)
	p, ok := LoadPost(shared.OwnState, tokenID)
	if !ok {
		shared.Failf(shared.ErrNotFound, "token id %d does not exist", tokenID)
	}
	caller := shared.CallerAddress()
	if p.Author != caller {
		shared.Failf(shared.ErrUnauthorized, "only the post author can change the preview")
	}
	p.TextPreview = text
	savePost(p)
	emitTextPreviewEvent(tokenID, caller)
	return shared.Strptr("ok")
}

// parsePreviewChange splits tokenId|text at the first pipe, the text is free form.
func parsePreviewChange(payload *string) (uint64, string) {
	if payload == nil {
		shared.Failf(shared.ErrInvalidArgument, "tokenId|text required")
	}
	idStr, text := shared.SplitFirst(*payload, "expected tokenId|text")
	tokenID := shared.ParseUintField(idStr, "token id")
	if err := validatePreview(text); err != nil {
		shared.Fail(err)
	}
	return tokenID, text
}

// -----------------------------------------------------------------------------
// Owner settings
// -----------------------------------------------------------------------------

func requireOwner() *LedgerConfig {
	cfg := requireConfig()
	if shared.CallerAddress() != cfg.Owner {
		shared.Failf(shared.ErrUnauthorized, "only owner")
	}
	return cfg
}

// OwnerChangeTextPreview moderates a preview. Payload: tokenId|text
func OwnerChangeTextPreview(payload *string) *string {
	cfg := requireOwner()
	tokenID, text := parsePreviewChange(payload)
	p, ok := LoadPost(shared.OwnState, tokenID)
	if !ok {
		shared.Failf(shared.ErrNotFound, "token id %d does not exist", tokenID)
	}
	p.TextPreview = text
	savePost(p)
	emitTextPreviewEvent(tokenID, cfg.Owner)
	return shared.Strptr("ok")
}

// OwnerChangeDefaultPrice sets the global fallback price. Payload: price
func OwnerChangeDefaultPrice(payload *string) *string {
	requireOwner()
	price := shared.ParseAmountField(shared.UnwrapPayload(payload, "price required"), "price")
	old, _ := readAmount(shared.OwnState, DefaultPriceKey)
	writeAmount(DefaultPriceKey, price)
	emitDefaultPriceEvent(old, price)
	return shared.Strptr("ok")
}

// OwnerChangeMinterAddress hands minting rights to a new minter. The old one
// is rejected from the next call on. Payload: address
func OwnerChangeMinterAddress(payload *string) *string {
	cfg := requireOwner()
	minter := shared.ParseAddressField(shared.UnwrapPayload(payload, "minter address required"), "minter")
	old := cfg.Minter
	cfg.Minter = minter
	saveConfig(cfg)
	emitMinterChangeEvent(old, minter)
	return shared.Strptr("ok")
}

// OwnerChangeMetadataAddress points the collection at a new metadata renderer.
func OwnerChangeMetadataAddress(payload *string) *string {
	cfg := requireOwner()
	metadata := shared.ParseAddressField(shared.UnwrapPayload(payload, "metadata address required"), "metadata")
	old := cfg.MetadataAddress
	cfg.MetadataAddress = metadata
	saveConfig(cfg)
	emitMetadataChangeEvent(old, metadata)
	return shared.Strptr("ok")
}

// OwnerTransfer moves ownership of the ledger. Payload: address
func OwnerTransfer(payload *string) *string {
	cfg := requireOwner()
	owner := shared.ParseAddressField(shared.UnwrapPayload(payload, "owner address required"), "owner")
	old := cfg.Owner
	cfg.Owner = owner
	saveConfig(cfg)
	emitOwnerTransferEvent(old, owner)
	return shared.Strptr("ok")
}
