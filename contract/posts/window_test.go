package posts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

func TestMintWindowOpenAt(t *testing.T) {
	const first = int64(1_756_857_600)
	cases := []struct {
		name string
		w    MintWindow
		now  int64
		open bool
	}{
		{"never minted", MintWindow{DeadlineSeconds: 10}, first + 1_000, true},
		{"no deadline", MintWindow{Minted: true, FirstMintAt: first}, math.MaxInt64, true},
		{"inside", MintWindow{Minted: true, FirstMintAt: first, DeadlineSeconds: 60}, first + 59, true},
		{"boundary", MintWindow{Minted: true, FirstMintAt: first, DeadlineSeconds: 60}, first + 60, true},
		{"after", MintWindow{Minted: true, FirstMintAt: first, DeadlineSeconds: 60}, first + 61, false},
		{"clock behind first mint", MintWindow{Minted: true, FirstMintAt: first, DeadlineSeconds: 60}, first - 5, true},
		{"huge deadline", MintWindow{Minted: true, FirstMintAt: first, DeadlineSeconds: math.MaxUint64}, math.MaxInt64, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.open, c.w.OpenAt(c.now))
		})
	}
}

func TestMintWindowClosesAt(t *testing.T) {
	_, ok := MintWindow{DeadlineSeconds: 5}.ClosesAt()
	assert.False(t, ok)

	at, ok := MintWindow{Minted: true, FirstMintAt: 100, DeadlineSeconds: 5}.ClosesAt()
	assert.True(t, ok)
	assert.Equal(t, int64(105), at)

	at, ok = MintWindow{Minted: true, FirstMintAt: 100, DeadlineSeconds: math.MaxUint64}.ClosesAt()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), at)
}

// mapState is a StateReader over a plain map, standing in for a contract's kv.
type mapState map[string]string

func (m mapState) read(key string) *string {
	if v, ok := m[key]; ok {
		return &v
	}
	return nil
}

func TestResolvePriceTiers(t *testing.T) {
	author := sdk.Address("hive:author")
	state := mapState{}
	var read shared.StateReader = state.read

	price, src := ResolvePriceSource(read, "p1", author)
	assert.Equal(t, shared.Amount(0), price, "no global default resolves to zero")
	assert.Equal(t, PriceFromGlobal, src)

	state[DefaultPriceKey] = "1000"
	price, src = ResolvePriceSource(read, "p1", author)
	assert.Equal(t, shared.Amount(1000), price)
	assert.Equal(t, PriceFromGlobal, src)

	state[AuthorPriceKey(author)] = "0"
	price, src = ResolvePriceSource(read, "p1", author)
	assert.Equal(t, shared.Amount(0), price, "an explicit zero default still wins")
	assert.Equal(t, PriceFromAuthor, src)

	state[PostPriceKey("p1", author)] = "2500"
	price, src = ResolvePriceSource(read, "p1", author)
	assert.Equal(t, shared.Amount(2500), price)
	assert.Equal(t, PriceFromPost, src)

	assert.Equal(t, shared.Amount(0), ResolvePrice(read, "p2", author))
	assert.Equal(t, shared.Amount(1000), ResolvePrice(read, "p1", "hive:other"))
}

func TestPostKeysDoNotCollide(t *testing.T) {
	assert.NotEqual(t, PostPriceKey("ab", "hive:c"), PostPriceKey("a", "bhive:c"))
	assert.NotEqual(t, PostPriceKey("p1", "hive:a"), PostDeadlineKey("p1", "hive:a"))
}

func TestPostCodecRoundTrip(t *testing.T) {
	p := &Post{TokenID: 9, PostID: "a|b", Author: "hive:x", TextPreview: "héllo 😅", Image: "", FirstMintAt: 42}
	got, err := decodePost(encodePost(p))
	assert.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = decodePost(encodePost(p)[:5])
	assert.Error(t, err)
}
