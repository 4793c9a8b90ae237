package posts

import (
	"math"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

// MintWindow is the time gate of one post. A post is open until it was
// minted at least once and its deadline elapsed; the closed state is never
// stored, only derived from the clock.
type MintWindow struct {
	Minted          bool
	FirstMintAt     int64
	DeadlineSeconds uint64
}

// OpenAt reports whether minting is allowed at now. The boundary is
// inclusive: minting at exactly FirstMintAt+DeadlineSeconds still succeeds.
func (w MintWindow) OpenAt(now int64) bool {
	if !w.Minted || w.DeadlineSeconds == 0 || now <= w.FirstMintAt {
		return true
	}
	return uint64(now)-uint64(w.FirstMintAt) <= w.DeadlineSeconds
}

// ClosesAt returns the last second minting is open, ok=false when the
// window never closes.
func (w MintWindow) ClosesAt() (int64, bool) {
	if !w.Minted || w.DeadlineSeconds == 0 {
		return 0, false
	}
	if w.DeadlineSeconds > uint64(math.MaxInt64-w.FirstMintAt) {
		return math.MaxInt64, true
	}
	return w.FirstMintAt + int64(w.DeadlineSeconds), true
}

// LookupMintWindow assembles the window of (postID, author) from state.
func LookupMintWindow(read shared.StateReader, postID string, author sdk.Address) MintWindow {
	w := MintWindow{DeadlineSeconds: shared.GetCount(read, PostDeadlineKey(postID, author))}
	if tokenID, ok := LookupTokenID(read, postID, author); ok {
		if p, found := LoadPost(read, tokenID); found {
			w.Minted = true
			w.FirstMintAt = p.FirstMintAt
		}
	}
	return w
}
