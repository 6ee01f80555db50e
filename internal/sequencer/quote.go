package sequencer

import (
	"context"
	"sort"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

const claimedEpochCacheSize = 32

// ProofQuoteBidder implements component G: fetches epoch-proof quotes
// for the claimable prior epoch, filters by validity, picks the lowest
// fee, and claims it (either attached to a block, or directly).
type ProofQuoteBidder struct {
	Publisher Publisher
	Pool      TxPool

	// claimed remembers epochs this process has already claimed
	// successfully, so a best-effort retry loop doesn't hammer the
	// publisher with duplicate claims across ticks; a failed or declined
	// claim is not remembered and is tried again on a later tick. Bounded LRU: claimable epochs are a
	// small, slowly-moving set.
	claimed *lru.Cache
}

// NewProofQuoteBidder constructs a ProofQuoteBidder with its
// claimed-epoch cache initialized.
func NewProofQuoteBidder(publisher Publisher, pool TxPool) *ProofQuoteBidder {
	cache, err := lru.New(claimedEpochCacheSize)
	if err != nil {
		// lru.New only errors for size <= 0, which claimedEpochCacheSize
		// never is.
		panic(err)
	}
	return &ProofQuoteBidder{Publisher: publisher, Pool: pool, claimed: cache}
}

// pickQuote resolves the claimable epoch, fetches and filters quotes,
// and returns the cheapest valid one. ok=false means there is nothing
// to claim this tick.
func (b *ProofQuoteBidder) pickQuote(ctx context.Context, currentSlot Slot) (quote EpochProofQuote, epoch Epoch, ok bool, err error) {
	epoch, hasEpoch, err := b.Publisher.GetClaimableEpoch(ctx)
	if err != nil {
		return EpochProofQuote{}, 0, false, errors.Wrap(err, "get claimable epoch")
	}
	if !hasEpoch {
		return EpochProofQuote{}, 0, false, nil
	}

	quotes, err := b.Pool.GetEpochProofQuotes(ctx, epoch)
	if err != nil {
		return EpochProofQuote{}, 0, false, errors.Wrap(err, "get epoch proof quotes")
	}

	valid := make([]EpochProofQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.ValidUntilSlot < currentSlot || q.EpochToProve != epoch {
			continue
		}
		validated, err := b.Publisher.ValidateProofQuote(ctx, q)
		if err != nil || validated == nil {
			continue
		}
		valid = append(valid, *validated)
	}
	if len(valid) == 0 {
		return EpochProofQuote{}, epoch, false, nil
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].BasisPointFee < valid[j].BasisPointFee })
	return valid[0], epoch, true, nil
}

// claimIfAvailable runs the direct-claim path, used by WorkLoop when no
// block is being built this tick.
func (b *ProofQuoteBidder) claimIfAvailable(ctx context.Context, currentSlot Slot) error {
	quote, epoch, ok, err := b.pickQuote(ctx, currentSlot)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if _, seen := b.claimed.Get(epoch); seen {
		return nil
	}

	claimed, err := b.Publisher.ClaimEpochProofRight(ctx, quote)
	if err != nil {
		return errors.Wrap(ErrClaimFailed, err.Error())
	}
	if !claimed {
		return errors.Wrap(ErrClaimFailed, "publisher declined the claim")
	}
	b.claimed.Add(epoch, struct{}{})
	return nil
}
