// Package collabs provides minimal, in-process stand-ins for the
// sequencer's external collaborators: the transaction pool, world-state
// database, L1 publisher, validator p2p client, and global-variable
// builder are all out of scope for the sequencer itself, but
// cmd/sequencer needs something to wire up for a single-process devnet.
package collabs

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// maxPoolByteSize caps the pool the way vms/platformvm/mempool.go caps
// its own batch of decision transactions, scaled up from a per-block
// batch to a whole-pool budget.
const maxPoolByteSize = 128 << 20 // 128 MiB

var errPoolFull = errors.New("collabs: pool exceeds max byte size")

// Pool is an in-memory sequencer.TxPool plus a side channel for
// injecting epoch proof quotes (AddEpochProofQuote), standing in for
// the real mempool's quote storage.
type Pool struct {
	mu     sync.Mutex
	txs    map[sequencer.TxHash]sequencer.Tx
	order  []sequencer.TxHash
	size   int
	quotes map[sequencer.Epoch][]sequencer.EpochProofQuote
}

// NewPool constructs an empty Pool.
func NewPool() *Pool {
	return &Pool{
		txs:    make(map[sequencer.TxHash]sequencer.Tx),
		quotes: make(map[sequencer.Epoch][]sequencer.EpochProofQuote),
	}
}

// AddTx admits tx into the pool, a no-op if it's already present.
func (p *Pool) AddTx(tx sequencer.Tx) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.txs[tx.Hash]; exists {
		return nil
	}
	if p.size+tx.Size > maxPoolByteSize {
		return errPoolFull
	}
	p.txs[tx.Hash] = tx
	p.order = append(p.order, tx.Hash)
	p.size += tx.Size
	return nil
}

// AddEpochProofQuote registers a quote as available for epoch.
func (p *Pool) AddEpochProofQuote(epoch sequencer.Epoch, quote sequencer.EpochProofQuote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quotes[epoch] = append(p.quotes[epoch], quote)
}

// PendingTxCount implements sequencer.TxPool.
func (p *Pool) PendingTxCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.order)
}

// IteratePendingTxs implements sequencer.TxPool. The iterator walks a
// point-in-time snapshot so a concurrent AddTx never races the reader.
func (p *Pool) IteratePendingTxs() sequencer.TxIterator {
	p.mu.Lock()
	defer p.mu.Unlock()
	snapshot := make([]sequencer.Tx, 0, len(p.order))
	for _, h := range p.order {
		snapshot = append(snapshot, p.txs[h])
	}
	return &poolIterator{txs: snapshot}
}

// DeleteTxs implements sequencer.TxPool.
func (p *Pool) DeleteTxs(hashes []sequencer.TxHash) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range hashes {
		if tx, ok := p.txs[h]; ok {
			p.size -= tx.Size
			delete(p.txs, h)
		}
	}
	filtered := p.order[:0]
	for _, h := range p.order {
		if _, ok := p.txs[h]; ok {
			filtered = append(filtered, h)
		}
	}
	p.order = filtered
	return nil
}

// GetEpochProofQuotes implements sequencer.TxPool.
func (p *Pool) GetEpochProofQuotes(ctx context.Context, epoch sequencer.Epoch) ([]sequencer.EpochProofQuote, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sequencer.EpochProofQuote(nil), p.quotes[epoch]...), nil
}

// Status implements sequencer.TxPool.
func (p *Pool) Status() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("pending=%d bytes=%d", len(p.order), p.size), nil
}

type poolIterator struct {
	txs []sequencer.Tx
	idx int
}

func (it *poolIterator) Next() (sequencer.Tx, bool) {
	if it.idx >= len(it.txs) {
		return sequencer.Tx{}, false
	}
	tx := it.txs[it.idx]
	it.idx++
	return tx, true
}
