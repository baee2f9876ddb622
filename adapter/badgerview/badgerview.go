// Package badgerview exposes a key prefix scan of a badger database as a single pass range.
package badgerview

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/rangekit/pkg/rangekit"
)

type Entry = rangekit.Pair[string, []byte]

// Scan returns the entries whose key starts with prefix, in key order.
// The scan runs in its own read transaction,
// which is released when the range is closed.
//
// Values are copied out of the transaction,
// so an element stays valid after the range moved on.
func Scan(db *badger.DB, prefix []byte) *Range {
	pi := &pullIter{db: db, prefix: bytes.Clone(prefix)}
	return &Range{SeqView: rangekit.FromPullIter[Entry](pi), pi: pi}
}

type Range struct {
	*rangekit.SeqView[Entry]
	pi *pullIter
}

// Close releases the read transaction, even when the iteration never started.
func (r *Range) Close() error {
	return errorkit.Merge(r.SeqView.Close(), r.pi.Close())
}

type pullIter struct {
	db     *badger.DB
	prefix []byte

	txn    *badger.Txn
	it     *badger.Iterator
	value  Entry
	err    error
	closed bool
}

func (i *pullIter) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	if i.it == nil {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = i.prefix
		i.txn = i.db.NewTransaction(false)
		i.it = i.txn.NewIterator(opts)
		i.it.Seek(i.prefix)
	} else {
		i.it.Next()
	}
	if !i.it.ValidForPrefix(i.prefix) {
		return false
	}
	item := i.it.Item()
	value, err := item.ValueCopy(nil)
	if err != nil {
		i.err = err
		return false
	}
	i.value = rangekit.MakePair(string(item.KeyCopy(nil)), value)
	return true
}

func (i *pullIter) Value() Entry { return i.value }

func (i *pullIter) Err() error { return i.err }

func (i *pullIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.it != nil {
		i.it.Close()
	}
	if i.txn != nil {
		i.txn.Discard()
	}
	return nil
}

// Put stores the entries in a single write transaction.
func Put(db *badger.DB, entries ...Entry) error {
	return db.Update(func(txn *badger.Txn) error {
		for _, e := range entries {
			if err := txn.Set([]byte(e.First), e.Second); err != nil {
				return err
			}
		}
		return nil
	})
}
