// Package result iterates over the batches of entries a directory
// connection delivers for an outstanding search operation.
//
// The iterator is lazy, finite and non-restartable: each Next call that
// has exhausted the current batch asks the connection for the following
// one, and iteration ends when the connection reports a terminating batch
// or an error. Entries are produced strictly in batch-arrival order.
// Abandoning the search server-side is out of scope; cancelling is simply
// ceasing to iterate.
package result

import "context"

// Type classifies a batch of results.
type Type int

const (
	// TypeDone terminates the iteration; a done batch carries no entries.
	TypeDone Type = iota
	// TypeEntry is a batch of search result entries.
	TypeEntry
	// TypeReferral is a batch of continuation references.
	TypeReferral
)

// String returns the string representation of the batch type.
func (t Type) String() string {
	switch t {
	case TypeDone:
		return "done"
	case TypeEntry:
		return "entry"
	case TypeReferral:
		return "referral"
	default:
		return "unknown"
	}
}

// Entry is one search result entry as delivered by the connection.
type Entry struct {
	DN         string
	Attributes map[string][][]byte
}

// Control is a response control attached to a batch, passed through
// opaquely.
type Control struct {
	OID         string
	Criticality bool
	Value       []byte
}

// Batch is one protocol-level delivery of results for a message ID.
type Batch struct {
	Type     Type
	Entries  []Entry
	MsgID    int
	Controls []Control
}

// Conn is the slice of a directory connection the iterator needs: fetch
// the next batch of results for an outstanding operation. The fetch is
// the only blocking point of the iteration, which is why it carries the
// context.
type Conn interface {
	Result(ctx context.Context, msgID int) (*Batch, error)
}

// Iterator walks all entries of an operation batch by batch.
//
//	it := result.All(conn, msgID)
//	for it.Next(ctx) {
//	    entry := it.Entry()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    ...
//	}
type Iterator struct {
	conn  Conn
	msgID int

	batch *Batch
	idx   int
	err   error
	done  bool
}

// All returns an iterator over every entry the connection will deliver
// for msgID. Nothing is fetched until the first Next call.
func All(conn Conn, msgID int) *Iterator {
	return &Iterator{conn: conn, msgID: msgID, idx: -1}
}

// Next advances to the next entry, fetching the next batch from the
// connection when the current one is exhausted. It returns false when the
// connection delivers a terminating or empty batch, or on error; the
// error is available from Err. Next never returns true again after
// returning false.
func (it *Iterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}
	for {
		if it.batch != nil && it.idx+1 < len(it.batch.Entries) {
			it.idx++
			return true
		}
		b, err := it.conn.Result(ctx, it.msgID)
		if err != nil {
			it.err = err
			it.done = true
			return false
		}
		if b == nil || b.Type == TypeDone || len(b.Entries) == 0 {
			it.done = true
			return false
		}
		it.batch = b
		it.idx = -1
	}
}

// Entry returns the entry the iterator is positioned on. It is only valid
// after a Next call that returned true.
func (it *Iterator) Entry() Entry {
	return it.batch.Entries[it.idx]
}

// Batch returns the batch the current entry arrived in, including its
// type and response controls.
func (it *Iterator) Batch() *Batch {
	return it.batch
}

// Err returns the error that terminated the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}
