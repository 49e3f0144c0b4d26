// Package graphtest provides an in-memory graph.Querier for tests.
package graphtest

import (
	"context"

	"github.com/tdhoang/marketgraph/internal/graph"
)

// Call records one statement handed to the fake.
type Call struct {
	Cypher string
	Params map[string]any
}

type reply struct {
	records []graph.Record
	err     error
}

// Fake implements graph.Querier. Queue replies with Expect in the order the
// code under test will run statements; Run pops one reply per call and
// records the call for later assertions. Runs beyond the queued replies
// return no records and no error, matching a statement that touched nothing.
type Fake struct {
	Calls   []Call
	replies []reply
}

func (f *Fake) Expect(records []graph.Record, err error) {
	f.replies = append(f.replies, reply{records: records, err: err})
}

func (f *Fake) Run(_ context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	f.Calls = append(f.Calls, Call{Cypher: cypher, Params: params})
	if len(f.replies) == 0 {
		return nil, nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r.records, r.err
}

// LastCall returns the most recent call, or a zero Call when none were made.
func (f *Fake) LastCall() Call {
	if len(f.Calls) == 0 {
		return Call{}
	}
	return f.Calls[len(f.Calls)-1]
}
