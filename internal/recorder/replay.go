package recorder

import (
	"context"
	"fmt"

	"github.com/ewassef/LinqToTwitter/internal/account"
)

// ReplayStep is one record re-run through the response mapper.
type ReplayStep struct {
	Record  Record
	Account account.Account
}

// Replay re-runs every record of a trace through the matching mapper in
// sequence order and returns the mapped entities.
//
// Replay is read-only with respect to the store and performs no I/O beyond
// reading records: the recorded response bodies are the only input, so two
// replays of the same trace always produce the same entities.
func (s *Store) Replay(ctx context.Context, trace string) ([]ReplayStep, error) {
	records, err := s.ReadTrace(ctx, trace)
	if err != nil {
		return nil, err
	}

	steps := make([]ReplayStep, 0, len(records))
	for _, rec := range records {
		acct, err := replayRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("replay trace %s seq %d: %w", trace, rec.Seq, err)
		}
		steps = append(steps, ReplayStep{Record: rec, Account: acct})
	}

	return steps, nil
}

func replayRecord(rec Record) (account.Account, error) {
	switch rec.Kind {
	case KindQuery:
		qt, err := account.ParseQueryType(rec.Variant)
		if err != nil {
			return account.Account{}, err
		}
		return account.ProcessResults(qt, rec.ResponseJSON)
	case KindAction:
		// EndSession is the only recordable action.
		if rec.Variant != account.ActionEndSession.String() {
			return account.Account{}, fmt.Errorf("unknown recorded action %q", rec.Variant)
		}
		return account.ProcessActionResult[account.Account](account.ActionEndSession, rec.ResponseJSON)
	default:
		return account.Account{}, fmt.Errorf("unknown record kind %q", rec.Kind)
	}
}
