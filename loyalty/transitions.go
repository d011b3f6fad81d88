package loyalty

import (
	"fmt"
	"sort"

	"github.com/vegasq/flightlens/store"
)

// Transition is one cell of the current×qualified tier cross-tabulation:
// how many accounts hold Current in the warehouse while their lifetime
// activity qualifies them for Qualified.
type Transition struct {
	Current   store.TierName
	Qualified store.TierName
	Accounts  int64
}

// Transitions cross-tabulates every loyalty account's stored tier against
// the tier its lifetime miles qualify it for under the scheme and policy.
//
// The result holds every observed pair with a non-zero count — matches
// included, not just mismatches — ordered by the scheme's tier ordinals
// (current first, then qualified). A stored tier the scheme does not
// define fails with ErrUnknownTier.
func Transitions(snap *store.Snapshot, scheme *Scheme, policy MilesPolicy) ([]Transition, error) {
	type pair struct{ current, qualified store.TierName }
	counts := make(map[pair]int64)

	for i := range snap.LoyaltyAccounts {
		account := snap.LoyaltyAccounts[i]
		if _, ok := scheme.Ordinal(account.Tier); !ok {
			return nil, fmt.Errorf("%w: account %d stores tier %q", ErrUnknownTier, account.ID, account.Tier)
		}

		lifetime := LifetimeMiles(snap.TransactionsForAccount(account.ID), policy)
		counts[pair{current: account.Tier, qualified: scheme.Qualify(lifetime)}]++
	}

	result := make([]Transition, 0, len(counts))
	for p, n := range counts {
		result = append(result, Transition{Current: p.current, Qualified: p.qualified, Accounts: n})
	}
	sort.Slice(result, func(i, j int) bool {
		ci, _ := scheme.Ordinal(result[i].Current)
		cj, _ := scheme.Ordinal(result[j].Current)
		if ci != cj {
			return ci < cj
		}
		qi, _ := scheme.Ordinal(result[i].Qualified)
		qj, _ := scheme.Ordinal(result[j].Qualified)
		return qi < qj
	})

	return result, nil
}

// Movement classifies a transition by comparing tier ordinals: positive
// for an upgrade candidate, negative for a downgrade candidate, zero when
// the stored tier matches the qualified tier.
func Movement(scheme *Scheme, t Transition) (int, error) {
	current, ok := scheme.Ordinal(t.Current)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, t.Current)
	}
	qualified, ok := scheme.Ordinal(t.Qualified)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, t.Qualified)
	}

	switch {
	case qualified > current:
		return 1, nil
	case qualified < current:
		return -1, nil
	default:
		return 0, nil
	}
}
