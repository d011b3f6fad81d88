package loyalty

import "github.com/vegasq/flightlens/store"

// MilesPolicy selects which ledger entries count toward lifetime miles for
// tier qualification. The warehouse leaves this ambiguous, so it is a
// configuration choice rather than a fixed rule.
type MilesPolicy int

const (
	// EarnOnly counts only EARN entries.
	EarnOnly MilesPolicy = iota

	// EarnNet counts EARN entries minus the magnitude of REDEEM entries.
	EarnNet

	// AllEntries sums the full signed ledger, ADJUST included.
	AllEntries
)

// String returns the policy's configuration name.
func (p MilesPolicy) String() string {
	switch p {
	case EarnOnly:
		return "earn-only"
	case EarnNet:
		return "earn-net"
	case AllEntries:
		return "all-entries"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a configuration name back to a MilesPolicy.
func ParsePolicy(name string) (MilesPolicy, bool) {
	switch name {
	case "earn-only":
		return EarnOnly, true
	case "earn-net":
		return EarnNet, true
	case "all-entries":
		return AllEntries, true
	default:
		return EarnOnly, false
	}
}

// LifetimeMiles computes an account's lifetime miles from its ledger under
// the given policy.
func LifetimeMiles(txns []store.MilesTransaction, policy MilesPolicy) int64 {
	var total int64
	for _, txn := range txns {
		switch policy {
		case EarnOnly:
			if txn.Type == store.TxnEarn {
				total += txn.DeltaMiles
			}
		case EarnNet:
			if txn.Type == store.TxnEarn || txn.Type == store.TxnRedeem {
				total += txn.DeltaMiles
			}
		case AllEntries:
			total += txn.DeltaMiles
		}
	}
	return total
}
