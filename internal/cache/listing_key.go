package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// Listing views are pure over (ledger version, filter version), so the key
// bakes both in: any swipe or filter change moves to a fresh key and a
// stale entry can never be served.
type listingKeyInput struct {
	SessionID     string `json:"session_id"`
	LedgerVersion uint64 `json:"ledger_version"`
	FilterVersion uint64 `json:"filter_version"`
}

func ListingKey(sessionID uuid.UUID, ledgerVersion, filterVersion uint64) string {
	in := listingKeyInput{
		SessionID:     sessionID.String(),
		LedgerVersion: ledgerVersion,
		FilterVersion: filterVersion,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:listing:" + hex.EncodeToString(sum[:])
}
