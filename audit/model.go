// audit/model.go
package audit

import "time"

// AccessLog records one broker admission decision.
type AccessLog struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	WalletAddress string    `json:"wallet_address"`
	City          string    `json:"city"`
	AccessGranted bool      `json:"access_granted"`
	Reason        string    `json:"reason,omitempty"`
	TxnID         string    `json:"txn_id,omitempty"`
}
