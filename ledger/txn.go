// ledger/txn.go
package ledger

import (
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// txnPrefix domain-separates transaction signatures from other signed data.
var txnPrefix = []byte("TX")

// PaymentTxn is a value transfer from Sender to Receiver.
type PaymentTxn struct {
	Type        string `json:"type"`
	Sender      string `json:"snd"`
	Receiver    string `json:"rcv"`
	Amount      uint64 `json:"amt"`
	Fee         uint64 `json:"fee"`
	FirstRound  uint64 `json:"fv"`
	LastRound   uint64 `json:"lv"`
	GenesisID   string `json:"gen,omitempty"`
	GenesisHash string `json:"gh,omitempty"`
	Note        []byte `json:"note,omitempty"`
}

// SignedTxn is a PaymentTxn plus the sender's signature over its canonical
// encoding.
type SignedTxn struct {
	Txn       PaymentTxn `json:"txn"`
	Signature string     `json:"sig"`
	TxID      string     `json:"txid"`
}

// NewPaymentTxn builds an unsigned payment using suggested parameters. The
// validity window spans 1000 rounds from the suggested first round.
func NewPaymentTxn(sender, receiver string, amount uint64, params *TxnParams, note []byte) *PaymentTxn {
	fee := params.Fee
	if fee == 0 {
		fee = MinFee
	}
	return &PaymentTxn{
		Type:        "pay",
		Sender:      sender,
		Receiver:    receiver,
		Amount:      amount,
		Fee:         fee,
		FirstRound:  params.FirstRound,
		LastRound:   params.FirstRound + 1000,
		GenesisID:   params.GenesisID,
		GenesisHash: params.GenesisHash,
		Note:        note,
	}
}

// MinFee is the flat minimum transaction fee in microunits.
const MinFee uint64 = 1000

// Sign produces a SignedTxn for account, which must match the transaction
// sender.
func (t *PaymentTxn) Sign(account *Account) (*SignedTxn, error) {
	if account.Address != t.Sender {
		return nil, fmt.Errorf("signing account %s does not match sender %s", account.Address, t.Sender)
	}
	canonical, err := t.canonicalBytes()
	if err != nil {
		return nil, err
	}
	sig := account.Sign(canonical)
	return &SignedTxn{
		Txn:       *t,
		Signature: base64.StdEncoding.EncodeToString(sig),
		TxID:      txIDFromCanonical(canonical),
	}, nil
}

func (t *PaymentTxn) canonicalBytes() ([]byte, error) {
	body, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}
	return append(append([]byte{}, txnPrefix...), body...), nil
}

func txIDFromCanonical(canonical []byte) string {
	digest := sha512.Sum512_256(canonical)
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(digest[:])
}
