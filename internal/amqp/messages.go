package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ledger/internal/core"
)

// TransactionRecordedType is the AMQP message type of recorded transactions.
const TransactionRecordedType = "transaction.recorded"

// TransactionRecordedMessage announces a transaction accepted by the store.
// Amount travels as decimal text so no precision is lost on the wire.
type TransactionRecordedMessage struct {
	MessageID string    `json:"message_id"`
	Ref       string    `json:"ref"`
	Kind      string    `json:"kind"`
	Date      string    `json:"date"`
	Month     string    `json:"month"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionRecordedMessage creates a message for the stored transaction
func NewTransactionRecordedMessage(ref string, t core.Transaction) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		MessageID: uuid.NewString(),
		Ref:       ref,
		Kind:      t.Kind.String(),
		Date:      t.Date.String(),
		Month:     t.MonthKey().String(),
		Amount:    t.Amount.String(),
		Category:  t.Category,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON creates a message from JSON bytes
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
