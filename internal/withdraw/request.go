package withdraw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"forest-merge/internal/economy"
)

var (
	ErrNoMethod      = errors.New("no withdrawal method selected")
	ErrInvalidAmount = errors.New("amount must be a positive whole number")
	ErrOverBalance   = errors.New("amount exceeds balance")
	ErrMissingField  = errors.New("required field missing")
)

// Status is the lifecycle state of a request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Form holds the wallet screen inputs.
type Form struct {
	MethodID       string
	Amount         string
	Phone          string
	FullName       string
	BankAccount    string
	PaymentAddress string
}

// SelectMethod switches method and clears method-specific fields.
func (f *Form) SelectMethod(id string) {
	f.MethodID = id
	f.Phone = ""
	f.BankAccount = ""
	f.PaymentAddress = ""
}

// Transaction is a recorded withdrawal request.
type Transaction struct {
	ID        string
	Date      time.Time
	Amount    int
	EGPAmount decimal.Decimal
	Method    string
	Status    Status
}

// Validate checks the form against a balance and returns the parsed amount.
func Validate(f Form, balance int) (Method, int, error) {
	m, ok := MethodByID(f.MethodID)
	if !ok {
		return Method{}, 0, ErrNoMethod
	}
	amount, err := strconv.Atoi(strings.TrimSpace(f.Amount))
	if err != nil || amount <= 0 {
		return m, 0, fmt.Errorf("%q: %w", f.Amount, ErrInvalidAmount)
	}
	if amount > balance {
		return m, 0, fmt.Errorf("%d > %d: %w", amount, balance, ErrOverBalance)
	}

	var missing []string
	switch m.Kind {
	case KindWallet:
		missing = blank(missing, "phone", f.Phone)
		missing = blank(missing, "full name", f.FullName)
	case KindInstaPay:
		missing = blank(missing, "payment address", f.PaymentAddress)
	case KindBank:
		missing = blank(missing, "bank account", f.BankAccount)
		missing = blank(missing, "full name", f.FullName)
	}
	if len(missing) > 0 {
		return m, 0, fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrMissingField)
	}
	return m, amount, nil
}

func blank(acc []string, name, v string) []string {
	if strings.TrimSpace(v) == "" {
		return append(acc, name)
	}
	return acc
}

// Desk records withdrawal requests against the shared balance.
type Desk struct {
	store   *economy.Store
	log     *zap.Logger
	now     func() time.Time
	history []Transaction
	nextID  int
}

// NewDesk creates a desk spending from store.
func NewDesk(store *economy.Store, log *zap.Logger) *Desk {
	if log == nil {
		log = zap.NewNop()
	}
	return &Desk{store: store, log: log, now: time.Now, nextID: 9821}
}

// Submit validates the form and spends the amount. The request is recorded
// as pending.
func (d *Desk) Submit(f Form) (Transaction, error) {
	m, amount, err := Validate(f, d.store.Coins())
	if err != nil {
		return Transaction{}, err
	}
	if err := d.store.Spend(amount); err != nil {
		return Transaction{}, fmt.Errorf("reserve points: %w", err)
	}
	tx := Transaction{
		ID:        fmt.Sprintf("TX-%d", d.nextID),
		Date:      d.now(),
		Amount:    amount,
		EGPAmount: Quote(amount),
		Method:    m.Name,
		Status:    StatusPending,
	}
	d.nextID++
	d.history = append([]Transaction{tx}, d.history...)
	d.log.Info("withdrawal requested",
		zap.String("id", tx.ID),
		zap.String("method", m.ID),
		zap.Int("points", amount),
		zap.String("egp", tx.EGPAmount.StringFixed(2)),
	)
	return tx, nil
}

// History returns requests, newest first.
func (d *Desk) History() []Transaction {
	return append([]Transaction(nil), d.history...)
}
