// Package withdraw models the wallet screen. Requests are validated against
// the balance and kept in memory; nothing is transferred.
package withdraw

import "github.com/shopspring/decimal"

// Kind groups methods by the details they need.
type Kind string

const (
	KindWallet   Kind = "wallet"
	KindInstaPay Kind = "instapay"
	KindBank     Kind = "bank"
)

// Method is one payout option.
type Method struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Kind  Kind
}

// ExchangeRate is the EGP value of one point.
var ExchangeRate = decimal.New(1, -1)

var methods = []Method{
	{ID: "voda", Name: "Vodafone Cash", Icon: "📱", Color: "red", Kind: KindWallet},
	{ID: "etisalat", Name: "Etisalat Cash", Icon: "🟢", Color: "green", Kind: KindWallet},
	{ID: "orange", Name: "Orange Cash", Icon: "🟠", Color: "orange", Kind: KindWallet},
	{ID: "instapay", Name: "InstaPay", Icon: "🏦", Color: "purple", Kind: KindInstaPay},
	{ID: "nbe", Name: "National Bank of Egypt", Icon: "🏦", Color: "darkgreen", Kind: KindBank},
	{ID: "misr", Name: "Banque Misr", Icon: "🏦", Color: "darkred", Kind: KindBank},
	{ID: "qnb", Name: "QNB", Icon: "🏦", Color: "blue", Kind: KindBank},
}

// Methods returns the catalog in display order.
func Methods() []Method {
	return append([]Method(nil), methods...)
}

// MethodByID looks a method up by its identifier.
func MethodByID(id string) (Method, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}

// Quote converts points to EGP.
func Quote(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).Mul(ExchangeRate)
}
