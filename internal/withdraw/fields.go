package withdraw

// Field names an editable form input.
type Field uint8

const (
	FieldAmount Field = iota
	FieldPhone
	FieldFullName
	FieldBankAccount
	FieldPaymentAddress
)

var fieldLabels = [...]string{"Amount (points)", "Phone number", "Full name", "Account / IBAN", "InstaPay address"}

func (f Field) String() string {
	if int(f) < len(fieldLabels) {
		return fieldLabels[f]
	}
	return "unknown"
}

// FieldsFor lists the inputs shown for a method kind, amount first.
func FieldsFor(k Kind) []Field {
	switch k {
	case KindWallet:
		return []Field{FieldAmount, FieldPhone, FieldFullName}
	case KindInstaPay:
		return []Field{FieldAmount, FieldPaymentAddress}
	case KindBank:
		return []Field{FieldAmount, FieldBankAccount, FieldFullName}
	}
	return []Field{FieldAmount}
}

// Value returns a pointer to the input backing field.
func (f *Form) Value(field Field) *string {
	switch field {
	case FieldPhone:
		return &f.Phone
	case FieldFullName:
		return &f.FullName
	case FieldBankAccount:
		return &f.BankAccount
	case FieldPaymentAddress:
		return &f.PaymentAddress
	}
	return &f.Amount
}
