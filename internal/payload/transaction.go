package payload

// Transaction is the basic balance notification after any account
// movement.
type Transaction struct {
	ProductName string
	Balance     float64
	BankName    string
}

func (t Transaction) Payload() Payload {
	return Payload{
		"product_name":   t.ProductName,
		"saving_balance": amount(t.Balance),
		"bank_name":      t.BankName,
		"type":           TypeTransaction,
	}
}

// Deposit confirms a credit to a savings product.
type Deposit struct {
	Phone        string
	Amount       float64
	Balance      float64
	ProductName  string
	BankName     string
	CustomerName string
}

func (d Deposit) Payload() Payload {
	p := Payload{
		"phone":            d.Phone,
		"transaction_type": "DEPOSIT",
		"amount":           amount(d.Amount),
		"product_name":     d.ProductName,
		"saving_balance":   amount(d.Balance),
		"bank_name":        d.BankName,
		"type":             TypeDeposit,
	}
	if d.CustomerName != "" {
		p["customer_name"] = d.CustomerName
	}
	return p
}

// Withdrawal confirms a debit. A zero fee omits the fee_amount field.
type Withdrawal struct {
	Phone        string
	Amount       float64
	Balance      float64
	ProductName  string
	BankName     string
	FeeAmount    float64
	CustomerName string
}

func (w Withdrawal) Payload() Payload {
	p := Payload{
		"phone":            w.Phone,
		"transaction_type": "WITHDRAWAL",
		"amount":           amount(w.Amount),
		"product_name":     w.ProductName,
		"saving_balance":   amount(w.Balance),
		"bank_name":        w.BankName,
		"type":             TypeWithdrawal,
	}
	if w.FeeAmount > 0 {
		p["fee_amount"] = amount(w.FeeAmount)
	}
	if w.CustomerName != "" {
		p["customer_name"] = w.CustomerName
	}
	return p
}

// Transfer confirms a movement between two products.
type Transfer struct {
	Amount        float64
	DebitProduct  string
	CreditProduct string
	DebitBalance  float64
	CreditBalance float64
	BankName      string
	RecipientName string
}

func (t Transfer) Payload() Payload {
	p := Payload{
		"transaction_type":      "TRANSFER",
		"amount":                amount(t.Amount),
		"debit_product_name":    t.DebitProduct,
		"credit_product_name":   t.CreditProduct,
		"saving_balance":        amount(t.DebitBalance),
		"credit_saving_balance": amount(t.CreditBalance),
		"bank_name":             t.BankName,
		"type":                  TypeTransfer,
	}
	if t.RecipientName != "" {
		p["recipient_name"] = t.RecipientName
	}
	return p
}
