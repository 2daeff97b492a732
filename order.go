package carteira

// Order is a recorded purchase of Quantity shares of Ticker on Date.
//
// Value is derived from the reference price of the day, never entered.
type Order struct {
	Code     Code
	Ticker   Ticker
	Date     Date
	Value    Money
	Quantity Quantity
	Wallet   Code
}

func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("code", o.Code)
	w.Append("ticker", o.Ticker.Symbol())
	w.Append("date", o.Date)
	w.Append("quantity", o.Quantity)
	w.Append("value", o.Value)
	w.Optional("wallet", o.Wallet)
	return w.MarshalJSON()
}
