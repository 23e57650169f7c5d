package payment

// Intent is an external payment-authorization handle created prior to
// capturing funds. The client secret is handed to the frontend to complete
// authorization; it is never persisted.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

// Details is the raw payment input supplied at checkout. It must never be
// stored or logged as-is; Sanitize it first.
type Details struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	ExpMonth   int    `json:"expMonth,omitempty"`
	ExpYear    int    `json:"expYear,omitempty"`
	Holder     string `json:"holder,omitempty"`
}

// Methods that settle outside the gateway and need no intent.
const MethodCashOnDelivery = "cod"

// RequiresAuthorization reports whether checkout must create a gateway intent
// for this payment method.
func (d Details) RequiresAuthorization() bool {
	return d.Method != MethodCashOnDelivery
}

// Sanitized is the storable slice of payment details: card number reduced to
// its last 4 digits, CVV dropped entirely.
type Sanitized struct {
	Method    string `json:"method"`
	CardLast4 string `json:"cardLast4,omitempty"`
	ExpMonth  int    `json:"expMonth,omitempty"`
	ExpYear   int    `json:"expYear,omitempty"`
	Holder    string `json:"holder,omitempty"`
}
