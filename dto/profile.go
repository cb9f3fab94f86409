package dto

// Transaction direction values.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// AssetBalances holds the balance for each of the six fixed account-type
// buckets. The set of categories is closed; every category is always present
// and defaults to zero.
type AssetBalances struct {
	Checking   float64 `json:"checking"`
	Savings    float64 `json:"savings"`
	Investment float64 `json:"investment"`
	Pension    float64 `json:"pension"`
	ISA        float64 `json:"isa"`
	Government float64 `json:"government"`
}

// Transaction is a single line item recovered from a report.
type Transaction struct {
	Date        string  `json:"date"`     // YYYY-MM-DD or YYYY/MM/DD as matched
	Category    string  `json:"category"` // Korean category label, "기타" when unmatched
	Amount      float64 `json:"amount"`   // absolute magnitude in won
	Type        string  `json:"type"`     // TransactionIncome or TransactionExpense
	Description string  `json:"description"`
}

// FinancialProfile is the structured summary extracted from one or more
// financial report documents. Monetary fields are monthly won amounts.
// A zero value in any field means the information was not recovered.
type FinancialProfile struct {
	Income       float64       `json:"income"`
	Expense      float64       `json:"expense"`
	Savings      float64       `json:"savings"`
	CreditScore  int           `json:"credit_score"`
	Assets       AssetBalances `json:"assets"`
	Transactions []Transaction `json:"transactions"`
}

// NewFinancialProfile returns an empty profile with all fields at their
// defaults and a non-nil transaction list.
func NewFinancialProfile() *FinancialProfile {
	return &FinancialProfile{
		Transactions: []Transaction{},
	}
}
