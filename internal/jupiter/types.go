package jupiter

import "encoding/json"

// Price captures the fields read from the price API's per-mint objects.
type Price struct {
	Price string `json:"price"`
}

// Order is the Ultra API's quote plus the material needed to execute it.
type Order struct {
	InAmount    string `json:"inAmount"`
	OutAmount   string `json:"outAmount"`
	SwapType    string `json:"swapType"`
	SlippageBps int    `json:"slippageBps"`
	Transaction string `json:"transaction"` // base64, unsigned
	RequestID   string `json:"requestId"`

	// Raw is the undecoded response body, kept for diagnostics when the
	// payload is missing fields we depend on.
	Raw json.RawMessage `json:"-"`
}

// ExecuteResult reports what the aggregator did with the signed transaction.
// A Status other than "Success" arrives inside an HTTP 200 and is not an
// HTTP-layer error.
type ExecuteResult struct {
	Status       string `json:"status"`
	Signature    string `json:"signature"`
	InputAmount  string `json:"inputAmountResult"`
	OutputAmount string `json:"outputAmountResult"`
	Error        string `json:"error"`

	Raw json.RawMessage `json:"-"`
}

// StatusSuccess is the sentinel the execute endpoint reports for a landed swap.
const StatusSuccess = "Success"

// Succeeded reports whether the swap landed.
func (r *ExecuteResult) Succeeded() bool { return r.Status == StatusSuccess }
