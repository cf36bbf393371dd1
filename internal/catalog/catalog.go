// Package catalog holds the fixed table of tokenized stocks the trader may buy.
package catalog

// USDCMint is the input side of every smoke trade.
const USDCMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

// Entry ties a ticker symbol to its display name and on-chain mint address.
type Entry struct {
	Symbol string
	Name   string
	Mint   string
}

// Stocks lists every tradable xStock. Declared order matters: advisor replies
// are resolved by scanning this slice front to back, first match wins.
var Stocks = []Entry{
	{Symbol: "AAPLx", Name: "Apple", Mint: "XsbEhLAtcf6HdfpFZ5xEMdqW8nfAvcsP5bdudRLJzJp"},
	{Symbol: "TSLAx", Name: "Tesla", Mint: "XsDoVfqeBukxuZHWhdvWHBhgEHjGNst4MLodqsJHzoB"},
	{Symbol: "NVDAx", Name: "NVIDIA", Mint: "Xsc9qvGR1efVDFGLrVsmkzv3qi45LTBjeUKSPmx9qEh"},
	{Symbol: "GOOGLx", Name: "Alphabet", Mint: "XsCPL9dNWBMvFtTmwcCA5v3xWPSMEBCszbQdiLLq6aN"},
	{Symbol: "AMZNx", Name: "Amazon", Mint: "Xs3eBt7uRfJX8QUs4suhyU8p2M6DoUDrJyWBa8LLZsg"},
	{Symbol: "MSFTx", Name: "Microsoft", Mint: "XspzcW1PRtgf6Wj92HCiZdjzKCyFekVD8P5Ueh3dRMX"},
	{Symbol: "METAx", Name: "Meta", Mint: "Xsa62P5mvPszXL1krVUnU5ar38bBSVcWAB6fmPCo5Zu"},
	{Symbol: "SPYx", Name: "S&P 500 ETF", Mint: "XsoCS1TfEyfFhfvj8EtZ528L3CaKBDBRqRapnBbDF2W"},
	{Symbol: "COINx", Name: "Coinbase", Mint: "Xs7ZdzSHLU9ftNJsii5fCeJhoRWSC32SQGzGQtePxNu"},
	{Symbol: "GMEx", Name: "GameStop", Mint: "Xsf9mBktVB9BSU5kf4nHxPq5hCBJ2j2ui3ecFGxPRGc"},
}

// BySymbol returns the entry for the given ticker symbol.
func BySymbol(symbol string) (Entry, bool) {
	for _, e := range Stocks {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Entry{}, false
}

// ByMint returns the entry for the given mint address.
func ByMint(mint string) (Entry, bool) {
	for _, e := range Stocks {
		if e.Mint == mint {
			return e, true
		}
	}
	return Entry{}, false
}

// Symbols returns every ticker symbol in declared order.
func Symbols() []string {
	out := make([]string, len(Stocks))
	for i, e := range Stocks {
		out[i] = e.Symbol
	}
	return out
}
