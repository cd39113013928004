package currency

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Parser converts between a human-readable amount string and its base-unit
// (wei) value.
type Parser interface {
	Parse(string) (*big.Int, error)
	Print(*big.Int) string
}

const (
	// ETH represents the native ethereum currency.
	ETH              = "ETH"
	ethPlacesToRound = 6
)

var parsers map[string]Parser

func init() {
	parsers = make(map[string]Parser)

	ethMultiplier := decimal.NewFromFloat(params.Ether)
	parsers[ETH] = ethParser{multiplier: ethMultiplier, placesToRound: ethPlacesToRound}
}

// IsSupported checks if there is a parser registered for the currency
// represented by the given string.
func IsSupported(symbol string) bool {
	p, ok := parsers[symbol]
	return ok && p != nil
}

// NewParser returns the currency parser. It returns nil for an unsupported
// currency, so check with IsSupported before use.
func NewParser(symbol string) Parser {
	return parsers[symbol]
}

type ethParser struct {
	multiplier    decimal.Decimal
	placesToRound int32
}

// Parse parses the given amount string in Ether and returns the equivalent
// amount in Wei. It accepts decimal values down to 1e-18, the minimum unit
// of the currency, without loss of accuracy.
func (p ethParser) Parse(input string) (*big.Int, error) {
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return nil, errors.Wrap(err, "invalid decimal string")
	}

	amountBaseUnit := amount.Mul(p.multiplier)
	if amountBaseUnit.LessThan(decimal.NewFromInt(1)) {
		return nil, errors.New("amount is too small, should be larger than 1e-18")
	}
	return amountBaseUnit.BigInt(), nil
}

// Print converts the input in Wei to Ether, rounded off to 6 decimal places
// for display.
func (p ethParser) Print(input *big.Int) string {
	amount := decimal.NewFromBigInt(input, 0)
	return amount.Div(p.multiplier).StringFixedBank(p.placesToRound)
}
