package usecase

import (
	"errors"
	"math"

	"github.com/holiman/uint256"
)

// maxLedgerValue is the widest amount, height or counter the store can hold
// (signed 64-bit SQL integers).
const maxLedgerValue = math.MaxInt64

var errArithmeticOverflow = errors.New("ledger: arithmetic overflow")

func checkedAdd(a, b uint64) (uint64, error) {
	sum, overflow := new(uint256.Int).AddOverflow(uint256.NewInt(a), uint256.NewInt(b))
	if overflow || !sum.IsUint64() || sum.Uint64() > maxLedgerValue {
		return 0, errArithmeticOverflow
	}
	return sum.Uint64(), nil
}

// royaltyShare returns floor(price * percentage / 100).
func royaltyShare(price, percentage uint64) (uint64, error) {
	share := new(uint256.Int).Mul(uint256.NewInt(price), uint256.NewInt(percentage))
	share.Div(share, uint256.NewInt(100))
	if !share.IsUint64() || share.Uint64() > maxLedgerValue {
		return 0, errArithmeticOverflow
	}
	return share.Uint64(), nil
}
