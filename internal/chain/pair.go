package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"poolcalc/internal/model"
)

// Uniswap V2 pair storage layout: token0 at slot 6, token1 at slot 7, and
// both uint112 reserves packed with a uint32 timestamp into slot 8:
//
//	[ 32 bits timestamp | 112 bits reserve1 | 112 bits reserve0 ]
const (
	slotToken0   = 6
	slotToken1   = 7
	slotReserves = 8
)

// PairReader derives calculator inputs from a V2-style pair contract.
type PairReader struct {
	client *Client
	logger *zap.Logger
}

// PairQuery selects the pair, block, and unit scaling for a snapshot.
// Token0 is treated as the base asset and token1 as the quote asset unless
// Invert is set. Block 0 means latest.
type PairQuery struct {
	Pair          common.Address
	Block         uint64
	BaseDecimals  int
	QuoteDecimals int
	Invert        bool
}

// NewPairReader builds a PairReader with its dependencies.
func NewPairReader(client *Client, logger *zap.Logger) *PairReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairReader{client: client, logger: logger}
}

// Snapshot reads the pair's tokens and reserves at the requested block and
// derives the constant-product inputs: price = quote/base and
// liquidity = sqrt(base*quote).
func (r *PairReader) Snapshot(ctx context.Context, query PairQuery) (model.PairSnapshot, error) {
	blockNumber := query.Block
	if blockNumber == 0 {
		latest, err := r.client.LatestBlockNumber(ctx)
		if err != nil {
			return model.PairSnapshot{}, fmt.Errorf("latest block: %w", err)
		}
		blockNumber = latest
	}
	block := new(big.Int).SetUint64(blockNumber)

	chainID, err := r.client.ChainID(ctx)
	if err != nil {
		return model.PairSnapshot{}, fmt.Errorf("chain id: %w", err)
	}

	token0, err := r.readAddressSlot(ctx, query.Pair, block, slotToken0)
	if err != nil {
		return model.PairSnapshot{}, err
	}
	token1, err := r.readAddressSlot(ctx, query.Pair, block, slotToken1)
	if err != nil {
		return model.PairSnapshot{}, err
	}

	raw, err := r.readSlot(ctx, query.Pair, block, slotReserves)
	if err != nil {
		return model.PairSnapshot{}, err
	}
	reserve0, reserve1 := unpackReserves(raw)

	r.logger.Debug("pair storage read",
		zap.String("pair", query.Pair.Hex()),
		zap.Uint64("block", blockNumber),
		zap.String("token0", token0.Hex()),
		zap.String("token1", token1.Hex()),
		zap.String("reserve0", reserve0.String()),
		zap.String("reserve1", reserve1.String()),
	)

	if reserve0.Sign() == 0 || reserve1.Sign() == 0 {
		return model.PairSnapshot{}, ErrEmptyReserves
	}

	rawBase, rawQuote := reserve0, reserve1
	if query.Invert {
		rawBase, rawQuote = reserve1, reserve0
	}
	base := scaleReserve(rawBase, query.BaseDecimals)
	quote := scaleReserve(rawQuote, query.QuoteDecimals)

	return model.PairSnapshot{
		ChainID:      chainID.Uint64(),
		PairAddress:  query.Pair.Hex(),
		Token0:       token0.Hex(),
		Token1:       token1.Hex(),
		BlockNumber:  blockNumber,
		Reserve0:     reserve0.String(),
		Reserve1:     reserve1.String(),
		BaseReserve:  base,
		QuoteReserve: quote,
		Price:        quote / base,
		Liquidity:    math.Sqrt(base * quote),
	}, nil
}

func (r *PairReader) readSlot(ctx context.Context, pair common.Address, block *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	raw, err := r.client.StorageAt(ctx, pair, key, block)
	if err != nil {
		return nil, fmt.Errorf("storage slot %d of %s at block %s: %w", slot, pair.Hex(), block.String(), err)
	}
	return raw, nil
}

func (r *PairReader) readAddressSlot(ctx context.Context, pair common.Address, block *big.Int, slot uint64) (common.Address, error) {
	raw, err := r.readSlot(ctx, pair, block, slot)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(raw), nil
}

// unpackReserves splits the two uint112 reserves out of the 32-byte storage
// word, treating the word as a big-endian 256-bit value.
func unpackReserves(raw []byte) (reserve0, reserve1 *big.Int) {
	word := new(big.Int).SetBytes(raw)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))

	reserve0 = new(big.Int).And(word, mask112)
	reserve1 = new(big.Int).And(new(big.Int).Rsh(word, 112), mask112)
	return reserve0, reserve1
}

// scaleReserve converts a raw token amount to a unit amount using the
// token's decimals. Precision loss past float64's 53 bits is acceptable
// here: the calculator operates on IEEE-754 doubles throughout.
func scaleReserve(raw *big.Int, decimals int) float64 {
	value, _ := new(big.Float).SetInt(raw).Float64()
	return value / math.Pow(10, float64(decimals))
}
