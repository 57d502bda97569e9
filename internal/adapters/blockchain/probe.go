package blockchain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// Probe implements the ChainProbe interface using ethclient
type Probe struct{}

// NewProbe creates a new chain probe
func NewProbe() *Probe {
	return &Probe{}
}

// Probe dials rpcURL and reads its chain ID and latest block number.
// Returned errors never contain more of rpcURL than its redacted form.
func (p *Probe) Probe(ctx context.Context, rpcURL string) (*usecase.ChainInfo, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", config.RedactURL(rpcURL), scrubURL(err, rpcURL))
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", config.RedactURL(rpcURL), scrubURL(err, rpcURL))
	}

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number from %s: %w", config.RedactURL(rpcURL), scrubURL(err, rpcURL))
	}

	return &usecase.ChainInfo{
		ChainID:     chainID.Uint64(),
		BlockNumber: blockNumber,
	}, nil
}

// scrubURL strips the request URL that net/http attaches to transport
// errors, and masks any other occurrence of rpcURL in the message
func scrubURL(err error, rpcURL string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	if rpcURL != "" && strings.Contains(err.Error(), rpcURL) {
		return errors.New(strings.ReplaceAll(err.Error(), rpcURL, config.RedactURL(rpcURL)))
	}
	return err
}

// Ensure the adapter implements the interface
var _ usecase.ChainProbe = (*Probe)(nil)
