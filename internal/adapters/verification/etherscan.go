package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
	"golang.org/x/time/rate"
)

// DefaultEtherscanAPI is the multichain (v2) Etherscan endpoint
const DefaultEtherscanAPI = "https://api.etherscan.io/v2/api"

// zeroAddress is queried because every chain answers a balance lookup for it
const zeroAddress = "0x0000000000000000000000000000000000000000"

// EtherscanChecker validates Etherscan API keys
type EtherscanChecker struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewEtherscanChecker creates a checker against the public Etherscan API
func NewEtherscanChecker() *EtherscanChecker {
	return newEtherscanChecker(DefaultEtherscanAPI)
}

func newEtherscanChecker(baseURL string) *EtherscanChecker {
	return &EtherscanChecker{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Free tier allows 5 requests per second
		limiter: rate.NewLimiter(5, 5),
	}
}

type etherscanResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// CheckAPIKey performs a cheap authenticated call for chainID. A rejected
// key yields domain.ErrInvalidValue.
func (c *EtherscanChecker) CheckAPIKey(ctx context.Context, chainID uint64, apiKey string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	query := url.Values{}
	query.Set("chainid", strconv.FormatUint(chainID, 10))
	query.Set("module", "account")
	query.Set("action", "balance")
	query.Set("address", zeroAddress)
	query.Set("tag", "latest")
	query.Set("apikey", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the key, keep it out of the error
		return fmt.Errorf("etherscan request failed: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("etherscan returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var parsed etherscanResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to parse etherscan response: %w", err)
	}

	if parsed.Status == "1" {
		return nil
	}

	var result string
	_ = json.Unmarshal(parsed.Result, &result)
	if strings.Contains(strings.ToLower(result), "api key") {
		return fmt.Errorf("%w: etherscan rejected the API key: %s", domain.ErrInvalidValue, result)
	}
	return fmt.Errorf("etherscan error: %s %s", parsed.Message, result)
}

func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// Ensure the adapter implements the interface
var _ usecase.VerifierChecker = (*EtherscanChecker)(nil)
