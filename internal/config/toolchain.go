package config

import (
	"crypto/ecdsa"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

var solidityVersionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Build constructs the configuration straight from env. Missing values are
// carried through as nil; nothing is defaulted or validated.
func Build(env Env) *config.ToolchainConfiguration {
	// One read feeds both the remote endpoint and the fork target
	rpcURL := lookup(env, config.EnvRPCURL)

	return &config.ToolchainConfiguration{
		Solidity: config.SolidityVersion,
		Networks: map[string]config.NetworkDescriptor{
			config.NetworkSepolia: {
				URL:      rpcURL,
				Accounts: []*string{lookup(env, config.EnvPrivateKey)},
			},
			config.NetworkHardhat: {
				Forking: &config.ForkingDescriptor{URL: rpcURL},
			},
		},
		Etherscan: config.EtherscanDescriptor{
			APIKey: lookup(env, config.EnvAPIKey),
		},
	}
}

// Load builds the configuration and validates it, returning a
// *domain.ValidationError that names every missing or malformed key.
func Load(env Env) (*config.ToolchainConfiguration, error) {
	cfg := Build(env)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a built configuration. It returns nil or a
// *domain.ValidationError.
func Validate(cfg *config.ToolchainConfiguration) error {
	var problems []domain.FieldError

	if !solidityVersionPattern.MatchString(cfg.Solidity) {
		problems = append(problems, domain.FieldError{
			Field: "solidity",
			Err:   fmt.Errorf("%w: %q is not a MAJOR.MINOR.PATCH version", domain.ErrInvalidValue, cfg.Solidity),
		})
	}

	remote := cfg.Remote()
	if err := validateRPCURL(remote.URL); err != nil {
		problems = append(problems, domain.FieldError{
			Field:  "networks." + config.NetworkSepolia + ".url",
			EnvVar: config.EnvRPCURL,
			Err:    err,
		})
	}

	if !sameValue(remote.URL, cfg.ForkURL()) {
		problems = append(problems, domain.FieldError{
			Field: "networks." + config.NetworkHardhat + ".forking.url",
			Err:   fmt.Errorf("%w: fork target differs from networks.%s.url", domain.ErrNetworkMismatch, config.NetworkSepolia),
		})
	}

	if len(remote.Accounts) != 1 {
		problems = append(problems, domain.FieldError{
			Field:  "networks." + config.NetworkSepolia + ".accounts",
			EnvVar: config.EnvPrivateKey,
			Err:    fmt.Errorf("%w: expected exactly one account, got %d", domain.ErrInvalidValue, len(remote.Accounts)),
		})
	} else if _, err := parsePrivateKey(remote.Accounts[0]); err != nil {
		problems = append(problems, domain.FieldError{
			Field:  "networks." + config.NetworkSepolia + ".accounts[0]",
			EnvVar: config.EnvPrivateKey,
			Err:    err,
		})
	}

	if isBlank(cfg.Etherscan.APIKey) {
		problems = append(problems, domain.FieldError{
			Field:  "etherscan.apiKey",
			EnvVar: config.EnvAPIKey,
			Err:    domain.ErrMissingValue,
		})
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

// SenderAddress derives the account address from the remote network's key
func SenderAddress(cfg *config.ToolchainConfiguration) (common.Address, error) {
	accounts := cfg.Remote().Accounts
	if len(accounts) == 0 {
		return common.Address{}, fmt.Errorf("%s: %w", config.EnvPrivateKey, domain.ErrMissingValue)
	}
	key, err := parsePrivateKey(accounts[0])
	if err != nil {
		return common.Address{}, fmt.Errorf("%s: %w", config.EnvPrivateKey, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func validateRPCURL(raw *string) error {
	if isBlank(raw) {
		return domain.ErrMissingValue
	}
	u, err := url.Parse(*raw)
	if err != nil {
		return fmt.Errorf("%w: not a URL", domain.ErrInvalidValue)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidValue, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", domain.ErrInvalidValue)
	}
	return nil
}

// parsePrivateKey never includes the key in its error
func parsePrivateKey(raw *string) (*ecdsa.PrivateKey, error) {
	if isBlank(raw) {
		return nil, domain.ErrMissingValue
	}
	hexKey := strings.TrimPrefix(strings.TrimSpace(*raw), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not a 32-byte hex secp256k1 key", domain.ErrInvalidValue)
	}
	return key, nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
