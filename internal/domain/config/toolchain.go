package config

import (
	"net/url"
	"sort"
	"strings"
)

// SolidityVersion is the compiler release handed to solc
const SolidityVersion = "0.8.20"

// Network names
const (
	NetworkSepolia = "sepolia"
	NetworkHardhat = "hardhat"
)

// Environment variables the configuration is sourced from
const (
	EnvRPCURL     = "SEPOLIARPC"
	EnvPrivateKey = "PRIVATEKEY"
	EnvAPIKey     = "API_KEY"
)

// ToolchainConfiguration is the object handed to the external
// compile/test/deploy toolchain. A nil pointer means the value was absent
// from the environment; an empty string means it was set but empty.
type ToolchainConfiguration struct {
	Solidity  string                       `json:"solidity" yaml:"solidity"`
	Networks  map[string]NetworkDescriptor `json:"networks" yaml:"networks"`
	Etherscan EtherscanDescriptor          `json:"etherscan" yaml:"etherscan"`
}

// NetworkDescriptor describes either a remote network (URL + accounts) or
// the local simulated network (Forking).
type NetworkDescriptor struct {
	URL      *string            `json:"url,omitempty" yaml:"url,omitempty"`
	Accounts []*string          `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	Forking  *ForkingDescriptor `json:"forking,omitempty" yaml:"forking,omitempty"`
}

// ForkingDescriptor instructs the local network to replay remote state
type ForkingDescriptor struct {
	URL *string `json:"url,omitempty" yaml:"url,omitempty"`
}

// EtherscanDescriptor holds the verification service credential
type EtherscanDescriptor struct {
	APIKey *string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
}

// IsRemote reports whether the descriptor points at a remote RPC endpoint
func (n NetworkDescriptor) IsRemote() bool {
	return n.Forking == nil
}

// Remote returns the sepolia descriptor
func (c *ToolchainConfiguration) Remote() NetworkDescriptor {
	return c.Networks[NetworkSepolia]
}

// Local returns the hardhat descriptor
func (c *ToolchainConfiguration) Local() NetworkDescriptor {
	return c.Networks[NetworkHardhat]
}

// ForkURL returns the fork target of the local network, nil if absent
func (c *ToolchainConfiguration) ForkURL() *string {
	local := c.Local()
	if local.Forking == nil {
		return nil
	}
	return local.Forking.URL
}

// NetworkNames returns the configured network names in sorted order
func (c *ToolchainConfiguration) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Redacted returns a deep copy with key material masked and endpoint paths
// hidden. The receiver is left untouched.
func (c *ToolchainConfiguration) Redacted() *ToolchainConfiguration {
	out := c.clone()
	for name, network := range out.Networks {
		network.URL = redactURLPtr(network.URL)
		if network.Forking != nil {
			network.Forking.URL = redactURLPtr(network.Forking.URL)
		}
		for i, account := range network.Accounts {
			network.Accounts[i] = mask(account)
		}
		out.Networks[name] = network
	}
	out.Etherscan.APIKey = mask(out.Etherscan.APIKey)
	return out
}

func (c *ToolchainConfiguration) clone() *ToolchainConfiguration {
	out := &ToolchainConfiguration{
		Solidity:  c.Solidity,
		Networks:  make(map[string]NetworkDescriptor, len(c.Networks)),
		Etherscan: EtherscanDescriptor{APIKey: copyString(c.Etherscan.APIKey)},
	}
	for name, network := range c.Networks {
		cp := NetworkDescriptor{URL: copyString(network.URL)}
		if network.Accounts != nil {
			cp.Accounts = make([]*string, len(network.Accounts))
			for i, account := range network.Accounts {
				cp.Accounts[i] = copyString(account)
			}
		}
		if network.Forking != nil {
			cp.Forking = &ForkingDescriptor{URL: copyString(network.Forking.URL)}
		}
		out.Networks[name] = cp
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// mask replaces a non-empty secret with a fixed-width placeholder
func mask(s *string) *string {
	if s == nil {
		return nil
	}
	if *s == "" {
		v := ""
		return &v
	}
	masked := strings.Repeat("*", 8)
	return &masked
}

// RedactURL keeps scheme and host and hides userinfo, path and query
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.Repeat("*", 8)
	}
	redacted := u.Scheme + "://" + u.Host
	if u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		redacted += "/***"
	}
	return redacted
}

func redactURLPtr(s *string) *string {
	if s == nil || *s == "" {
		return s
	}
	v := RedactURL(*s)
	return &v
}
