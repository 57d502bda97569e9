package config

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// ToFoundryConfig maps the configuration onto foundry.toml. Secrets and
// endpoints are emitted as ${VAR} references so the file is safe to commit.
func ToFoundryConfig(cfg *config.ToolchainConfiguration) *config.FoundryConfig {
	rpcRef := EnvReference(config.EnvRPCURL)

	fc := &config.FoundryConfig{
		Profile: map[string]config.ProfileConfig{
			"default": {
				SrcPath:     "src",
				OutPath:     "out",
				LibPaths:    []string{"lib"},
				SolcVersion: cfg.Solidity,
			},
		},
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]config.EtherscanConfig),
	}

	for _, name := range cfg.NetworkNames() {
		network := cfg.Networks[name]
		if network.IsRemote() {
			fc.RpcEndpoints[name] = rpcRef
			fc.Etherscan[name] = config.EtherscanConfig{Key: EnvReference(config.EnvAPIKey)}
			continue
		}
		// The local network forks the remote endpoint
		profile := fc.Profile["default"]
		profile.EthRpcUrl = rpcRef
		fc.Profile["default"] = profile
	}

	return fc
}

// EncodeFoundryTOML writes cfg as foundry.toml
func EncodeFoundryTOML(w io.Writer, cfg *config.ToolchainConfiguration) error {
	if err := toml.NewEncoder(w).Encode(ToFoundryConfig(cfg)); err != nil {
		return fmt.Errorf("failed to encode foundry.toml: %w", err)
	}
	return nil
}

// FoundryEnvVars returns the environment variables referenced by fc, sorted
func FoundryEnvVars(fc *config.FoundryConfig) []string {
	seen := make(map[string]bool)
	add := func(raw string) {
		if name, ok := DetectEnvVar(raw); ok {
			seen[name] = true
		}
	}

	for _, raw := range fc.RpcEndpoints {
		add(raw)
	}
	for _, ec := range fc.Etherscan {
		add(ec.Key)
		add(ec.URL)
	}
	for _, profile := range fc.Profile {
		add(profile.EthRpcUrl)
	}

	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}
