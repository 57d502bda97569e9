package domain

// NetworkStatus represents the probed status of a configured network
type NetworkStatus struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"` // "remote" or "fork"
	RPCURL      string `json:"rpcUrl,omitempty"`
	ChainID     uint64 `json:"chainId,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Explorer    string `json:"explorer,omitempty"`
	Error       error  `json:"-"`
}

// ExplorerURL returns the block explorer for well-known chains
func ExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 17000:
		return "https://holesky.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	default:
		return ""
	}
}
