package domain

// ForkInstance represents a local anvil node forked from a remote network
type ForkInstance struct {
	Network     string `json:"network"`
	Port        string `json:"port"`
	Host        string `json:"host"`
	ChainID     string `json:"chainId,omitempty"`
	ForkURL     string `json:"forkUrl"`
	BlockNumber uint64 `json:"blockNumber,omitempty"` // 0 forks from latest
}

// RPCURL returns the local endpoint the fork listens on
func (f ForkInstance) RPCURL() string {
	host := f.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return "http://" + host + ":" + f.Port
}
