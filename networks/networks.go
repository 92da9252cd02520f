package networks

import (
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the process-wide selected network. When nothing
// selected one yet it settles on the default (mainnet).
func CurrentNetwork() Network {
	if cachedNetwork != nil {
		return cachedNetwork
	}

	SetNetwork("")

	return cachedNetwork
}

func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	var err error
	cachedNetwork, err = GetNetwork(networkStr)
	if err != nil {
		if networkStr != "" {
			log.Warn().Str("network", networkStr).Msg("unknown network, falling back to mainnet")
		}
		cachedNetwork = EthereumMainnet
		return
	}
	log.Debug().Str("network", cachedNetwork.GetName()).Msg("network selected")
}
