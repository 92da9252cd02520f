package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Str("component", "networks").Logger()

// Insert more Network implementations here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	ArbitrumMainnet,
	OptimismMainnet,
	BaseMainnet,
	Matic,
	BSCMainnet,
	Avalanche,
}

var globalSupportedNetworks = newSupportedNetworks()
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks     map[string]Network
	networksByID map[uint64]Network
	ordered      []Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range n.networks {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d is not supported", id)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *networks {
	result := networks{
		networks:     map[string]Network{},
		networksByID: map[uint64]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
		result.ordered = append(result.ordered, n)
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}

	// load custom networks from ~/.routelens/networks/
	customNetworks, err := loadCustomNetworks()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load custom networks, continuing with built-in networks")
		return &result
	}

	for _, n := range customNetworks {
		if _, found := result.networks[n.GetName()]; found {
			log.Warn().Str("network", n.GetName()).Msg("custom network shadows a built-in name")
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
		result.ordered = append(result.ordered, n)
	}
	return &result
}

func loadCustomNetworks() ([]Network, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	customNetworksDir := filepath.Join(usr.HomeDir, ".routelens", "networks")
	files, err := filepath.Glob(filepath.Join(customNetworksDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in ~/.routelens/networks: %w", err)
	}

	networks := []Network{}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("skipping unparsable custom network")
			continue
		}

		networks = append(networks, network)
	}

	return networks, nil
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if networkConfig.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	if networkConfig.ChainID == 0 {
		return nil, fmt.Errorf("network config has no chain id")
	}

	return NewGenericNetwork(networkConfig), nil
}

// AddNetwork registers network for this process and stores its config to
// ~/.routelens/networks/ so it survives restarts. An existing network with
// the same name or chain id is replaced.
func AddNetwork(network Network) error {
	globalSupportedNetworks.networks[network.GetName()] = network
	globalSupportedNetworks.networksByID[network.GetChainID()] = network

	ordered := globalSupportedNetworks.ordered[:0]
	for _, n := range globalSupportedNetworks.ordered {
		if n.GetName() != network.GetName() {
			ordered = append(ordered, n)
		}
	}
	globalSupportedNetworks.ordered = append(ordered, network)

	for _, an := range network.GetAlternativeNames() {
		globalSupportedNetworks.networks[an] = network
	}

	usr, err := user.Current()
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	customNetworksDir := filepath.Join(usr.HomeDir, ".routelens", "networks")
	if err = os.MkdirAll(customNetworksDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", customNetworksDir, err)
	}

	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}

	err = os.WriteFile(filepath.Join(customNetworksDir, fmt.Sprintf("%s.json", network.GetName())), content, 0644)
	if err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}

	return nil
}

// RegistryID is the network identifier the token registry keys its snapshot
// by, the decimal chain id.
func RegistryID(n Network) string {
	return strconv.FormatUint(n.GetChainID(), 10)
}

// GetSupportedNetworks lists built-in networks followed by custom ones, in
// registration order.
func GetSupportedNetworks() []Network {
	return append([]Network{}, globalSupportedNetworks.ordered...)
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}
