package networks

import "encoding/json"

type GenericNetworkConfig struct {
	Name               string   `json:"name"`
	AlternativeNames   []string `json:"alternative_names"`
	ChainID            uint64   `json:"chain_id"`
	NativeTokenSymbol  string   `json:"native_token_symbol"`
	NativeTokenDecimal int64    `json:"native_token_decimal"`
}

// GenericNetwork is a Network built from a plain config. The newer built-in
// chains wrap it and user-defined networks loaded from disk use it directly.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() int64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(gn.config)
}
