package networks

import "encoding/json"

var EthereumMainnet Network = NewEthereumMainnet()

type ethereumMainnet struct{}

func NewEthereumMainnet() *ethereumMainnet {
	return &ethereumMainnet{}
}

func (self *ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self *ethereumMainnet) GetChainID() uint64 {
	return 1
}

func (self *ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum", "eth"}
}

func (self *ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *ethereumMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *ethereumMainnet) MarshalJSON() ([]byte, error) {
	return json.Marshal(GenericNetworkConfig{
		Name:               self.GetName(),
		AlternativeNames:   self.GetAlternativeNames(),
		ChainID:            self.GetChainID(),
		NativeTokenSymbol:  self.GetNativeTokenSymbol(),
		NativeTokenDecimal: self.GetNativeTokenDecimal(),
	})
}
