package networks

import "encoding/json"

var OptimismMainnet Network = NewOptimismMainnet()

type optimismMainnet struct{}

func NewOptimismMainnet() *optimismMainnet {
	return &optimismMainnet{}
}

func (self *optimismMainnet) GetName() string {
	return "optimism"
}

func (self *optimismMainnet) GetChainID() uint64 {
	return 10
}

func (self *optimismMainnet) GetAlternativeNames() []string {
	return []string{}
}

func (self *optimismMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *optimismMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *optimismMainnet) MarshalJSON() ([]byte, error) {
	return json.Marshal(GenericNetworkConfig{
		Name:               self.GetName(),
		AlternativeNames:   self.GetAlternativeNames(),
		ChainID:            self.GetChainID(),
		NativeTokenSymbol:  self.GetNativeTokenSymbol(),
		NativeTokenDecimal: self.GetNativeTokenDecimal(),
	})
}
