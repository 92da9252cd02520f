package networks

import "encoding/json"

var Matic Network = NewMatic()

type matic struct{}

func NewMatic() *matic {
	return &matic{}
}

func (self *matic) GetName() string {
	return "matic"
}

func (self *matic) GetChainID() uint64 {
	return 137
}

func (self *matic) GetAlternativeNames() []string {
	return []string{"polygon"}
}

func (self *matic) GetNativeTokenSymbol() string {
	return "MATIC"
}

func (self *matic) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *matic) MarshalJSON() ([]byte, error) {
	return json.Marshal(GenericNetworkConfig{
		Name:               self.GetName(),
		AlternativeNames:   self.GetAlternativeNames(),
		ChainID:            self.GetChainID(),
		NativeTokenSymbol:  self.GetNativeTokenSymbol(),
		NativeTokenDecimal: self.GetNativeTokenDecimal(),
	})
}
