package networks

var BaseMainnet Network = NewBaseMainnet()

type baseMainnet struct {
	*GenericNetwork
}

func NewBaseMainnet() *baseMainnet {
	return &baseMainnet{
		GenericNetwork: NewGenericNetwork(GenericNetworkConfig{
			Name:               "base",
			AlternativeNames:   []string{},
			ChainID:            8453,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
		}),
	}
}
