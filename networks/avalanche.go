package networks

var Avalanche Network = NewAvalanche()

type avalanche struct {
	*GenericNetwork
}

func NewAvalanche() *avalanche {
	return &avalanche{
		GenericNetwork: NewGenericNetwork(GenericNetworkConfig{
			Name:               "avalanche",
			AlternativeNames:   []string{"avax"},
			ChainID:            43114,
			NativeTokenSymbol:  "AVAX",
			NativeTokenDecimal: 18,
		}),
	}
}
