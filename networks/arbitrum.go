package networks

var ArbitrumMainnet Network = NewArbitrumMainnet()

type arbitrumMainnet struct {
	*GenericNetwork
}

func NewArbitrumMainnet() *arbitrumMainnet {
	return &arbitrumMainnet{
		GenericNetwork: NewGenericNetwork(GenericNetworkConfig{
			Name:               "arbitrum",
			AlternativeNames:   []string{"arb"},
			ChainID:            42161,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
		}),
	}
}
