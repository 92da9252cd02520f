package networks

var BSCMainnet Network = NewBSCMainnet()

type bscMainnet struct {
	*GenericNetwork
}

func NewBSCMainnet() *bscMainnet {
	return &bscMainnet{
		GenericNetwork: NewGenericNetwork(GenericNetworkConfig{
			Name:               "bsc",
			AlternativeNames:   []string{"bnb"},
			ChainID:            56,
			NativeTokenSymbol:  "BNB",
			NativeTokenDecimal: 18,
		}),
	}
}
