package config

// Option is a value/label pair offered by the search form selects.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BrasiliaRegions is the list of regions listings can be filed under.
var BrasiliaRegions = []Option{
	{Value: "asa-sul", Label: "Asa Sul"},
	{Value: "asa-norte", Label: "Asa Norte"},
	{Value: "lago-sul", Label: "Lago Sul"},
	{Value: "lago-norte", Label: "Lago Norte"},
	{Value: "sudoeste", Label: "Sudoeste"},
	{Value: "noroeste", Label: "Noroeste"},
	{Value: "aguas-claras", Label: "Águas Claras"},
	{Value: "guara", Label: "Guará"},
	{Value: "taguatinga", Label: "Taguatinga"},
	{Value: "vicente-pires", Label: "Vicente Pires"},
}

// PropertyTypes is the list of supported listing types.
var PropertyTypes = []Option{
	{Value: "apartamento", Label: "Apartamento"},
	{Value: "casa", Label: "Casa"},
	{Value: "cobertura", Label: "Cobertura"},
	{Value: "kitnet", Label: "Kitnet"},
	{Value: "lote", Label: "Lote"},
	{Value: "sala-comercial", Label: "Sala Comercial"},
}

// GetRegionValues returns the region values accepted by the search filter.
func GetRegionValues() []string {
	values := make([]string, len(BrasiliaRegions))
	for i, region := range BrasiliaRegions {
		values[i] = region.Value
	}
	return values
}

// GetRegionByValue returns a region option by value.
func GetRegionByValue(value string) *Option {
	for _, region := range BrasiliaRegions {
		if region.Value == value {
			return &region
		}
	}
	return nil
}
