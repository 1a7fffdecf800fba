package parse

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/turbot/pipe-fittings/error_helpers"
)

// ConfigData contains the undecoded HCL body of a config block, together with the block type
// the object which owns the block must decode it into the appropriate struct using ParseConfig
type ConfigData struct {
	Body  hcl.Body
	Range hcl.Range
	// Id is the label of the block, e.g. the source type "google_drive"
	Id string
	// ConfigType is the kind of block, e.g. "source"
	ConfigType string
}

func NewConfigData(body hcl.Body, declRange hcl.Range, id, configType string) *ConfigData {
	return &ConfigData{
		Body:       body,
		Range:      declRange,
		Id:         id,
		ConfigType: configType,
	}
}

// ConfigDataFromHcl parses raw HCL (the contents of a block body) into a ConfigData
func ConfigDataFromHcl(hclBytes []byte, filename, id, configType string) (*ConfigData, error) {
	file, diags := hclsyntax.ParseConfig(hclBytes, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError(fmt.Sprintf("failed to parse %s config", configType), diags)
	}
	return NewConfigData(file.Body, file.Body.(*hclsyntax.Body).SrcRange, id, configType), nil
}
