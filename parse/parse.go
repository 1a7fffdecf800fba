package parse

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/turbot/go-kit/helpers"
	"github.com/turbot/pipe-fittings/error_helpers"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ParseConfig decodes the config data into a new instance of T and validates it
// T must be a pointer to a struct with hcl tags
func ParseConfig[T Config](configData *ConfigData) (T, error) {
	// create a new instance of the target struct
	target := NewInstance[T]()

	// verify the block label matches the target type
	id := target.Identifier()
	if id != configData.Id {
		return target, fmt.Errorf("invalid %s type '%s': expected '%s'", configData.ConfigType, configData.Id, id)
	}

	diags := DecodeBody(configData.Body, target)
	if diags.HasErrors() {
		slog.Warn("failed to decode config", "config type", configData.ConfigType, "id", configData.Id, "range", configData.Range)
		return target, error_helpers.HclDiagsToError(fmt.Sprintf("failed to decode %s config", configData.ConfigType), diags)
	}

	if err := target.Validate(); err != nil {
		return target, fmt.Errorf("invalid %s config '%s': %w", configData.ConfigType, configData.Id, err)
	}
	return target, nil
}

// DecodeBody decodes an HCL body into target using an empty eval context
// gohcl panics on some invalid targets - this is converted into a diagnostic
func DecodeBody(body hcl.Body, target any) (diags hcl.Diagnostics) {
	defer func() {
		if r := recover(); r != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "unexpected error decoding config",
				Detail:   helpers.ToError(r).Error()})
		}
	}()

	return gohcl.DecodeBody(body, EvalContext(), target)
}

// EvalContext returns the (empty) eval context used for all config decoding
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}
}
