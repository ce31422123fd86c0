package market

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/vantagelabs/vantage/internal/logging"
	"github.com/vantagelabs/vantage/pkg/models"
)

//go:embed leaders.schema.json
var leaderSchemaJSON []byte

// Load returns a catalog with the builtin data, overlaid by the custom
// leaders file at path when one is configured. A missing or invalid
// file is logged and the builtin data is used unchanged; analysis never
// fails because of bad overlay data.
func Load(path string, logger *logging.Logger) *Catalog {
	cat := Builtin()
	if path == "" {
		return cat
	}

	custom, err := loadCustomLeaders(path)
	if err != nil {
		logger.Warn("ignoring custom market data", "path", path, "error", err)
		return cat
	}

	merged := make(map[string][]models.MarketLeader, len(builtinLeaders)+len(custom))
	for name, leaders := range builtinLeaders {
		merged[name] = leaders
	}
	for name, leaders := range custom {
		merged[name] = leaders
	}
	logger.Debug("loaded custom market data", "path", path, "categories", len(custom))
	return &Catalog{leaders: merged}
}

func loadCustomLeaders(path string) (map[string][]models.MarketLeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validateLeaderData(data); err != nil {
		return nil, err
	}

	var custom map[string][]models.MarketLeader
	if err := json.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("decoding leader data: %w", err)
	}
	return custom, nil
}

func validateLeaderData(data []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(leaderSchemaJSON))
	if err != nil {
		return fmt.Errorf("parsing embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("leaders.schema.json", schemaDoc); err != nil {
		return fmt.Errorf("registering schema: %w", err)
	}
	sch, err := compiler.Compile("leaders.schema.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing leader data: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("leader data does not match schema: %w", err)
	}
	return nil
}
