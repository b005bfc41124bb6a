package tuning

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// The tuning document is validated against this schema before
// decoding, so shape mistakes surface as one readable error instead
// of zero-valued config.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "tick_rate_hz": {"type": "integer", "minimum": 0},
    "seed": {"type": "integer"},
    "engine": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "contact_range": {"type": "integer", "minimum": 1},
        "ranged_range": {"type": "integer", "minimum": 1},
        "danger_margin": {"type": "integer", "minimum": 0},
        "downgrade_danger": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["level", "below"],
            "additionalProperties": false,
            "properties": {
              "level": {"type": "integer", "minimum": 1, "maximum": 8},
              "below": {"type": "integer", "minimum": 0}
            }
          }
        },
        "repair_factor": {"type": "number", "exclusiveMinimum": 0, "maximum": 1},
        "repair_threshold": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["terrain", "below"],
            "additionalProperties": false,
            "properties": {
              "terrain": {"enum": ["plain", "swamp", "wall"]},
              "below": {"type": "integer", "minimum": 0}
            }
          }
        },
        "reuse_path": {
          "type": "object",
          "additionalProperties": {"type": "integer", "minimum": 0}
        },
        "spawn_rules": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["max_population", "cost", "parts"],
            "additionalProperties": false,
            "properties": {
              "max_population": {"type": "integer", "minimum": 1},
              "cost": {"type": "integer", "minimum": 0},
              "parts": {
                "type": "array",
                "minItems": 1,
                "items": {"enum": ["work", "carry", "move", "attack", "tough"]}
              }
            }
          }
        }
      }
    },
    "world": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "width": {"type": "integer", "minimum": 1},
        "height": {"type": "integer", "minimum": 1},
        "creep_ttl": {"type": "integer", "minimum": 1},
        "spawn_ticks_per_part": {"type": "integer", "minimum": 1},
        "source_regen_ticks": {"type": "integer", "minimum": 1},
        "road_decay_every": {"type": "integer", "minimum": 1},
        "road_decay_hits": {"type": "integer", "minimum": 1},
        "tower_range": {"type": "integer", "minimum": 1},
        "tower_damage": {"type": "integer", "minimum": 1},
        "tower_cost": {"type": "integer", "minimum": 1}
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("tuning.schema.json", schemaJSON)

// validate checks raw YAML against the schema. The document takes a
// round trip through encoding/json so the validator sees plain JSON
// values.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	return nil
}
