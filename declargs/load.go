package declargs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a schema from a .yaml, .yml or .toml file. The returned
// Config still has to go through New to be validated.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".toml":
		return LoadTOML(f)
	default:
		return Config{}, fmt.Errorf("declargs: unsupported schema file extension %q", ext)
	}
}

// LoadYAML reads a schema of the form
//
//	name: helloworld
//	options:
//	  foo:
//	    alias: [f]
//	    description: This is foo
//	  say-hello:
//	    type: boolean
//	    default: false
//	    description: Say hello
//
// Options keep their document order.
func LoadYAML(r io.Reader) (Config, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.New("declargs: empty schema document")
		}
		return Config{}, fmt.Errorf("declargs: decode yaml schema: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return Config{}, fmt.Errorf("declargs: line %d: schema must be a mapping", root.Line)
	}

	var cfg Config
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "name":
			if err := node.Decode(&cfg.Name); err != nil {
				return Config{}, fmt.Errorf("declargs: line %d: name: %w", node.Line, err)
			}
		case "options":
			options, err := yamlOptions(node)
			if err != nil {
				return Config{}, err
			}
			cfg.Options = options
		default:
			return Config{}, fmt.Errorf("declargs: line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return cfg, nil
}

// yamlOptions decodes the options mapping in document order
func yamlOptions(node *yaml.Node) ([]Option, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("declargs: line %d: options must be a mapping", node.Line)
	}

	options := make([]Option, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i].Value, node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("declargs: line %d: option %s must be a mapping", body.Line, name)
		}

		var fo fileOption
		for j := 0; j+1 < len(body.Content); j += 2 {
			field, val := body.Content[j], body.Content[j+1]

			var err error
			switch field.Value {
			case "alias":
				err = val.Decode(&fo.Alias)
			case "type":
				err = val.Decode(&fo.Type)
			case "default":
				err = val.Decode(&fo.Default)
			case "description":
				err = val.Decode(&fo.Description)
			default:
				err = fmt.Errorf("unknown key %q", field.Value)
			}
			if err != nil {
				return nil, fmt.Errorf("declargs: line %d: option %s: %w", field.Line, name, err)
			}
		}

		fo.Name = name
		opt, err := fo.option()
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}

// LoadTOML reads a schema of the form
//
//	name = "helloworld"
//
//	[[options]]
//	name = "foo"
//	alias = ["f"]
//	description = "This is foo"
//
// Options keep their table order. Unknown keys are rejected.
func LoadTOML(r io.Reader) (Config, error) {
	var schema struct {
		Name    string       `toml:"name"`
		Options []fileOption `toml:"options"`
	}

	md, err := toml.NewDecoder(r).Decode(&schema)
	if err != nil {
		return Config{}, fmt.Errorf("declargs: decode toml schema: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("declargs: unknown key %q", undecoded[0].String())
	}

	cfg := Config{
		Name:    schema.Name,
		Options: make([]Option, 0, len(schema.Options)),
	}
	for _, fo := range schema.Options {
		opt, err := fo.option()
		if err != nil {
			return Config{}, err
		}
		cfg.Options = append(cfg.Options, opt)
	}
	return cfg, nil
}

// fileOption is the on-disk shape of an Option
type fileOption struct {
	Name        string   `toml:"name"`
	Alias       []string `toml:"alias"`
	Type        string   `toml:"type"`
	Default     any      `toml:"default"`
	Description string   `toml:"description"`
}

func (fo fileOption) option() (Option, error) {
	def, err := defaultValue(fo.Default)
	if err != nil {
		return Option{}, newConfigError(ErrorTypeInvalidDefault, fo.Name,
			"Invalid default for option %s: %v", fo.Name, err)
	}
	return Option{
		Name:        fo.Name,
		Alias:       fo.Alias,
		Type:        Type(fo.Type),
		Default:     def,
		Description: fo.Description,
	}, nil
}

// defaultValue maps a decoded scalar to a Value; nil means no default
func defaultValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	default:
		return Value{}, fmt.Errorf("unsupported value of type %T", raw)
	}
}
