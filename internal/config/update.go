package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as a commented YAML document.
func Marshal(cfg *Config) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	addScalar(doc, "version", strconv.Itoa(cfg.Version), "!!int",
		"parkwatch config")
	addScalar(doc, "endpoint", cfg.Endpoint, "!!str",
		"Dashboard data URL. ${VAR} is expanded from the environment.")
	addScalar(doc, "interval", cfg.Interval.String(), "!!str",
		"Time between fetches (minimum 500ms).")
	addScalar(doc, "timeout", cfg.Timeout.String(), "!!str",
		"Give up on a single fetch after this long.")
	addScalar(doc, "locale", cfg.Locale, "!!str",
		"Display language and date format: en or it.")
	addScalar(doc, "discard_stale", strconv.FormatBool(cfg.DiscardStale), "!!bool",
		"Drop a response that arrives after a newer one.")

	metrics := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, m := range cfg.Metrics {
		item := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
		addScalar(item, "key", m.Key, "!!str", "")
		addScalar(item, "label", m.Label, "!!str", "")
		metrics.Content = append(metrics.Content, item)
	}
	addNode(doc, "metrics", metrics, "Summary cards, in display order.")

	logNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	addScalar(logNode, "file", cfg.Log.File, "!!str", "")
	addScalar(logNode, "level", cfg.Log.Level, "!!str", "")
	addNode(doc, "log", logNode, "Diagnostics go to a file; empty discards them.")

	outNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	addScalar(outNode, "color", cfg.Output.Color, "!!str", "auto, always or never")
	addNode(doc, "output", outNode, "")

	root := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}}
	return encode(root)
}

// WriteFile writes cfg to path. An existing file is only replaced when
// force is set.
func WriteFile(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SetValue sets a top-level scalar key in the config file at configPath.
// It preserves the existing YAML structure and comments. A missing key is
// appended.
func SetValue(configPath, key, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse as yaml.Node to preserve structure
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	valueNode := findMapValue(docNode, key)
	switch {
	case valueNode == nil:
		addScalar(docNode, key, value, "!!str", "")
	case valueNode.Kind != yaml.ScalarNode:
		return fmt.Errorf("'%s' is not a plain value", key)
	default:
		valueNode.Value = value
		valueNode.Tag = "!!str"
		valueNode.Style = 0
	}

	out, err := encode(&root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func encode(root *yaml.Node) ([]byte, error) {
	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()
	return []byte(buf.String()), nil
}

func addScalar(mapping *yaml.Node, key, value, tag, comment string) {
	addNode(mapping, key, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}, comment)
}

func addNode(mapping *yaml.Node, key string, value *yaml.Node, comment string) {
	keyNode := &yaml.Node{
		Kind:        yaml.ScalarNode,
		Tag:         "!!str",
		Value:       key,
		HeadComment: comment,
	}
	mapping.Content = append(mapping.Content, keyNode, value)
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
