package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	KindList          = "list"
	KindColumnList    = "column_list"
	KindCrossProduct  = "cross_product"
	KindRandom        = "random"
	KindCSV           = "csv"
	KindCustom        = "custom"
	KindBestCandidate = "best_candidate"
)

// DefaultCandidateFactor sizes the best-candidate pool when num_candidates
// is not given: num_candidates = DefaultCandidateFactor * num_samples.
const DefaultCandidateFactor = 20

// Spec is one sampling specification, usually loaded from a yaml file.
// Constants and Parameters keep the declaration order of the document;
// that order becomes the column order of the generated table.
type Spec struct {
	Type            string
	NumSamples      int
	NumCandidates   int
	Seed            *int64
	PreviousSamples string
	CSVFile         string
	RowHeaders      bool
	Function        string
	Module          string
	Args            map[string]any
	Constants       []Constant
	Parameters      []Parameter

	// ColumnBlock holds the raw tabular text of a column_list spec,
	// where "parameters" is a literal block instead of a mapping.
	ColumnBlock string
}

type Constant struct {
	Name  string
	Value string
}

// Parameter is one declared column. Values is set for enumerating kinds
// (list, cross_product); Min/Max/Weight for numeric kinds (random,
// best_candidate). HasMin/HasMax record whether the bounds were present.
type Parameter struct {
	Name   string
	Values []string
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
	Weight float64
}

// ColumnNames returns constants then parameters, in declaration order.
func (s *Spec) ColumnNames() []string {
	names := make([]string, 0, len(s.Constants)+len(s.Parameters))
	for _, c := range s.Constants {
		names = append(names, c.Name)
	}
	for _, p := range s.Parameters {
		names = append(names, p.Name)
	}
	return names
}

func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &SchemaError{Key: "sampler", Reason: "sampler spec must be a mapping"}
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch key {
		case "type":
			s.Type = val.Value
		case "num_samples":
			if err := val.Decode(&s.NumSamples); err != nil {
				return &SchemaError{Key: key, Reason: "must be an integer"}
			}
		case "num_candidates":
			if err := val.Decode(&s.NumCandidates); err != nil {
				return &SchemaError{Key: key, Reason: "must be an integer"}
			}
		case "seed":
			var seed int64
			if err := val.Decode(&seed); err != nil {
				return &SchemaError{Key: key, Reason: "must be an integer"}
			}
			s.Seed = &seed
		case "previous_samples":
			s.PreviousSamples = val.Value
		case "csv_file":
			s.CSVFile = val.Value
		case "row_headers":
			if err := val.Decode(&s.RowHeaders); err != nil {
				return &SchemaError{Key: key, Reason: "must be a boolean"}
			}
		case "function":
			s.Function = val.Value
		case "module":
			s.Module = val.Value
		case "args":
			if err := val.Decode(&s.Args); err != nil {
				return &SchemaError{Key: key, Reason: "must be a mapping"}
			}
		case "constants":
			if err := s.decodeConstants(val); err != nil {
				return err
			}
		case "parameters":
			if val.Kind == yaml.ScalarNode {
				s.ColumnBlock = val.Value
				continue
			}
			if err := s.decodeParameters(val); err != nil {
				return err
			}
		default:
			return &SchemaError{Key: key, Reason: "unrecognized key"}
		}
	}
	return nil
}

func (s *Spec) decodeConstants(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &SchemaError{Key: "constants", Reason: "must be a mapping of name to value"}
	}
	for i := 0; i < len(node.Content); i += 2 {
		name := node.Content[i].Value
		val := node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return &SchemaError{Key: "constants." + name, Reason: "value must be a scalar"}
		}
		s.Constants = append(s.Constants, Constant{Name: name, Value: val.Value})
	}
	return nil
}

func (s *Spec) decodeParameters(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &SchemaError{Key: "parameters", Reason: "must be a mapping or a literal block"}
	}
	for i := 0; i < len(node.Content); i += 2 {
		name := node.Content[i].Value
		val := node.Content[i+1]
		p := Parameter{Name: name, Weight: 1.0}

		switch val.Kind {
		case yaml.SequenceNode:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return &SchemaError{Key: "parameters." + name, Reason: "values must be scalars"}
				}
				p.Values = append(p.Values, item.Value)
			}
		case yaml.MappingNode:
			for j := 0; j < len(val.Content); j += 2 {
				field := val.Content[j].Value
				fv := val.Content[j+1]
				switch field {
				case "min":
					if err := fv.Decode(&p.Min); err != nil {
						return &SchemaError{Key: "parameters." + name + ".min", Reason: "must be numeric"}
					}
					p.HasMin = true
				case "max":
					if err := fv.Decode(&p.Max); err != nil {
						return &SchemaError{Key: "parameters." + name + ".max", Reason: "must be numeric"}
					}
					p.HasMax = true
				case "weight":
					if err := fv.Decode(&p.Weight); err != nil {
						return &SchemaError{Key: "parameters." + name + ".weight", Reason: "must be numeric"}
					}
				default:
					return &SchemaError{Key: "parameters." + name + "." + field, Reason: "unrecognized key"}
				}
			}
		default:
			return &SchemaError{Key: "parameters." + name, Reason: "must be a value sequence or a min/max mapping"}
		}

		s.Parameters = append(s.Parameters, p)
	}
	return nil
}

// Parse decodes a sampling spec document. The spec may be the whole
// document or nested under a top-level "sampler" key.
func Parse(data []byte) (*Spec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse sampler spec: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, &SchemaError{Key: "sampler", Reason: "empty document"}
	}

	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		for i := 0; i < len(node.Content); i += 2 {
			if node.Content[i].Value == "sampler" {
				node = node.Content[i+1]
				break
			}
		}
	}

	s := &Spec{}
	if err := node.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Save(path string, s *Spec) error {
	data, err := yaml.Marshal(s.asNode())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// asNode rebuilds the yaml document form, keeping declaration order.
func (s *Spec) asNode() *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, val *yaml.Node) {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key}, val)
	}
	scalar := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
	}

	add("type", scalar(s.Type))
	if s.NumSamples > 0 {
		add("num_samples", scalar(fmt.Sprintf("%d", s.NumSamples)))
	}
	if s.NumCandidates > 0 {
		add("num_candidates", scalar(fmt.Sprintf("%d", s.NumCandidates)))
	}
	if s.Seed != nil {
		add("seed", scalar(fmt.Sprintf("%d", *s.Seed)))
	}
	if s.PreviousSamples != "" {
		add("previous_samples", scalar(s.PreviousSamples))
	}
	if s.CSVFile != "" {
		add("csv_file", scalar(s.CSVFile))
	}
	if s.Function != "" {
		add("function", scalar(s.Function))
	}
	if len(s.Constants) > 0 {
		consts := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range s.Constants {
			consts.Content = append(consts.Content, scalar(c.Name), scalar(c.Value))
		}
		add("constants", consts)
	}
	if s.ColumnBlock != "" {
		add("parameters", &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.LiteralStyle, Value: s.ColumnBlock})
	} else if len(s.Parameters) > 0 {
		params := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range s.Parameters {
			var val *yaml.Node
			if p.Values != nil {
				val = &yaml.Node{Kind: yaml.SequenceNode}
				for _, v := range p.Values {
					val.Content = append(val.Content, scalar(v))
				}
			} else {
				val = &yaml.Node{Kind: yaml.MappingNode}
				val.Content = append(val.Content,
					scalar("min"), scalar(fmt.Sprintf("%g", p.Min)),
					scalar("max"), scalar(fmt.Sprintf("%g", p.Max)))
				if p.Weight != 1.0 {
					val.Content = append(val.Content,
						scalar("weight"), scalar(fmt.Sprintf("%g", p.Weight)))
				}
			}
			params.Content = append(params.Content, scalar(p.Name), val)
		}
		add("parameters", params)
	}

	return doc
}
