package render

import (
	"bytes"
	"encoding/json"

	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/plate"
)

// jsonPlate is the wire shape of a plate dump.
type jsonPlate struct {
	Kind         string            `json:"kind"`
	Latitude     float64           `json:"latitude"`
	Extent       float64           `json:"extent"`
	Instructions []jsonInstruction `json:"instructions"`
}

// jsonInstruction tags each instruction with its concrete type so
// consumers can switch without guessing from field names.
type jsonInstruction struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RenderJSON dumps the instruction stream as indented JSON. Instruction
// order is preserved, so the dump is as deterministic as the composition.
func RenderJSON(p *plate.Plate) ([]byte, error) {
	out := jsonPlate{
		Kind:         string(p.Kind),
		Latitude:     p.Latitude,
		Extent:       p.Extent,
		Instructions: make([]jsonInstruction, 0, len(p.Instructions)),
	}

	for _, ins := range p.Instructions {
		name, err := instructionName(ins)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(ins)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to encode %s", name)
		}
		out.Instructions = append(out.Instructions, jsonInstruction{Type: name, Data: data})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to encode plate")
	}
	return buf.Bytes(), nil
}

// DecodeJSON reverses RenderJSON, mostly for tooling and tests.
func DecodeJSON(data []byte) (*plate.Plate, error) {
	var in jsonPlate
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode plate")
	}

	p := &plate.Plate{
		Kind:     plate.Kind(in.Kind),
		Latitude: in.Latitude,
		Extent:   in.Extent,
	}
	for _, ji := range in.Instructions {
		ins, err := decodeInstruction(ji)
		if err != nil {
			return nil, err
		}
		p.Instructions = append(p.Instructions, ins)
	}
	return p, nil
}

func instructionName(ins plate.Instruction) (string, error) {
	switch ins.(type) {
	case plate.StrokeCircle:
		return "stroke_circle", nil
	case plate.StrokeArc:
		return "stroke_arc", nil
	case plate.StrokeLine:
		return "stroke_line", nil
	case plate.StrokePolyline:
		return "stroke_polyline", nil
	case plate.FillCircle:
		return "fill_circle", nil
	case plate.Label:
		return "label", nil
	default:
		return "", errors.New(errors.ErrCodeRenderBackend, "unknown instruction type %T", ins)
	}
}

func decodeInstruction(ji jsonInstruction) (plate.Instruction, error) {
	switch ji.Type {
	case "stroke_circle":
		var v plate.StrokeCircle
		if err := json.Unmarshal(ji.Data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode %s", ji.Type)
		}
		return v, nil
	case "stroke_arc":
		var v plate.StrokeArc
		if err := json.Unmarshal(ji.Data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode %s", ji.Type)
		}
		return v, nil
	case "stroke_line":
		var v plate.StrokeLine
		if err := json.Unmarshal(ji.Data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode %s", ji.Type)
		}
		return v, nil
	case "stroke_polyline":
		var v plate.StrokePolyline
		if err := json.Unmarshal(ji.Data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode %s", ji.Type)
		}
		return v, nil
	case "fill_circle":
		var v plate.FillCircle
		if err := json.Unmarshal(ji.Data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode %s", ji.Type)
		}
		return v, nil
	case "label":
		var v plate.Label
		if err := json.Unmarshal(ji.Data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to decode %s", ji.Type)
		}
		return v, nil
	default:
		return nil, errors.New(errors.ErrCodeRenderBackend, "unknown instruction type %q", ji.Type)
	}
}
