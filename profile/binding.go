package profile

import (
	"fmt"

	"github.com/lixenwraith/padkit/sample"
	"github.com/lixenwraith/padkit/signal"
)

// Spec is the serialized form of a binding, shared by the JSON default
// profiles and the YAML preference store. Field presence depends on
// kind; unknown kinds fail decoding and are skipped by callers.
type Spec struct {
	Kind      string  `yaml:"kind" json:"kind"`
	Key       string  `yaml:"key,omitempty" json:"key,omitempty"`
	Mouse     string  `yaml:"mouse,omitempty" json:"mouse,omitempty"`
	Pad       string  `yaml:"pad,omitempty" json:"pad,omitempty"`
	Stick     string  `yaml:"stick,omitempty" json:"stick,omitempty"`
	Component string  `yaml:"component,omitempty" json:"component,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Negative  bool    `yaml:"negative,omitempty" json:"negative,omitempty"`
	Up        *Spec   `yaml:"up,omitempty" json:"up,omitempty"`
	Left      *Spec   `yaml:"left,omitempty" json:"left,omitempty"`
	Down      *Spec   `yaml:"down,omitempty" json:"down,omitempty"`
	Right     *Spec   `yaml:"right,omitempty" json:"right,omitempty"`
}

// Decode converts a Spec into a Binding.
func (s Spec) Decode() (signal.Binding, error) {
	switch s.Kind {
	case "key":
		k, ok := sample.KeyByName(s.Key)
		if !ok {
			return signal.Binding{}, fmt.Errorf("unknown key name %q", s.Key)
		}
		return signal.KeyBinding(k), nil

	case "mouse":
		b, ok := sample.MouseByName(s.Mouse)
		if !ok {
			return signal.Binding{}, fmt.Errorf("unknown mouse button %q", s.Mouse)
		}
		return signal.MouseBinding(b), nil

	case "pad":
		b, ok := sample.PadByName(s.Pad)
		if !ok {
			return signal.Binding{}, fmt.Errorf("unknown pad button %q", s.Pad)
		}
		return signal.PadBinding(b), nil

	case "pad_axis":
		st, err := stickByName(s.Stick)
		if err != nil {
			return signal.Binding{}, err
		}
		return signal.PadAxisBinding(st), nil

	case "pad_axis_button":
		st, err := stickByName(s.Stick)
		if err != nil {
			return signal.Binding{}, err
		}
		c, err := componentByName(s.Component)
		if err != nil {
			return signal.Binding{}, err
		}
		return signal.PadAxisButton(st, c, s.Threshold, s.Negative), nil

	case "four_way":
		if s.Up == nil || s.Left == nil || s.Down == nil || s.Right == nil {
			return signal.Binding{}, fmt.Errorf("four_way needs up/left/down/right")
		}
		up, err := s.Up.Decode()
		if err != nil {
			return signal.Binding{}, fmt.Errorf("up: %w", err)
		}
		left, err := s.Left.Decode()
		if err != nil {
			return signal.Binding{}, fmt.Errorf("left: %w", err)
		}
		down, err := s.Down.Decode()
		if err != nil {
			return signal.Binding{}, fmt.Errorf("down: %w", err)
		}
		right, err := s.Right.Decode()
		if err != nil {
			return signal.Binding{}, fmt.Errorf("right: %w", err)
		}
		return signal.FourWayBinding(up, left, down, right), nil
	}
	return signal.Binding{}, fmt.Errorf("unknown binding kind %q", s.Kind)
}

// Encode converts a Binding into its serialized Spec.
func Encode(b signal.Binding) (Spec, error) {
	switch b.Kind {
	case signal.BindKey:
		return Spec{Kind: "key", Key: sample.KeyName(b.Key)}, nil
	case signal.BindMouseButton:
		return Spec{Kind: "mouse", Mouse: sample.MouseName(b.Mouse)}, nil
	case signal.BindPadButton:
		return Spec{Kind: "pad", Pad: sample.PadName(b.Pad)}, nil
	case signal.BindPadAxis:
		return Spec{Kind: "pad_axis", Stick: stickName(b.Stick)}, nil
	case signal.BindPadAxisButton:
		return Spec{
			Kind:      "pad_axis_button",
			Stick:     stickName(b.Stick),
			Component: componentName(b.Component),
			Threshold: b.Threshold,
			Negative:  b.Negative,
		}, nil
	case signal.BindFourWay:
		if b.Four == nil {
			return Spec{}, fmt.Errorf("four_way binding without sub-bindings")
		}
		up, err := Encode(b.Four.Up)
		if err != nil {
			return Spec{}, err
		}
		left, err := Encode(b.Four.Left)
		if err != nil {
			return Spec{}, err
		}
		down, err := Encode(b.Four.Down)
		if err != nil {
			return Spec{}, err
		}
		right, err := Encode(b.Four.Right)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: "four_way", Up: &up, Left: &left, Down: &down, Right: &right}, nil
	}
	return Spec{}, fmt.Errorf("unknown binding kind %d", b.Kind)
}

func stickByName(name string) (signal.Stick, error) {
	switch name {
	case "left":
		return signal.StickLeft, nil
	case "right":
		return signal.StickRight, nil
	}
	return 0, fmt.Errorf("unknown stick %q", name)
}

func stickName(s signal.Stick) string {
	if s == signal.StickRight {
		return "right"
	}
	return "left"
}

func componentByName(name string) (signal.Component, error) {
	switch name {
	case "x":
		return signal.ComponentX, nil
	case "y":
		return signal.ComponentY, nil
	}
	return 0, fmt.Errorf("unknown component %q", name)
}

func componentName(c signal.Component) string {
	if c == signal.ComponentY {
		return "y"
	}
	return "x"
}
