package profile

import (
	"fmt"
	"log"

	"github.com/tidwall/gjson"

	"github.com/lixenwraith/padkit/signal"
)

// ParseJSON reads a declarative default-binding profile:
//
//	{
//	  "buttons": [
//	    {"id": 0, "remap": true, "bindings": [
//	      {"kind": "key", "key": "enter"},
//	      {"kind": "pad", "pad": "a"}
//	    ]}
//	  ],
//	  "axes": [
//	    {"id": 0, "bindings": [{"kind": "pad_axis", "stick": "left"}]}
//	  ]
//	}
//
// A binding that cannot be mapped to a valid kind is skipped with a
// logged diagnostic; the remainder of the profile still loads. An
// entry without a numeric id is skipped the same way.
func ParseJSON(data []byte, logger *log.Logger) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("profile: invalid JSON")
	}
	root := gjson.ParseBytes(data)

	var defaults []Default
	defaults = appendEntries(defaults, root.Get("buttons"), KindButton, logger)
	defaults = appendEntries(defaults, root.Get("axes"), KindAxis, logger)
	return New(defaults...), nil
}

func appendEntries(dst []Default, list gjson.Result, kind Kind, logger *log.Logger) []Default {
	list.ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id")
		if !id.Exists() || id.Type != gjson.Number {
			logf(logger, "profile: entry without numeric id skipped: %s", entry.Raw)
			return true
		}

		var bindings []signal.Binding
		entry.Get("bindings").ForEach(func(_, raw gjson.Result) bool {
			b, err := specFromJSON(raw).Decode()
			if err != nil {
				logf(logger, "profile: id %d: binding skipped: %v", id.Int(), err)
				return true
			}
			bindings = append(bindings, b)
			return true
		})

		dst = append(dst, Default{
			ID:         signal.ID(id.Int()),
			Kind:       kind,
			Bindings:   bindings,
			AllowRemap: entry.Get("remap").Bool(),
		})
		return true
	})
	return dst
}

func specFromJSON(r gjson.Result) Spec {
	s := Spec{
		Kind:      r.Get("kind").String(),
		Key:       r.Get("key").String(),
		Mouse:     r.Get("mouse").String(),
		Pad:       r.Get("pad").String(),
		Stick:     r.Get("stick").String(),
		Component: r.Get("component").String(),
		Threshold: r.Get("threshold").Float(),
		Negative:  r.Get("negative").Bool(),
	}
	for _, dir := range []struct {
		name string
		dst  **Spec
	}{
		{"up", &s.Up}, {"left", &s.Left}, {"down", &s.Down}, {"right", &s.Right},
	} {
		if sub := r.Get(dir.name); sub.IsObject() {
			d := specFromJSON(sub)
			*dir.dst = &d
		}
	}
	return s
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
