package profile

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/signal"
)

// prefsDoc is the on-disk preference layout. Only remappable ids are
// written; the format is owned by this package and may grow fields.
type prefsDoc struct {
	Buttons []prefEntry `yaml:"buttons,omitempty"`
	Axes    []prefEntry `yaml:"axes,omitempty"`
}

type prefEntry struct {
	ID       int    `yaml:"id"`
	Bindings []Spec `yaml:"bindings"`
}

// SavePrefs writes the current bindings of every remappable id to path.
func SavePrefs(path string, agg *input.Aggregator, t *Table) error {
	var doc prefsDoc

	for _, id := range agg.ButtonIDs() {
		if !t.Remappable(KindButton, id) {
			continue
		}
		b, _ := agg.Button(id)
		entry, err := encodeEntry(int(id), b.Bindings())
		if err != nil {
			return fmt.Errorf("prefs: button %d: %w", id, err)
		}
		doc.Buttons = append(doc.Buttons, entry)
	}
	for _, id := range agg.AxisIDs() {
		if !t.Remappable(KindAxis, id) {
			continue
		}
		ax, _ := agg.Axis(id)
		entry, err := encodeEntry(int(id), ax.Bindings())
		if err != nil {
			return fmt.Errorf("prefs: axis %d: %w", id, err)
		}
		doc.Axes = append(doc.Axes, entry)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("prefs: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write: %w", err)
	}
	return nil
}

// LoadPrefs reads path and fully replaces the bindings for every id
// present in the file, leaving absent ids at their registered defaults.
// Entries for non-remappable or undeclared ids are skipped with a
// diagnostic, as are bindings that fail to decode.
func LoadPrefs(path string, agg *input.Aggregator, t *Table, logger *log.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("prefs: read: %w", err)
	}

	var doc prefsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("prefs: parse: %w", err)
	}

	for _, entry := range doc.Buttons {
		id := signal.ID(entry.ID)
		if !t.Remappable(KindButton, id) {
			logf(logger, "prefs: button %d not remappable, entry ignored", id)
			continue
		}
		agg.RegisterButton(id).SetBindings(decodeSpecs(entry.Bindings, id, logger))
	}
	for _, entry := range doc.Axes {
		id := signal.ID(entry.ID)
		if !t.Remappable(KindAxis, id) {
			logf(logger, "prefs: axis %d not remappable, entry ignored", id)
			continue
		}
		agg.RegisterAxis(id).SetBindings(decodeSpecs(entry.Bindings, id, logger))
	}
	return nil
}

func encodeEntry(id int, bindings []signal.Binding) (prefEntry, error) {
	entry := prefEntry{ID: id}
	for _, b := range bindings {
		s, err := Encode(b)
		if err != nil {
			return prefEntry{}, err
		}
		entry.Bindings = append(entry.Bindings, s)
	}
	return entry, nil
}

func decodeSpecs(specs []Spec, id signal.ID, logger *log.Logger) []signal.Binding {
	var out []signal.Binding
	for _, s := range specs {
		b, err := s.Decode()
		if err != nil {
			logf(logger, "prefs: id %d: binding skipped: %v", id, err)
			continue
		}
		out = append(out, b)
	}
	return out
}
