package uidoc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webxml/pkg/layout"
)

type nodeFile struct {
	Kind      string `json:"kind" yaml:"kind"`
	ID        string `json:"id" yaml:"id"`
	Class     string `json:"class" yaml:"class"`
	Hidden    bool   `json:"hidden" yaml:"hidden"`
	Invisible bool   `json:"invisible" yaml:"invisible"`
	Track     bool   `json:"track" yaml:"track"`
	ReadOnly  bool   `json:"readonly" yaml:"readonly"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`

	Text    string `json:"text" yaml:"text"`
	TextKey string `json:"textKey" yaml:"textKey"`
	Raw     bool   `json:"raw" yaml:"raw"`
	Bind    string `json:"bind" yaml:"bind"`

	For            string `json:"for" yaml:"for"`
	Hint           string `json:"hint" yaml:"hint"`
	AccessKey      string `json:"accessKey" yaml:"accessKey"`
	ToolTip        string `json:"toolTip" yaml:"toolTip"`
	AccessibleText string `json:"accessibleText" yaml:"accessibleText"`

	Value     string     `json:"value" yaml:"value"`
	MaxLength int        `json:"maxLength" yaml:"maxLength"`
	Options   []option   `json:"options" yaml:"options"`
	Selected  stringList `json:"selected" yaml:"selected"`

	Layout *layoutFile `json:"layout" yaml:"layout"`
	Popup  *popupFile  `json:"popup" yaml:"popup"`

	Rows     []map[string]string `json:"rows" yaml:"rows"`
	Template *nodeFile           `json:"template" yaml:"template"`
	Children []nodeFile          `json:"children" yaml:"children"`
}

type option struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

type layoutFile struct {
	Grid *gridFile `json:"grid" yaml:"grid"`
	Flow *flowFile `json:"flow" yaml:"flow"`
}

type gridFile struct {
	Rows int      `json:"rows" yaml:"rows"`
	Cols int      `json:"cols" yaml:"cols"`
	HGap gapValue `json:"hgap" yaml:"hgap"`
	VGap gapValue `json:"vgap" yaml:"vgap"`
}

type flowFile struct {
	Align string   `json:"align" yaml:"align"`
	Gap   gapValue `json:"gap" yaml:"gap"`
}

type popupFile struct {
	URL        string `json:"url" yaml:"url"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Resizable  bool   `json:"resizable" yaml:"resizable"`
	Scrollbars bool   `json:"scrollbars" yaml:"scrollbars"`
	Target     string `json:"target" yaml:"target"`
}

// gapValue accepts a gap token ("sm") or a legacy pixel count (6).
type gapValue struct {
	raw string
	set bool
}

func (g *gapValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("gap must be a token or a pixel count")
	}
	g.raw, g.set = node.Value, true
	return nil
}

func (g *gapValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		g.raw, g.set = token, true
		return nil
	}
	var px int
	if err := json.Unmarshal(data, &px); err != nil {
		return fmt.Errorf("gap must be a token or a pixel count")
	}
	g.raw, g.set = strconv.Itoa(px), true
	return nil
}

func (g gapValue) resolve() (layout.Gap, bool, error) {
	if !g.set || g.raw == "" {
		return 0, false, nil
	}
	if px, err := strconv.Atoi(g.raw); err == nil {
		gap, ok := layout.GapFromPixels(px)
		return gap, ok, nil
	}
	gap, err := layout.ParseGap(g.raw)
	if err != nil {
		return 0, false, err
	}
	return gap, true, nil
}

// stringList accepts a single string or a list of strings.
type stringList []string

func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = stringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*s = values
		return nil
	default:
		return fmt.Errorf("expected a string or a list of strings")
	}
}

func (s *stringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = stringList{single}
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*s = values
	return nil
}
