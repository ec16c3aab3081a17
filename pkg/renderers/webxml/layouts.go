package webxml

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
	"github.com/goliatone/go-webxml/pkg/render"
)

// renderGridLayout paints a container's children arranged by a GridLayout.
// Every child gets a cell, including children that paint nothing. A grid
// without rows or cols, such as the zero GridLayout, is rejected.
func renderGridLayout(rc *render.Context, container component.Component, l layout.Layout) error {
	grid, ok := l.(layout.GridLayout)
	if !ok {
		return render.Mismatch("layout.GridLayout", l)
	}
	if grid.Rows() <= 0 && grid.Cols() <= 0 {
		return fmt.Errorf("webxml: grid layout: %w", layout.ErrNoDimension)
	}
	xml := rc.Writer()

	xml.AppendTagOpen(TagGridLayout)
	xml.AppendAttribute("rows", strconv.Itoa(max(grid.Rows(), 0)))
	xml.AppendAttribute("cols", strconv.Itoa(max(grid.Cols(), 0)))
	if hgap, ok := grid.HorizontalGap(); ok {
		xml.AppendAttribute("hgap", hgap.String())
	}
	if vgap, ok := grid.VerticalGap(); ok {
		xml.AppendAttribute("vgap", vgap.String())
	}
	xml.AppendClose()

	if err := paintCells(rc, container); err != nil {
		return err
	}

	xml.AppendEndTag(TagGridLayout)
	return nil
}

func renderFlowLayout(rc *render.Context, container component.Component, l layout.Layout) error {
	flow, ok := l.(layout.FlowLayout)
	if !ok {
		return render.Mismatch("layout.FlowLayout", l)
	}
	xml := rc.Writer()

	xml.AppendTagOpen(TagFlowLayout)
	xml.AppendAttribute("align", string(flow.Alignment()))
	if gap, ok := flow.Gap(); ok {
		xml.AppendAttribute("gap", gap.String())
	}
	xml.AppendClose()

	if err := paintCells(rc, container); err != nil {
		return err
	}

	xml.AppendEndTag(TagFlowLayout)
	return nil
}

func paintCells(rc *render.Context, container component.Component) error {
	xml := rc.Writer()
	for _, child := range container.Common().Children {
		xml.AppendTag(TagCell)
		if err := render.Paint(rc, child); err != nil {
			return err
		}
		xml.AppendEndTag(TagCell)
	}
	return nil
}
