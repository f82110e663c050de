package store

import (
	"encoding/json"
	"fmt"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// record is the JSON form of objects without a native ROOT class:
// 2-D graphs, multi-graphs, stacks and canvases.
type record struct {
	Kind     string           `json:"kind"`
	Name     string           `json:"name"`
	Axes     plotobj.Axes     `json:"axes"`
	Points   []plotobj.Point  `json:"points,omitempty"`
	Points3  []plotobj.Point3 `json:"points3,omitempty"`
	Edges    []float64        `json:"edges,omitempty"`
	Contents []float64        `json:"contents,omitempty"`
	Errors   []float64        `json:"errors,omitempty"`
	Entries  int64            `json:"entries,omitempty"`
	Members  []record         `json:"members,omitempty"`

	// canvases
	Title      string          `json:"title,omitempty"`
	Width      int             `json:"width,omitempty"`
	Height     int             `json:"height,omitempty"`
	Margins    plotobj.Margins `json:"margins"`
	Cols       int             `json:"cols,omitempty"`
	Rows       int             `json:"rows,omitempty"`
	Primitives []string        `json:"primitives,omitempty"`
}

func encodeRecord(obj plotobj.Object) (record, error) {
	r := record{Kind: obj.Kind().String(), Name: obj.Name()}
	switch o := obj.(type) {
	case *plotobj.Graph:
		r.Axes, r.Points = o.Axes, o.Points
	case *plotobj.Graph2D:
		r.Axes, r.Points3 = o.Axes, o.Points
		r.Title = o.ZTitle
	case *plotobj.Histogram:
		r.Axes, r.Edges, r.Contents, r.Errors, r.Entries = o.Axes, o.Edges, o.Contents, o.Errors, o.Entries
	case *plotobj.MultiGraph:
		r.Axes = o.Axes
		for _, g := range o.Graphs {
			m, err := encodeRecord(g)
			if err != nil {
				return r, err
			}
			r.Members = append(r.Members, m)
		}
	case *plotobj.Stack:
		r.Axes = o.Axes
		for _, h := range o.Hists {
			m, err := encodeRecord(h)
			if err != nil {
				return r, err
			}
			r.Members = append(r.Members, m)
		}
	case *plotobj.Pad:
		r.Title, r.Width, r.Height = o.Title, o.Width, o.Height
		r.Margins, r.Cols, r.Rows = o.Margins, o.Cols, o.Rows
		for _, c := range o.Children() {
			r.Primitives = append(r.Primitives, c.Kind().String()+":"+c.Name())
		}
	default:
		return r, fmt.Errorf("store: cannot encode %v %q", obj.Kind(), obj.Name())
	}
	return r, nil
}

func decodeRecord(r record) (plotobj.Object, error) {
	switch r.Kind {
	case plotobj.KindGraph.String():
		g := plotobj.NewGraph(r.Name, 0)
		g.Points, g.Axes = r.Points, r.Axes
		return g, nil
	case plotobj.KindGraph2D.String():
		g := plotobj.NewGraph2D(r.Name, r.Points3...)
		g.Axes, g.ZTitle = r.Axes, r.Title
		return g, nil
	case plotobj.KindHistogram.String():
		h, err := plotobj.NewHistogramFromEdges(r.Name, r.Edges)
		if err != nil {
			return nil, err
		}
		copy(h.Contents, r.Contents)
		copy(h.Errors, r.Errors)
		h.Entries, h.Axes = r.Entries, r.Axes
		return h, nil
	case plotobj.KindMultiGraph.String():
		mg := plotobj.NewMultiGraph(r.Name, "")
		mg.Axes = r.Axes
		for _, m := range r.Members {
			o, err := decodeRecord(m)
			if err != nil {
				return nil, err
			}
			g, ok := o.(*plotobj.Graph)
			if !ok {
				return nil, fmt.Errorf("store: multi-graph %q holds a %v", r.Name, o.Kind())
			}
			mg.Add(g)
		}
		return mg, nil
	case plotobj.KindStack.String():
		s := plotobj.NewStack(r.Name, "")
		s.Axes = r.Axes
		for _, m := range r.Members {
			o, err := decodeRecord(m)
			if err != nil {
				return nil, err
			}
			h, ok := o.(*plotobj.Histogram)
			if !ok {
				return nil, fmt.Errorf("store: stack %q holds a %v", r.Name, o.Kind())
			}
			s.Add(h)
		}
		return s, nil
	case plotobj.KindPad.String():
		c := plotobj.NewCanvas(r.Name, r.Title, r.Width, r.Height)
		c.Margins = r.Margins
		if r.Cols*r.Rows > 1 {
			c.Divide(r.Cols, r.Rows)
		}
		return c, nil
	}
	return nil, fmt.Errorf("store: unknown record kind %q", r.Kind)
}

func marshalRecord(obj plotobj.Object) (string, error) {
	r, err := encodeRecord(obj)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("store: could not encode %q: %w", obj.Name(), err)
	}
	return string(raw), nil
}

func unmarshalRecord(s string) (plotobj.Object, error) {
	var r record
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, fmt.Errorf("store: could not decode record: %w", err)
	}
	return decodeRecord(r)
}
