package scenario

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// Load parses and decodes the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(ctx, file.Body, path)
}

// Parse decodes a scenario from src. filename is used in diagnostics only.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(ctx, file.Body, filename)
}

func decode(ctx context.Context, body hcl.Body, source string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	var raw hclFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", source, diags)
	}

	opts := gridmap.DefaultOptions()
	if c := raw.Map.Connectivity; c != nil {
		switch *c {
		case 4:
			opts.Conn = grid.Conn4
		case 8:
			opts.Conn = grid.Conn8
		default:
			return nil, fmt.Errorf("%s: %w: got %d", source, ErrConnectivity, *c)
		}
	}
	gm, err := gridmap.Parse(raw.Map.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if raw.Search.MaxDistance < 0 || raw.Search.StagnationLimit < 0 {
		return nil, fmt.Errorf("%s: %w: max_distance=%d stagnation_limit=%d",
			source, ErrSearch, raw.Search.MaxDistance, raw.Search.StagnationLimit)
	}

	sc := &Scenario{
		Source:          source,
		Map:             gm,
		MaxDistance:     raw.Search.MaxDistance,
		StagnationLimit: raw.Search.StagnationLimit,
		Smooth:          raw.Search.Smooth,
	}

	evalCtx := evalContext(gm)
	seen := make(map[string]bool, len(raw.Routes))
	for _, r := range raw.Routes {
		if seen[r.Name] {
			return nil, fmt.Errorf("%s: %w: %q", source, ErrDuplicateRoute, r.Name)
		}
		seen[r.Name] = true

		from, err := evalPoint(r.From, evalCtx, gm)
		if err != nil {
			return nil, fmt.Errorf("%s: route %q from: %w", source, r.Name, err)
		}
		to, err := evalPoint(r.To, evalCtx, gm)
		if err != nil {
			return nil, fmt.Errorf("%s: route %q to: %w", source, r.Name, err)
		}
		sc.Routes = append(sc.Routes, Route{Name: r.Name, From: from, To: to})
	}

	if len(sc.Routes) == 0 {
		s, okS := gm.Marker(gridmap.GlyphStart)
		e, okE := gm.Marker(gridmap.GlyphEnd)
		if !okS || !okE {
			return nil, fmt.Errorf("%s: %w", source, ErrNoRoutes)
		}
		sc.Routes = []Route{{Name: DefaultRoute, From: s, To: e}}
	}

	logger.Debug("Successfully decoded scenario.",
		"source", source, "width", gm.Width, "height", gm.Height, "routes", len(sc.Routes))
	return sc, nil
}

// Route returns the route called name.
func (s *Scenario) Route(name string) (Route, bool) {
	for _, r := range s.Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// evalContext binds the map's dimensions and markers for route expressions.
func evalContext(gm *gridmap.GridMap) *hcl.EvalContext {
	vars := map[string]cty.Value{
		"width":  cty.NumberIntVal(int64(gm.Width)),
		"height": cty.NumberIntVal(int64(gm.Height)),
	}

	markers := make(map[string]cty.Value)
	for r, p := range gm.Markers() {
		markers[string(r)] = pointVal(p)
	}
	vars["marker"] = cty.ObjectVal(markers)

	if p, ok := gm.Marker(gridmap.GlyphStart); ok {
		vars["start"] = pointVal(p)
	}
	if p, ok := gm.Marker(gridmap.GlyphEnd); ok {
		vars["end"] = pointVal(p)
	}

	return &hcl.EvalContext{Variables: vars}
}

func pointVal(p grid.Point) cty.Value {
	return cty.TupleVal([]cty.Value{
		cty.NumberIntVal(int64(p.X)),
		cty.NumberIntVal(int64(p.Y)),
	})
}

// evalPoint evaluates expr to an in-bounds [x, y] pair.
func evalPoint(expr hcl.Expression, evalCtx *hcl.EvalContext, gm *gridmap.GridMap) (grid.Point, error) {
	var xy []int
	if diags := gohcl.DecodeExpression(expr, evalCtx, &xy); diags.HasErrors() {
		return grid.Point{}, diags
	}
	if len(xy) != 2 {
		return grid.Point{}, fmt.Errorf("%w: got %d values at %s", ErrPoint, len(xy), expr.Range())
	}
	p := grid.Pt(xy[0], xy[1])
	if !gm.InBounds(p) {
		return grid.Point{}, fmt.Errorf("%w: %v in %d×%d at %s", ErrOutOfBounds, p, gm.Width, gm.Height, expr.Range())
	}
	return p, nil
}
