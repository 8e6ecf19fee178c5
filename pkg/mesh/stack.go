package mesh

import (
	"fmt"

	"github.com/Faultbox/topomesh/pkg/heightgrid"
)

// Stack builds a terrain mesh plus one mesh per feature layer resting on it.
//
// The first mesh is terrain built with opts. Each layer is clipped to the
// terrain region, loses the cells already taken by earlier layers, and is
// meshed with the terrain as its base. A layer left with no cells yields an
// empty mesh so the result stays aligned with layers.
func Stack(terrain *heightgrid.Grid, layers []*heightgrid.Grid, opts Options) ([]*Mesh, error) {
	ground, err := Build(terrain, opts)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	meshes := []*Mesh{ground}

	layerOpts := opts
	layerOpts.Base = terrain

	var taken []*heightgrid.Grid
	for k, layer := range layers {
		if layer == nil {
			return nil, fmt.Errorf("layer %d: %w: nil grid", k, heightgrid.ErrInvalidShape)
		}
		clipped, err := layer.Within(terrain)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", k, err)
		}
		for _, prev := range taken {
			if clipped, err = clipped.Without(prev); err != nil {
				return nil, fmt.Errorf("layer %d: %w", k, err)
			}
		}

		m, err := Build(clipped, layerOpts)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", k, err)
		}
		meshes = append(meshes, m)
		taken = append(taken, clipped)
	}
	return meshes, nil
}
