package difvec

import (
	"time"
)

// VectorTable is the flattened export of a VectorMap: one row per
// (position, vector) in row-major scan order, holding the navigation
// coordinates followed by the vector components.
type VectorTable struct {
	Columns     []string
	Rows        [][]float64
	Calibration Calibration
}

// FlattenOptions contains configuration options for Flatten.
type FlattenOptions struct {
	// RealUnits maps navigation indices through the axis calibration
	// (offset + index * scale) instead of exporting raw indices. Missing
	// scale entries default to 1 and missing offsets to 0.
	RealUnits bool
}

// DefaultFlattenOptions contains the default configuration options for
// Flatten.
var DefaultFlattenOptions = FlattenOptions{}

// Flatten exports every vector of the scan as one table row
// [navX, navY, v...]. All present vector lists must share one
// dimensionality.
func (vm *VectorMap) Flatten(optFns ...func(o *FlattenOptions)) (*VectorTable, error) {
	start := time.Now()

	opts := DefaultFlattenOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	dim := 0
	var rows [][]float64
	for idx, vectors := range vm.grid.All() {
		navX := float64(idx.Col)
		navY := float64(idx.Row)
		if opts.RealUnits {
			navX = vm.axisOffset(0) + navX*vm.axisScale(0)
			navY = vm.axisOffset(1) + navY*vm.axisScale(1)
		}

		for _, v := range vectors {
			if dim == 0 {
				dim = len(v)
			}
			if len(v) != dim {
				err := &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
				vm.logger.LogFlatten(0, err)
				return nil, err
			}

			row := make([]float64, 0, 2+dim)
			row = append(row, navX, navY)
			row = append(row, v...)
			rows = append(rows, row)
		}
	}

	table := &VectorTable{
		Columns:     tableColumns(dim),
		Rows:        rows,
		Calibration: vm.calibration.clone(),
	}

	vm.metrics.RecordFlatten(len(rows), time.Since(start))
	vm.logger.LogFlatten(len(rows), nil)

	return table, nil
}

func tableColumns(dim int) []string {
	columns := []string{"x", "y", "kx", "ky"}
	if dim == 3 {
		columns = append(columns, "kz")
	}
	return columns
}
