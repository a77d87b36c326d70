package matching

import (
	"math"

	"rawasi_matching/internal/domain/entities"
)

// ThreeDPrintingTech is the tech tag that earns the printing discount.
const ThreeDPrintingTech = "3D Printing"

const threeDPrintingFactor = 0.95

// baseRates are currency units per square metre by complexity.
var baseRates = map[entities.Complexity]float64{
	entities.ComplexityLow:    2800,
	entities.ComplexityMedium: 4000,
	entities.ComplexityHigh:   5200,
}

// durationFactors are months per 1000 square metres by complexity.
var durationFactors = map[entities.Complexity]float64{
	entities.ComplexityLow:    1.3,
	entities.ComplexityMedium: 1.7,
	entities.ComplexityHigh:   2.2,
}

// ProjectEstimate is the projected cost, duration and budget risk of a project.
type ProjectEstimate struct {
	EstCost       int64   `json:"estCost"`
	EstTimeMonths int     `json:"estTimeMonths"`
	Risk          float64 `json:"risk"`
}

// Estimate forecasts cost, duration and risk for project alone.
//
// A nil project is treated as an empty one, and an empty or unknown
// complexity as medium. Inputs are not validated; negative sizes propagate.
func Estimate(project *entities.ProjectDescriptor) ProjectEstimate {
	var p entities.ProjectDescriptor
	if project != nil {
		p = *project
	}
	complexity := p.Complexity
	if _, ok := baseRates[complexity]; !ok {
		complexity = entities.ComplexityMedium
	}

	factor := 1.0
	if p.HasTech(ThreeDPrintingTech) {
		factor = threeDPrintingFactor
	}
	cost := p.SizeSqm * baseRates[complexity] * factor

	return ProjectEstimate{
		EstCost:       int64(math.Round(cost)),
		EstTimeMonths: int(math.Ceil((p.SizeSqm / 1000) * durationFactors[complexity])),
		Risk:          clamp01(math.Abs(cost-p.Budget) / math.Max(p.Budget, 1)),
	}
}
