package narx

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineFit generates an echart line chart overlaying the target and predicted
// sequences against time step index.
func LineFit(res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Actual vs Predicted",
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, len(res.Targets))
	lineDataPredicted := make([]opts.LineData, 0, len(res.Predictions))

	for i := 0; i < len(res.Targets); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: res.Targets[i]})
		lineDataPredicted = append(lineDataPredicted, opts.LineData{Value: res.Predictions[i]})
	}

	line.SetXAxis(res.Index).
		AddSeries("Actual", lineDataActual).
		AddSeries("Predicted", lineDataPredicted)
	return line
}

// LineResidual generates an echart line chart of the per row prediction
// error against time step index.
func LineResidual(res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Fit Residual",
			},
		),
	)

	filteredIdx, lineData := residualSeries(res)
	line.SetXAxis(filteredIdx).
		AddSeries("Residual", lineData)
	return line
}

// residualSeries pairs each residual with its time step index, dropping NaN
// residuals together with their index so the remaining points stay aligned
// on the axis.
func residualSeries(res *Results) ([]int, []opts.LineData) {
	filteredIdx := make([]int, 0, len(res.Index))
	lineData := make([]opts.LineData, 0, len(res.Targets))
	for i := 0; i < len(res.Targets); i++ {
		val := res.Targets[i] - res.Predictions[i]
		if math.IsNaN(val) {
			continue
		}
		filteredIdx = append(filteredIdx, res.Index[i])
		lineData = append(lineData, opts.LineData{Value: val})
	}
	return filteredIdx, lineData
}

// PlotFit uses the Apache Echarts library to generate an html file showing
// the fit against the lagged targets along with the fit residual.
func (f *Forecaster) PlotFit(path string) error {
	res, err := f.Results()
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(
		LineFit(res),
		LineResidual(res),
	)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	return page.Render(io.MultiWriter(file))
}
