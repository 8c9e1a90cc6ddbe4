package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Camera rays per pixel
	TotalSamples    int           // Total number of camera rays traced
	TotalBounces    int           // Scatter events across all paths
	MaxBounces      int           // Longest path seen
	Escaped         int           // Paths that reached the background
	Absorbed        int           // Paths absorbed by a material
	DepthLimited    int           // Paths cut off at the maximum depth
	Duration        time.Duration // Wall time of the render
}

// AddPath folds the statistics of one traced path into the totals
func (rs *RenderStats) AddPath(path integrator.PathStats) {
	rs.TotalSamples++
	rs.TotalBounces += path.Bounces
	rs.MaxBounces = max(rs.MaxBounces, path.Bounces)

	switch path.Termination {
	case integrator.Escaped:
		rs.Escaped++
	case integrator.Absorbed:
		rs.Absorbed++
	case integrator.DepthLimit:
		rs.DepthLimited++
	}
}

// AverageBounces returns the mean number of bounces per camera ray
func (rs RenderStats) AverageBounces() float64 {
	if rs.TotalSamples == 0 {
		return 0
	}
	return float64(rs.TotalBounces) / float64(rs.TotalSamples)
}

func percentOf(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%02.1f %%", 100*float64(n)/float64(total))
}

// WriteTable renders the statistics as a text table
func (rs RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value", "% of samples"})
	table.AppendBulk([][]string{
		{"Pixels", fmt.Sprintf("%d", rs.TotalPixels), ""},
		{"Samples per pixel", fmt.Sprintf("%d", rs.SamplesPerPixel), ""},
		{"Camera rays", fmt.Sprintf("%d", rs.TotalSamples), ""},
		{"Escaped", fmt.Sprintf("%d", rs.Escaped), percentOf(rs.Escaped, rs.TotalSamples)},
		{"Absorbed", fmt.Sprintf("%d", rs.Absorbed), percentOf(rs.Absorbed, rs.TotalSamples)},
		{"Depth limited", fmt.Sprintf("%d", rs.DepthLimited), percentOf(rs.DepthLimited, rs.TotalSamples)},
		{"Average bounces", fmt.Sprintf("%.2f", rs.AverageBounces()), ""},
		{"Max bounces", fmt.Sprintf("%d", rs.MaxBounces), ""},
	})
	table.SetFooter([]string{"", "Render time", rs.Duration.String()})
	table.Render()
}
