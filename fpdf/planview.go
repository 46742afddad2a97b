// Provides routines to render reconstructed flightpaths as PDFs
package fpdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/geo"

	"github.com/skypies/adsbtools"
)

var (
	HeightGradientMin = 0.0     // feet; paths at/below this get the first color
	HeightGradientMax = 20000.0 // feet; paths at/above this get the last color

	// http://www.perbang.dk/rgbgradient/
	HeightGradientColors = [][]int{
		{0x00, 0xBF, 0xA9}, // 00BFA9
		{0x25, 0xC9, 0x00}, // 25C900
		{0xBB, 0xD0, 0x00}, // BBD000
		{0xD7, 0x53, 0x00}, // D75300
		{0xDA, 0x06, 0x00}, // DA0600
		{0xDB, 0x00, 0xE5}, // DB00E5
	}
)

// A PlanView maps a lat/long window onto a page and draws
// flightpaths over it, colored by each path's peak height.
type PlanView struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of PDF page space the grid is drawn over
	OffsetU, OffsetV float64
	W, H             float64 // in PDF units (mm)

	Bounds geo.LatlongBox // the lat/long window scaled onto the grid
}

// NewPlanView builds a page around an airport's box, padded out by
// marginDeg degrees each way so approaches are visible.
func NewPlanView(airport adsbtools.Airport, marginDeg float64) *PlanView {
	pv := PlanView{
		OffsetU: 10.0, OffsetV: 10.0,
		W: 195.0, H: 180.0,
		Bounds: geo.LatlongBox{
			SW: geo.Latlong{
				Lat:  airport.Box.SW.Lat  - marginDeg,
				Long: airport.Box.SW.Long - marginDeg,
			},
			NE: geo.Latlong{
				Lat:  airport.Box.NE.Lat  + marginDeg,
				Long: airport.Box.NE.Long + marginDeg,
			},
		},
	}

	pv.Fpdf = gofpdf.New("P", "mm", "Letter", "")
	pv.AddPage()

	pv.drawFrame()
	pv.drawAirport(airport)

	return &pv
}

// {{{ pv.UV

// UV maps (long,lat) into PDF space. In PDF, the Y scale goes down
// the page, so latitude is inverted. The bool is whether the point
// is out of bounds for the window.
func (pv PlanView)UV(long,lat float64) (float64, float64, bool) {
	uRatio := (long - pv.Bounds.SW.Long) / (pv.Bounds.NE.Long - pv.Bounds.SW.Long)
	vRatio := (lat - pv.Bounds.SW.Lat)  / (pv.Bounds.NE.Lat  - pv.Bounds.SW.Lat)

	u := pv.OffsetU + uRatio*pv.W
	v := pv.OffsetV + (pv.H - vRatio*pv.H)
	oob := uRatio<0 || uRatio>1 || vRatio<0 || vRatio>1

	return u,v,oob
}

// }}}
// {{{ pv.drawFrame, drawAirport

func (pv *PlanView)drawFrame() {
	pv.SetDrawColor(0x00, 0x00, 0x00)
	pv.SetLineWidth(0.5)
	pv.Fpdf.MoveTo(pv.OffsetU,      pv.OffsetV)
	pv.Fpdf.LineTo(pv.OffsetU+pv.W, pv.OffsetV)
	pv.Fpdf.LineTo(pv.OffsetU+pv.W, pv.OffsetV+pv.H)
	pv.Fpdf.LineTo(pv.OffsetU,      pv.OffsetV+pv.H)
	pv.Fpdf.LineTo(pv.OffsetU,      pv.OffsetV)
	pv.DrawPath("D")
}

func (pv *PlanView)drawAirport(airport adsbtools.Airport) {
	u1,v1,_ := pv.UV(airport.Box.SW.Long, airport.Box.NE.Lat) // top-left corner on page
	u2,v2,_ := pv.UV(airport.Box.NE.Long, airport.Box.SW.Lat)

	pv.SetFillColor(0xe0, 0xe0, 0xe0)
	pv.Rect(u1, v1, u2-u1, v2-v1, "F")

	pv.SetFont("Arial", "", 8)
	pv.Fpdf.MoveTo(u1, v2)
	pv.Cell(30, 4, airport.ICAO)
}

// }}}
// {{{ pv.DrawPath

// DrawFlightPath draws one instance's linestring, clipping segments
// that leave the window.
func (pv *PlanView)DrawFlightPath(fp adsbtools.FlightPath) {
	coords := fp.Geometry.LineString
	if len(coords) == 0 { return }

	rgb := heightToRGB(peakHeight(coords))
	pv.SetDrawColor(rgb[0], rgb[1], rgb[2])
	pv.SetLineWidth(0.2)

	for i := 1; i < len(coords); i++ {
		u1,v1,oob1 := pv.UV(coords[i-1][0], coords[i-1][1])
		u2,v2,oob2 := pv.UV(coords[i][0], coords[i][1])
		if oob1 || oob2 { continue }
		pv.Fpdf.MoveTo(u1,v1)
		pv.Fpdf.LineTo(u2,v2)
	}

	pv.DrawPath("D")
}

// }}}
// {{{ pv.DrawTitle, DrawHeightKey

func (pv *PlanView)DrawTitle(title string) {
	pv.SetFont("Arial", "", 10)
	pv.SetTextColor(0x00, 0x00, 0x00)
	pv.Fpdf.MoveTo(pv.OffsetU, pv.OffsetV + pv.H + 2.0)
	pv.Cell(100, 10, title)
}

func (pv *PlanView)DrawHeightKey() {
	width,height := 8.0,4.0
	feetPerBox := (HeightGradientMax-HeightGradientMin) / float64(len(HeightGradientColors)-1)

	pv.SetFont("Arial", "", 8)
	for i,rgb := range HeightGradientColors {
		x := pv.OffsetU + 2.0
		y := pv.OffsetV + 2.0 + float64(i)*height
		pv.SetFillColor(rgb[0], rgb[1], rgb[2])
		pv.Rect(x, y, width, height, "F")
		pv.Fpdf.MoveTo(x+width+2.0, y)
		pv.Cell(30, height, fmt.Sprintf(">=%.0f ft", HeightGradientMin+float64(i)*feetPerBox))
	}
}

// }}}

func (pv *PlanView)Output(w io.Writer) error {
	return pv.Fpdf.Output(w)
}

func peakHeight(coords [][]float64) float64 {
	peak := 0.0
	for _,c := range coords {
		if len(c) > 2 && c[2] > peak { peak = c[2] }
	}
	return peak
}

func heightToRGB(height float64) []int {
	if height >= HeightGradientMax { return HeightGradientColors[len(HeightGradientColors)-1] }
	if height <= HeightGradientMin { return HeightGradientColors[0] }

	f := (height-HeightGradientMin) / (HeightGradientMax-HeightGradientMin)
	i := int(f * float64(len(HeightGradientColors)-1))
	return HeightGradientColors[i]
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
