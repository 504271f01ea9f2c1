package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
)

// fieldView maps layout pixel space onto a block of screen cells.
type fieldView struct {
	area   core.Rect
	scaleX float64 // cells per pixel
	scaleY float64
}

func newFieldView(l *arena.Layout, area core.Rect) fieldView {
	w, h := l.MeasureWidth, l.MeasureHeight
	if w <= 0 || h <= 0 {
		w, h = extent(l)
	}
	w = math.Max(w, 1)
	h = math.Max(h, 1)

	return fieldView{
		area:   area,
		scaleX: float64(core.Max(area.W-1, 0)) / w,
		scaleY: float64(core.Max(area.H-1, 0)) / h,
	}
}

// extent is the bounding size of everything placed on the field.
func extent(l *arena.Layout) (w, h float64) {
	for _, loc := range l.Locations {
		w = math.Max(w, loc.Position.X)
		h = math.Max(h, loc.Position.Y)
	}
	for _, e := range l.Exclusions {
		w = math.Max(w, e.TopLeft.X+e.Width)
		h = math.Max(h, e.TopLeft.Y+e.Height)
	}
	return w, h
}

// cell returns the screen cell for a pixel position, clamped to the area.
func (v fieldView) cell(p core.Position) (x, y int) {
	x = v.area.X + int(math.Round(p.X*v.scaleX))
	y = v.area.Y + int(math.Round(p.Y*v.scaleY))
	return core.Clamp(x, v.area.X, v.area.Right()-1), core.Clamp(y, v.area.Y, v.area.Bottom()-1)
}

// drawFrame renders the field with the robot at the given frame.
func drawFrame(s *core.Screen, pb *Playback, frame int, speed float64, paused bool) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w < 4 || h < 4 {
		return
	}

	drawHeader(s, pb, frame)

	box := core.NewRect(0, 1, w, h-2)
	s.DrawBox(box)
	area := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	view := newFieldView(&pb.Layout, area)

	for _, e := range pb.Layout.Exclusions {
		x0, y0 := view.cell(e.TopLeft)
		x1, y1 := view.cell(core.P(e.TopLeft.X+e.Width, e.TopLeft.Y+e.Height))
		s.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), '░', core.ColorGray)
	}

	steps := pb.Result.Steps
	for i := 0; i < frame && i < len(steps); i++ {
		x, y := view.cell(steps[i].Position)
		s.SetColored(x, y, '·', core.ColorCyan)
	}

	for _, loc := range pb.Layout.Locations {
		x, y := view.cell(loc.Position)
		s.SetColored(x, y, '◆', core.ColorYellow)
		label := loc.LocID
		if x+2+len(label) > area.Right() {
			label = label[:core.Max(area.Right()-x-2, 0)]
		}
		s.DrawTextColored(x+2, y, label, core.ColorBrightWhite)
	}

	if frame >= 0 && frame < len(steps) {
		x, y := view.cell(steps[frame].Position)
		s.SetColored(x, y, '●', core.ColorGreen)
	}

	drawProgress(s, pb, frame, speed, paused)
}

func drawHeader(s *core.Screen, pb *Playback, frame int) {
	name := pb.Layout.Name
	if name == "" {
		name = "untitled"
	}
	left := fmt.Sprintf(" %s · %s", pb.Title, name)
	right := fmt.Sprintf("points %.1f / %.1f ", pb.PointsThrough(frame), pb.Result.Score)
	s.DrawTextColored(0, 0, left, core.ColorOrange)
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, core.ColorBrightWhite)
}

// drawProgress renders the bottom status line with a progress bar.
func drawProgress(s *core.Screen, pb *Playback, frame int, speed float64, paused bool) {
	y := s.Height() - 1

	var ratio float64
	if n := pb.Frames(); n > 0 {
		ratio = float64(frame+1) / float64(n)
	}
	var seconds float64
	if pb.AnimationRate > 0 {
		seconds = math.Min(float64(core.Max(frame, 0))/pb.AnimationRate, pb.Result.ElapsedSeconds)
	}

	state := "▶"
	if paused {
		state = "❚❚"
	}
	status := fmt.Sprintf(" %s %5.1fs/%.1fs x%.2g ", state, seconds, pb.Result.ElapsedSeconds, speed)
	s.DrawTextColored(0, y, status, core.ColorBrightWhite)

	start := len([]rune(status))
	width := s.Width() - start - 1
	if width < 3 {
		return
	}
	filled := int(math.Round(ratio * float64(width)))
	s.DrawTextColored(start, y, strings.Repeat("█", filled), core.ColorBlue)
	s.DrawTextColored(start+filled, y, strings.Repeat("░", width-filled), core.ColorGray)
}
