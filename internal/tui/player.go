// Package tui provides an interactive terminal player for an animation.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atomviz/internal/anim"
	"github.com/san-kum/atomviz/internal/viz"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
	frameRate    = 30
)

type TickMsg time.Time

// Player steps through an animation and renders frames on every tick.
type Player struct {
	animator *anim.Animator
	renderer *viz.Renderer
	t        float64
	speed    float64
	playing  bool
	showHelp bool
	theme    int
}

func NewPlayer(a *anim.Animator) Player {
	return Player{
		animator: a,
		renderer: viz.NewRenderer(a.Config(), canvasWidth, canvasHeight),
		speed:    1,
		playing:  true,
	}
}

func (p Player) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if p.playing {
			p.t += p.speed * p.animator.Duration() / (10 * frameRate)
			if p.t >= p.animator.Duration() {
				p.t = p.animator.Duration()
				p.playing = false
			}
		}
		return p, tick()

	case tea.KeyMsg:
		step := p.animator.Duration() / 50
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			if !p.playing && p.t >= p.animator.Duration() {
				p.t = 0
			}
			p.playing = !p.playing
		case "left", "h":
			p.t = max(0, p.t-step)
		case "right", "l":
			p.t = min(p.animator.Duration(), p.t+step)
		case "+", "=":
			p.speed = min(p.speed*2, 16)
		case "-":
			p.speed = max(p.speed/2, 0.25)
		case "r":
			p.t = 0
			p.playing = true
		case "t":
			p.theme = (p.theme + 1) % len(viz.Themes)
			viz.ApplyTheme(viz.Themes[p.theme])
		case "?":
			p.showHelp = !p.showHelp
		}
	}
	return p, nil
}

func (p Player) View() string {
	frame := p.renderer.Frame(p.animator.State(p.t))

	status := viz.StatusPaused.Render("paused")
	if p.playing {
		status = viz.StatusPlaying.Render("playing")
	}
	bar := fmt.Sprintf("%s  %.1f/%.1f  speed %.2gx", status, p.t, p.animator.Duration(), p.speed)

	out := lipgloss.JoinVertical(lipgloss.Left, frame, bar)
	if p.showHelp {
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			viz.HelpStyle.Render("space play/pause · ←/→ seek · +/- speed · r restart · t theme · q quit"))
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left, out, viz.HelpStyle.Render("? for help"))
	}
	return out
}
