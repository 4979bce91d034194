package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/skim/viewer"
)

// app adapts viewer.Model to tea.Model.
type app struct {
	viewer viewer.Model
}

func newApp(cfg viewer.Config) app {
	return app{viewer: viewer.New(cfg)}
}

func (a app) Init() tea.Cmd { return a.viewer.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.viewer, cmd = a.viewer.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.viewer.View() }
