package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/potswa/quickdecimal/internal/verify"
)

const maxBarWidth = 72

type progressMsg uint64

type doneMsg struct {
	report verify.Report
	err    error
}

type progressModel struct {
	bar      progress.Model
	cancel   context.CancelFunc
	start    time.Time
	total    uint64
	done     uint64
	quitting bool
}

func newProgressModel(total uint64, cancel context.CancelFunc) *progressModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = maxBarWidth
	return &progressModel{
		bar:    bar,
		cancel: cancel,
		start:  time.Now(),
		total:  total,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return nil
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.cancel()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, maxBarWidth)
		return m, nil

	case progressMsg:
		if uint64(msg) <= m.done {
			return m, nil
		}
		m.done = uint64(msg)
		return m, m.bar.SetPercent(float64(m.done) / float64(m.total))

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case doneMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("quickdecimal verify"))
	b.WriteString("\n\n  ")
	b.WriteString(m.bar.View())
	b.WriteString("\n\n  ")

	elapsed := time.Since(m.start)
	status := fmt.Sprintf("%v / %v values · %v", m.done, m.total, elapsed.Round(time.Second))
	if m.done > 0 && m.done < m.total {
		eta := time.Duration(float64(elapsed) * float64(m.total-m.done) / float64(m.done))
		status += fmt.Sprintf(" · %v left", eta.Round(time.Second))
	}
	if m.quitting {
		status += " · cancelling"
	} else {
		status += " · q to cancel"
	}
	b.WriteString(helpStyle.Render(status))
	b.WriteString("\n")
	return b.String()
}

// runWithProgress runs verify.Run while a progress bar tracks the workers.
func runWithProgress(ctx context.Context, opts verify.Options, total uint64) (verify.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(total, cancel), tea.WithContext(ctx))
	opts.Progress = func(done uint64) {
		p.Send(progressMsg(done))
	}

	results := make(chan doneMsg, 1)
	go func() {
		report, err := verify.Run(ctx, opts)
		results <- doneMsg{report, err}
		p.Send(doneMsg{report, err})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		cancel()
		<-results
		return verify.Report{}, fmt.Errorf("progress: %w", err)
	}
	res := <-results
	return res.report, res.err
}
