package pagenav

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/headless"
)

type lifecycle struct {
	events []string
	counts map[string]int
}

func newLifecycle() *lifecycle {
	return &lifecycle{counts: make(map[string]int)}
}

func (l *lifecycle) record(id, hook string) {
	l.events = append(l.events, id+":"+hook)
	l.counts[id+":"+hook]++
}

func (l *lifecycle) count(id, hook string) int {
	return l.counts[id+":"+hook]
}

func (l *lifecycle) page(id string) *Page {
	return NewPage(id, PageFuncs{
		BuildFunc:     func(*Page) { l.record(id, "build") },
		OnEnterFunc:   func() { l.record(id, "enter") },
		OnLeaveFunc:   func() { l.record(id, "leave") },
		OnDestroyFunc: func() { l.record(id, "destroy") },
	})
}

type fixture struct {
	m     *Manager
	p     *headless.Provider
	root  *headless.Surface
	life  *lifecycle
	logs  *bytes.Buffer
	pages map[string]*Page
}

func newFixture(t *testing.T, ids ...string) *fixture {
	t.Helper()

	p := headless.New(320, 240)
	logs := &bytes.Buffer{}
	m := NewManager(p)
	m.SetLogger(slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	f := &fixture{
		m:     m,
		p:     p,
		root:  p.Root(),
		life:  newLifecycle(),
		logs:  logs,
		pages: make(map[string]*Page),
	}
	for _, id := range ids {
		f.pages[id] = f.life.page(id)
		m.Register(f.pages[id])
	}
	m.Initialize(f.root, nil)
	return f
}

func (f *fixture) activeCount() int {
	n := 0
	for _, p := range f.pages {
		if p.State() == PageActive {
			n++
		}
	}
	return n
}

func pageIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
	}
	return ids
}
