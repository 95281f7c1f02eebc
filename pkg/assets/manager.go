package assets

import "log"

// Manager aggregates the progress of every load issued through a Loader.
// All methods run on the frame thread (Loader.Dispatch), so it needs no lock.
//
// OnLoad fires once, when every registered item has loaded successfully. A
// failed item is never counted as loaded, so the gate stays closed.
type Manager struct {
	OnProgress func(item string, loaded, total int)
	OnLoad     func()
	OnError    func(item string, err error)

	total  int
	loaded int
	failed int
	fired  bool
}

// NewManager creates a load manager with no callbacks.
func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) itemStart(item string) {
	m.total++
}

func (m *Manager) itemEnd(item string) {
	m.loaded++
	log.Printf("[LoadManager] %s (%d/%d)", item, m.loaded, m.total)
	if m.OnProgress != nil {
		m.OnProgress(item, m.loaded, m.total)
	}
	if !m.fired && m.loaded == m.total {
		m.fired = true
		log.Printf("[LoadManager] All resources loaded.")
		if m.OnLoad != nil {
			m.OnLoad()
		}
	}
}

func (m *Manager) itemError(item string, err error) {
	m.failed++
	if m.OnError != nil {
		m.OnError(item, err)
	}
}

// Loaded reports whether OnLoad has fired.
func (m *Manager) Loaded() bool {
	return m.fired
}

// Progress returns loaded/total in [0, 1]; 1 when nothing was requested.
func (m *Manager) Progress() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.loaded) / float64(m.total)
}

// Counts returns total, loaded and failed item counts.
func (m *Manager) Counts() (total, loaded, failed int) {
	return m.total, m.loaded, m.failed
}
