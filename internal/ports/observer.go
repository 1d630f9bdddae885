package ports

import "github.com/bnema/tabsweep/internal/domain"

// EvictionObserver receives scheduler outcomes for instrumentation.
type EvictionObserver interface {
	TickCompleted(openTabs, candidates int)
	TabWarned(id domain.TabID)
	TabEvicted(id domain.TabID)
	WarningCancelled(id domain.TabID)
	StaleTarget(id domain.TabID)
	ArchiveSwept(removed, remaining int)
}

type NopObserver struct{}

func (NopObserver) TickCompleted(int, int) {}
func (NopObserver) TabWarned(domain.TabID) {}
func (NopObserver) TabEvicted(domain.TabID) {}
func (NopObserver) WarningCancelled(domain.TabID) {}
func (NopObserver) StaleTarget(domain.TabID) {}
func (NopObserver) ArchiveSwept(int, int) {}
