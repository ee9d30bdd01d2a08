package pagenav

import (
	"errors"
	"testing"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/headless"
	"github.com/stretchr/testify/require"
)

func TestFirstNavigationIsImmediate(t *testing.T) {
	f := newFixture(t, "home")

	require.NoError(t, f.m.TryNavigateTo("home", constants.DirectionRight, constants.TransitionSlide))

	require.False(t, f.m.IsAnimating())
	require.Zero(t, f.p.Animating())
	require.Equal(t, "home", f.m.CurrentPage().ID())
	require.Equal(t, PageActive, f.pages["home"].State())
	require.Empty(t, f.m.History())
	require.Equal(t, []string{"home:build", "home:enter"}, f.life.events)
}

func TestSlideToSettings(t *testing.T) {
	f := newFixture(t, "home", "settings", "list", "detail")
	f.m.SetNavigation("home", Navigation{Right: To("settings")})

	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionSlide)

	require.True(t, f.m.IsAnimating())
	require.Equal(t, 2, f.p.Animating(), "both pages move")
	settings := f.pages["settings"].Surface()
	x, _ := settings.Position()
	require.Equal(t, int32(-320), x, "enters from the left edge when moving right")
	require.False(t, settings.Hidden())

	f.p.Settle()

	require.False(t, f.m.IsAnimating())
	require.Equal(t, "settings", f.m.CurrentPage().ID())
	require.Equal(t, PageActive, f.pages["settings"].State())
	require.Equal(t, PageInactive, f.pages["home"].State())
	require.Equal(t, []HistoryEntry{{PageID: "home", Direction: constants.DirectionRight, Transition: constants.TransitionSlide}}, f.m.History())
	require.Equal(t, []string{"home"}, f.m.CachedPages())

	home := f.pages["home"].Surface()
	hx, hy := home.Position()
	require.Equal(t, int32(0), hx, "old page reset to origin for reuse")
	require.Equal(t, int32(0), hy)
	require.True(t, home.Hidden())
	sx, _ := settings.Position()
	require.Equal(t, int32(0), sx)
	require.Equal(t, 1, f.activeCount())
}

func TestNavigateWhileAnimatingIsDropped(t *testing.T) {
	f := newFixture(t, "home", "settings", "list")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionLeft, constants.TransitionSlide)
	require.Equal(t, 2, f.p.Animating())

	err := f.m.TryNavigateTo("list", constants.DirectionLeft, constants.TransitionSlide)
	require.ErrorIs(t, err, ErrTransitionInFlight)
	require.True(t, IsDropped(err))

	f.m.NavigateTo("list", constants.DirectionLeft, constants.TransitionFade)
	f.m.NavigateBack()
	f.p.Swipe(constants.DirectionLeft)

	require.Equal(t, "settings", f.m.CurrentPage().ID())
	require.Equal(t, 2, f.p.Animating(), "no second transition started")
	require.Equal(t, PageRegistered, f.pages["list"].State(), "dropped target is never built")
	require.Len(t, f.m.History(), 1)

	f.p.Settle()
	require.Equal(t, "settings", f.m.CurrentPage().ID())
	require.Equal(t, 1, f.activeCount())
}

func TestMaxCachedZeroDestroysImmediately(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.SetMaxCachedPages(0)

	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionSlide)
	f.p.Settle()

	home := f.pages["home"]
	require.Equal(t, PageDestroyed, home.State())
	require.Nil(t, home.Surface())
	require.Empty(t, f.m.CachedPages())
	require.Equal(t, 1, f.life.count("home", "destroy"))
	require.Equal(t, 1, f.life.count("home", "leave"))
}

func TestMaxCachedZeroWithoutAnimation(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.SetMaxCachedPages(0)

	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionNone)

	require.Equal(t, PageDestroyed, f.pages["home"].State())
	require.Empty(t, f.m.CachedPages())
}

func TestGestureWithoutEdgeIsIgnored(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.SetNavigation("home", Navigation{Right: To("settings")})
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	f.p.Swipe(constants.DirectionLeft)

	require.False(t, f.m.IsAnimating())
	require.Zero(t, f.p.Animating())
	require.Equal(t, "home", f.m.CurrentPage().ID())
	require.Empty(t, f.m.History())
	require.Equal(t, PageRegistered, f.pages["settings"].State())
}

func TestGestureUsesEdgeGeometry(t *testing.T) {
	f := newFixture(t, "list", "detail")
	f.m.SetNavigation("list", Navigation{
		Left: To("detail").Animate(constants.DirectionRight).Using(constants.TransitionSlideOver),
	})
	f.m.NavigateTo("list", constants.DirectionRight, constants.TransitionNone)

	f.p.Swipe(constants.DirectionLeft)

	require.True(t, f.m.IsAnimating())
	require.Equal(t, 1, f.p.Animating(), "slide-over only moves the new page")

	list := f.pages["list"].Surface().(*headless.Surface)
	detail := f.pages["detail"].Surface().(*headless.Surface)
	require.Greater(t, detail.ZIndex(), list.ZIndex())
	x, _ := detail.Position()
	require.Equal(t, int32(-320), x)

	f.p.Advance(100 * time.Millisecond)
	lx, ly := list.Position()
	require.Equal(t, int32(0), lx, "covered page does not move")
	require.Equal(t, int32(0), ly)

	f.p.Settle()
	require.Equal(t, "detail", f.m.CurrentPage().ID())
	require.Equal(t, PageInactive, f.pages["list"].State())
	require.Equal(t, []HistoryEntry{{PageID: "list", Direction: constants.DirectionRight, Transition: constants.TransitionSlideOver}}, f.m.History())
}

func TestGesturesDisabled(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.SetNavigation("home", Navigation{Right: To("settings")})
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	f.m.EnableGesture(false)
	f.p.Swipe(constants.DirectionRight)
	require.Equal(t, "home", f.m.CurrentPage().ID())

	f.m.EnableGesture(true)
	f.p.Swipe(constants.DirectionRight)
	f.p.Settle()
	require.Equal(t, "settings", f.m.CurrentPage().ID())
}

func TestGestureToUnregisteredTargetIsIgnored(t *testing.T) {
	f := newFixture(t, "home")
	f.m.SetNavigation("home", Navigation{Up: To("later")})
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	f.p.Swipe(constants.DirectionUp)
	require.False(t, f.m.IsAnimating())

	later := f.life.page("later")
	f.pages["later"] = later
	f.m.Register(later)

	f.p.Swipe(constants.DirectionUp)
	f.p.Settle()
	require.Equal(t, "later", f.m.CurrentPage().ID())
}

func TestNavigateBackUsesOppositeDirection(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionSlide)
	f.p.Settle()
	require.Len(t, f.m.History(), 1)

	require.NoError(t, f.m.TryNavigateBack())

	require.True(t, f.m.IsAnimating())
	require.Empty(t, f.m.History(), "back navigation consumes history")
	x, _ := f.pages["home"].Surface().Position()
	require.Equal(t, int32(320), x, "moving left enters from the right edge")

	f.p.Advance(150 * time.Millisecond)
	sx, _ := f.pages["settings"].Surface().Position()
	require.Less(t, sx, int32(0), "old page exits toward the left")

	f.p.Settle()
	require.Equal(t, "home", f.m.CurrentPage().ID())
	require.Equal(t, PageActive, f.pages["home"].State())
	require.Equal(t, 1, f.life.count("home", "build"), "cached page is reused")
	require.Empty(t, f.m.History())
}

func TestNavigateBackReplaysTransitionType(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionUp, constants.TransitionFade)
	f.p.Settle()

	f.m.NavigateBack()
	require.Equal(t, 2, f.p.Animating())
	require.Equal(t, uint8(0), f.pages["home"].Surface().Opacity(), "fade replayed")
	f.p.Settle()
	require.Equal(t, "home", f.m.CurrentPage().ID())
}

func TestNavigateBackWhileAnimatingKeepsHistory(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("b", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("c", constants.DirectionRight, constants.TransitionSlide)
	require.Len(t, f.m.History(), 2)

	require.ErrorIs(t, f.m.TryNavigateBack(), ErrTransitionInFlight)
	require.Len(t, f.m.History(), 2)

	f.p.Settle()
	require.NoError(t, f.m.TryNavigateBack())
	f.p.Settle()
	require.Equal(t, "b", f.m.CurrentPage().ID())
	require.Len(t, f.m.History(), 1)
}

func TestNavigateBackEmptyHistory(t *testing.T) {
	f := newFixture(t, "home")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	require.ErrorIs(t, f.m.TryNavigateBack(), ErrHistoryEmpty)
	require.Equal(t, "home", f.m.CurrentPage().ID())
}

func TestRejectedBackNavigationKeepsHistory(t *testing.T) {
	f := newFixture(t, "a", "b")
	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("b", constants.DirectionRight, constants.TransitionNone)

	// Replacing the shown page leaves nothing current, so the next
	// navigation records no entry and the newest entry points at "a".
	f.m.Register(NewPage("b", PageFuncs{}))
	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	want := []HistoryEntry{{PageID: "a", Direction: constants.DirectionRight, Transition: constants.TransitionNone}}
	require.Equal(t, want, f.m.History())

	require.ErrorIs(t, f.m.TryNavigateBack(), ErrAlreadyActive)
	require.Equal(t, want, f.m.History())
	require.Equal(t, "a", f.m.CurrentPage().ID())
}

func TestHistoryDropsOldestAtCapacity(t *testing.T) {
	ids := pageIDs(12)
	f := newFixture(t, ids...)

	f.m.NavigateTo(ids[0], constants.DirectionRight, constants.TransitionNone)
	for _, id := range ids[1:] {
		require.NoError(t, f.m.TryNavigateTo(id, constants.DirectionRight, constants.TransitionNone))
	}

	history := f.m.History()
	require.Len(t, history, constants.MaxHistory)
	require.Equal(t, "p1", history[0].PageID, "entry of the first navigation was dropped")
	require.Equal(t, "p10", history[len(history)-1].PageID)
	require.Contains(t, f.logs.String(), "oldest entry dropped")
}

func TestFadeRestoresOpacity(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateToWithFade("settings")

	home := f.pages["home"].Surface()
	settings := f.pages["settings"].Surface()
	require.Equal(t, uint8(0), settings.Opacity())
	require.Equal(t, uint8(255), home.Opacity())

	f.p.Advance(150 * time.Millisecond)
	require.Greater(t, settings.Opacity(), uint8(0))
	require.Less(t, home.Opacity(), uint8(255))

	f.p.Settle()
	require.Equal(t, uint8(255), settings.Opacity())
	require.Equal(t, uint8(255), home.Opacity(), "cached page reset to opaque")
	require.True(t, home.Hidden())
	require.Equal(t, PageInactive, f.pages["home"].State())
}

func TestCacheEvictsOldestFirst(t *testing.T) {
	f := newFixture(t, "a", "b", "c", "d")
	f.m.SetMaxCachedPages(2)

	for _, id := range []string{"a", "b", "c", "d"} {
		f.m.NavigateTo(id, constants.DirectionRight, constants.TransitionNone)
		require.LessOrEqual(t, len(f.m.CachedPages()), 2)
	}

	require.Equal(t, []string{"b", "c"}, f.m.CachedPages())
	require.Equal(t, PageDestroyed, f.pages["a"].State())
	require.Equal(t, PageInactive, f.pages["b"].State())
	require.Equal(t, PageInactive, f.pages["c"].State())
	require.Equal(t, PageActive, f.pages["d"].State())
}

func TestCacheBoundAppliedAfterAnimatedNavigation(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.m.SetMaxCachedPages(1)

	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("b", constants.DirectionLeft, constants.TransitionSlide)
	f.p.Settle()
	f.m.NavigateTo("c", constants.DirectionLeft, constants.TransitionSlideOver)
	f.p.Settle()

	require.Equal(t, []string{"b"}, f.m.CachedPages())
	require.Equal(t, PageDestroyed, f.pages["a"].State())
}

func TestCachedPageLeavesCacheWhenShown(t *testing.T) {
	f := newFixture(t, "a", "b")
	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("b", constants.DirectionRight, constants.TransitionNone)
	require.Equal(t, []string{"a"}, f.m.CachedPages())

	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	require.Equal(t, []string{"b"}, f.m.CachedPages())
	require.Equal(t, 1, f.life.count("a", "build"))
	require.Equal(t, 2, f.life.count("a", "enter"))
}

func TestDestroyedPageIsRebuilt(t *testing.T) {
	f := newFixture(t, "a", "b")
	f.m.SetMaxCachedPages(0)

	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("b", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("a", constants.DirectionRight, constants.TransitionNone)

	require.Equal(t, 2, f.life.count("a", "build"))
	require.Equal(t, 1, f.life.count("a", "destroy"))

	f.m.Shutdown()
	require.Equal(t, 2, f.life.count("a", "destroy"))
	require.Equal(t, f.life.count("b", "build"), f.life.count("b", "destroy"))
}

func TestExactlyOneActivePage(t *testing.T) {
	f := newFixture(t, "a", "b", "c", "d")
	f.m.SetMaxCachedPages(1)

	steps := []struct {
		id string
		t  constants.TransitionType
	}{
		{"a", constants.TransitionNone},
		{"b", constants.TransitionSlide},
		{"c", constants.TransitionFade},
		{"a", constants.TransitionSlideOver},
		{"d", constants.TransitionNone},
		{"b", constants.TransitionSlide},
		{"c", constants.TransitionSlideOver},
	}
	for _, s := range steps {
		require.NoError(t, f.m.TryNavigateTo(s.id, constants.DirectionLeft, s.t))
		f.p.Settle()
		require.Equal(t, 1, f.activeCount(), "after navigating to %s", s.id)
		require.Equal(t, s.id, f.m.CurrentPage().ID())
		require.LessOrEqual(t, len(f.m.CachedPages()), 1)
	}

	for _, id := range []string{"a", "b", "c", "d"} {
		builds := f.life.count(id, "build")
		destroys := f.life.count(id, "destroy")
		require.True(t, builds == destroys || builds == destroys+1, "%s: %d builds, %d destroys", id, builds, destroys)
	}
}

func TestNavigateToCurrentPage(t *testing.T) {
	f := newFixture(t, "home")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	err := f.m.TryNavigateTo("home", constants.DirectionRight, constants.TransitionSlide)
	require.ErrorIs(t, err, ErrAlreadyActive)
	require.Empty(t, f.m.History())
	require.Equal(t, PageActive, f.pages["home"].State())
}

func TestNavigateBeforeInitialize(t *testing.T) {
	p := headless.New(320, 240)
	m := NewManager(p)
	m.Register(NewPage("home", PageFuncs{}))

	require.ErrorIs(t, m.TryNavigateTo("home", constants.DirectionRight, constants.TransitionSlide), ErrNotInitialized)
	require.ErrorIs(t, m.TryNavigateBack(), ErrNotInitialized)
	require.Nil(t, m.CurrentPage())
}

func TestNavigateToUnknownPage(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	err := f.m.TryNavigateTo("setings", constants.DirectionRight, constants.TransitionSlide)
	require.True(t, IsPageNotFound(err))

	var pe *PageError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "settings", pe.Suggestion)
	require.Contains(t, err.Error(), `did you mean "settings"`)

	f.m.NavigateTo("nowhere", constants.DirectionRight, constants.TransitionSlide)
	require.Contains(t, f.logs.String(), "Navigation dropped")
	require.Equal(t, "home", f.m.CurrentPage().ID())
}

func TestInitializeTwiceIsNoop(t *testing.T) {
	f := newFixture(t, "home")
	created := f.p.SurfacesCreated()

	require.ErrorIs(t, f.m.TryInitialize(f.root, nil), ErrAlreadyInitialized)
	f.m.Initialize(f.root, nil)

	require.Equal(t, created, f.p.SurfacesCreated())
	require.Equal(t, 1, f.p.GestureSubscribers())
	require.Contains(t, f.logs.String(), "Initialize ignored")
}

func TestShutdownResetsState(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionNone)
	container := f.m.Container().(*headless.Surface)

	f.m.Shutdown()

	require.False(t, f.m.IsInitialized())
	require.Nil(t, f.m.CurrentPage())
	require.Empty(t, f.m.CachedPages())
	require.Empty(t, f.m.History())
	require.Zero(t, f.m.Registry().Len())
	require.Zero(t, f.p.GestureSubscribers())
	require.True(t, container.Deleted())
	require.Equal(t, PageDestroyed, f.pages["home"].State())
	require.Equal(t, PageDestroyed, f.pages["settings"].State())

	f.m.Initialize(f.root, nil)
	require.True(t, f.m.IsInitialized())
	f.m.Register(NewPage("again", PageFuncs{}))
	f.m.NavigateTo("again", constants.DirectionRight, constants.TransitionNone)
	require.Equal(t, "again", f.m.CurrentPage().ID())
}

func TestShutdownDuringTransitionIgnoresLateCompletion(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionSlide)

	f.m.Shutdown()
	f.p.Settle()

	require.Nil(t, f.m.CurrentPage())
	require.False(t, f.m.IsAnimating())
	require.Zero(t, f.life.count("settings", "enter"))
	require.Equal(t, 1, f.life.count("settings", "destroy"))
}

func TestReplacingCurrentPageDropsReference(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionNone)

	f.m.Register(NewPage("settings", PageFuncs{}))
	require.Nil(t, f.m.CurrentPage())
	require.Equal(t, PageDestroyed, f.pages["settings"].State())

	f.m.Register(NewPage("home", PageFuncs{}))
	require.Empty(t, f.m.CachedPages())
	require.Equal(t, PageDestroyed, f.pages["home"].State())
}

func TestReplacingTargetDuringTransitionStaysOnPage(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionLeft, constants.TransitionSlide)
	f.p.Advance(100 * time.Millisecond)
	require.Len(t, f.m.History(), 1)

	f.m.Register(NewPage("settings", PageFuncs{}))
	f.p.Settle()

	require.False(t, f.m.IsAnimating())
	require.Same(t, f.pages["home"], f.m.CurrentPage())
	require.Equal(t, PageActive, f.pages["home"].State())
	require.Equal(t, PageDestroyed, f.pages["settings"].State())
	require.Equal(t, 1, f.activeCount())
	require.Zero(t, f.life.count("home", "leave"))
	require.Empty(t, f.m.History(), "entry of the abandoned navigation is rolled back")

	surface := f.pages["home"].Surface()
	x, y := surface.Position()
	require.Zero(t, x)
	require.Zero(t, y)
	require.False(t, surface.Hidden())

	require.NoError(t, f.m.TryNavigateTo("settings", constants.DirectionLeft, constants.TransitionNone))
	require.Equal(t, "settings", f.m.CurrentPage().ID())
}

func TestReplacingBackTargetDuringTransitionRestoresEntry(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionLeft, constants.TransitionFade)
	f.p.Settle()
	before := f.m.History()

	require.NoError(t, f.m.TryNavigateBack())
	require.Empty(t, f.m.History())
	f.m.Register(NewPage("home", PageFuncs{}))
	f.p.Settle()

	require.Same(t, f.pages["settings"], f.m.CurrentPage())
	require.Equal(t, PageActive, f.pages["settings"].State())
	require.Equal(t, constants.OpacityCover, f.pages["settings"].Surface().Opacity())
	require.Equal(t, before, f.m.History())

	require.NoError(t, f.m.TryNavigateBack())
	f.p.Settle()
	require.Equal(t, "home", f.m.CurrentPage().ID())
	require.Empty(t, f.m.History())
}

func TestNavigateUsesDefaultTransition(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)

	f.m.SetTransitionType(constants.TransitionNone)
	f.m.Navigate("settings")

	require.False(t, f.m.IsAnimating())
	require.Equal(t, PageActive, f.pages["settings"].State())
	require.Equal(t, constants.TransitionNone, f.m.History()[0].Transition)
}

func TestTransitionDurationIsHonoured(t *testing.T) {
	f := newFixture(t, "home", "settings")
	f.m.SetTransitionDuration(time.Second)
	f.m.NavigateTo("home", constants.DirectionRight, constants.TransitionNone)
	f.m.NavigateTo("settings", constants.DirectionRight, constants.TransitionSlide)

	f.p.Advance(900 * time.Millisecond)
	require.True(t, f.m.IsAnimating())

	f.p.Advance(100 * time.Millisecond)
	require.False(t, f.m.IsAnimating())

	f.m.SetTransitionDuration(-time.Second)
	require.Zero(t, f.m.TransitionDuration())
}

func TestSetMaxCachedPagesClampsNegative(t *testing.T) {
	m := NewManager(headless.New(10, 10))
	require.Equal(t, constants.DefaultMaxCachedPages, m.MaxCachedPages())
	m.SetMaxCachedPages(-7)
	require.Equal(t, -1, m.MaxCachedPages())
}
