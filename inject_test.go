package paper

import "testing"

func TestInjectClick(t *testing.T) {
	_, p := newDispatchPaper(t, 0)
	a := recView(t, p, "a")
	a.calls = nil

	p.InjectClick(50, 50)
	if len(p.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(p.injectQueue))
	}

	// Frame 1: press
	if !p.processInjectedInput(0) {
		t.Fatal("expected an injected event to be consumed")
	}
	if p.ActiveView() != a {
		t.Error("press should activate view a")
	}

	// Frame 2: release
	p.processInjectedInput(0)
	if len(p.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events, got %d", len(p.injectQueue))
	}
	if !equalStrings(a.calls, []string{"down 50 50", "up"}) {
		t.Errorf("calls = %v", a.calls)
	}
	if p.processInjectedInput(0) {
		t.Error("empty queue should report false")
	}
}

func TestInjectDragMovesElement(t *testing.T) {
	g := NewGraph()
	opts := testOptions()
	opts.GridSize = 10
	p := NewPaper(g, opts)
	el := newRect("a", 0, 0, 100, 100)
	g.AddCell(el)

	// Frames: press (50,50), move (100,150), release (150,250).
	p.InjectDrag(50, 50, 150, 250, 3)
	if len(p.injectQueue) != 3 {
		t.Fatalf("expected 3 queued events, got %d", len(p.injectQueue))
	}
	for p.processInjectedInput(0) {
	}

	if el.Position != (Vec2{50, 100}) {
		t.Errorf("Position = %v, want (50, 100)", el.Position)
	}
	if p.PointerState() != PointerIdle {
		t.Error("drag should end idle")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	p := NewPaper(NewGraph(), testOptions())
	p.InjectDrag(0, 0, 10, 10, 0)
	if len(p.injectQueue) != 2 {
		t.Errorf("expected press + release, got %d events", len(p.injectQueue))
	}
	if !p.injectQueue[0].pressed || p.injectQueue[1].pressed {
		t.Error("expected press then release")
	}
}

func TestInjectOnBlankCanvas(t *testing.T) {
	_, p := newDispatchPaper(t, 50)
	var gotX, gotY float64
	p.OnBlankPointerDown(func(_ *PointerEvent, x, y float64) { gotX, gotY = x, y })

	p.InjectPress(553, 407)
	p.processInjectedInput(0)

	if gotX != 550 || gotY != 400 {
		t.Errorf("blank coords = (%v, %v), want (550, 400)", gotX, gotY)
	}
}
