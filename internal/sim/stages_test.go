package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func testColumn() Column {
	return Column{Lower: -128, Upper: 128}
}

func testBounce() Bounce {
	return Bounce{Dampening: 0.5, SnapThreshold: 5, MaxSpeed: 300}
}

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name     string
		vy       float64
		gravity  bool
		dt       float64
		expected float64
	}{
		{"accelerates down", 0, true, 0.1, -40},
		{"saturates at terminal", -290, true, 0.1, -300},
		{"at terminal is unchanged", -300, true, 0.1, -300},
		{"below terminal is unchanged", -500, true, 0.1, -500},
		{"not gravity affected", 10, false, 0.1, 10},
		{"zero dt", 25, true, 0, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{VY: tc.vy, Gravity: tc.gravity}
			ApplyGravity(&b, -400, -300, tc.dt)
			if math.Abs(b.VY-tc.expected) > eps {
				t.Errorf("VY = %v, expected %v", b.VY, tc.expected)
			}
		})
	}
}

func TestApplyPlayerAccel(t *testing.T) {
	bar := Bar{Body: Body{VY: -10}}

	ApplyPlayerAccel(&bar, false, 800, 0.5)
	if bar.VY != -10 {
		t.Errorf("Released input should not change velocity, got %v", bar.VY)
	}

	ApplyPlayerAccel(&bar, true, 800, 0.5)
	if bar.VY != 390 {
		t.Errorf("Held input VY = %v, expected 390", bar.VY)
	}

	// No clamp at this stage
	ApplyPlayerAccel(&bar, true, 800, 1)
	if bar.VY != 1190 {
		t.Errorf("Thrust should not be clamped, got %v", bar.VY)
	}
}

func TestResolveBarBoundsUpperContact(t *testing.T) {
	// Predicted y=146 passes the upper bound of 96 for a half-height of 32.
	bar := Bar{Body: Body{Y: 96, VY: 50, HalfHeight: 32}}
	ResolveBarBounds(&bar, testColumn(), testBounce(), 1.0)

	if bar.Y != 96 {
		t.Errorf("Y = %v, expected 96", bar.Y)
	}
	if bar.VY != -25 {
		t.Errorf("VY = %v, expected -25", bar.VY)
	}
	if !bar.committed {
		t.Error("Resolver should commit the bar position")
	}
}

func TestResolveBarBoundsBounceLaw(t *testing.T) {
	tests := []struct {
		name     string
		y, vy    float64
		expected float64
	}{
		{"fast upward contact", 90, 200, -100},
		{"slow upward contact snaps", 95.9, 8, 0},
		{"exactly at snap threshold keeps", 90, 10, -5},
		{"downward contact", -90, -100, 50},
		{"downward contact snaps", -95.9, -9, 0},
		{"over max speed is capped first", 90, 1000, -150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := Bar{Body: Body{Y: tc.y, VY: tc.vy, HalfHeight: 32}}
			ResolveBarBounds(&bar, testColumn(), testBounce(), 1.0)

			if math.Abs(bar.VY-tc.expected) > eps {
				t.Errorf("VY = %v, expected %v", bar.VY, tc.expected)
			}
			if bar.Y != 96 && bar.Y != -96 {
				t.Errorf("Y = %v, expected a clamped bound", bar.Y)
			}
		})
	}
}

func TestResolveBarBoundsFreeMotion(t *testing.T) {
	bar := Bar{Body: Body{Y: 0, VY: 30, HalfHeight: 32}}
	ResolveBarBounds(&bar, testColumn(), testBounce(), 0.5)

	if bar.Y != 15 {
		t.Errorf("Y = %v, expected 15", bar.Y)
	}
	if bar.VY != 30 {
		t.Errorf("VY = %v, expected unchanged 30", bar.VY)
	}
}

func TestResolveBarBoundsIdempotent(t *testing.T) {
	starts := []Body{
		{Y: 96, VY: 0, HalfHeight: 32},
		{Y: -96, VY: 0, HalfHeight: 32},
		{Y: 12.5, VY: 80, HalfHeight: 32},
		{Y: 96, VY: 120, HalfHeight: 32},
	}

	for _, start := range starts {
		once := Bar{Body: start}
		ResolveBarBounds(&once, testColumn(), testBounce(), 0)

		twice := once
		ResolveBarBounds(&twice, testColumn(), testBounce(), 0)

		if once.Y != twice.Y {
			t.Errorf("start %+v: second zero-dt resolve moved bar from %v to %v", start, once.Y, twice.Y)
		}
	}
}

func TestDriveFishSmooth(t *testing.T) {
	f := Fish{Behaviour: BehaviourSmooth, Speed: 30}

	// sin(0) = 0, no acceleration
	DriveFish(&f, 0, 1.0, 0.05)
	if f.VY != 0 {
		t.Errorf("VY at elapsed 0 = %v, expected 0", f.VY)
	}

	// sin(pi/2) = 1
	DriveFish(&f, math.Pi/2, 1.0, 0.05)
	if math.Abs(f.VY-1.5) > eps {
		t.Errorf("VY = %v, expected 1.5", f.VY)
	}

	// sin(3pi/2) = -1
	DriveFish(&f, 3*math.Pi/2, 1.0, 0.05)
	if math.Abs(f.VY) > eps {
		t.Errorf("VY = %v, expected 0", f.VY)
	}
}

func TestDriveFishVelocityCap(t *testing.T) {
	f := Fish{Behaviour: BehaviourSmooth, Speed: 100}
	dt := 1.0 / 60.0
	flips := 0
	prevSign := 0.0

	for i := 0; i < 60*60; i++ {
		elapsed := float64(i) * dt
		DriveFish(&f, elapsed, 1.0, 0.05)
		if math.Abs(f.VY) > 100 {
			t.Fatalf("tick %d: |VY| = %v exceeds speed 100", i, math.Abs(f.VY))
		}
		sign := math.Copysign(1, math.Sin(elapsed))
		if prevSign != 0 && sign != prevSign {
			flips++
		}
		prevSign = sign
	}

	if flips < 2 {
		t.Errorf("Expected the oscillator to flip sign several times, got %d", flips)
	}
}

func TestDriveFishUnimplementedBehaviour(t *testing.T) {
	for _, b := range []Behaviour{BehaviourDart, BehaviourSinker, BehaviourWobble, BehaviourRunner, BehaviourPuffer} {
		t.Run(b.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("DriveFish with %s should panic", b)
				}
			}()
			f := Fish{Behaviour: b, Speed: 30}
			DriveFish(&f, 1, 1, 0.05)
		})
	}
}

func TestResolveFishBounds(t *testing.T) {
	col := testColumn()

	f := Fish{Body: Body{Y: 110, VY: 40, HalfHeight: 8}}
	ResolveFishBounds(&f, col, 1.0)
	if f.Y != 120 {
		t.Errorf("Y = %v, expected 120", f.Y)
	}
	if f.VY != 0 {
		t.Errorf("Fish should stop at the bound, VY = %v", f.VY)
	}

	f = Fish{Body: Body{Y: -115, VY: -40, HalfHeight: 8}}
	ResolveFishBounds(&f, col, 1.0)
	if f.Y != -120 || f.VY != 0 {
		t.Errorf("Lower contact: Y = %v, VY = %v, expected -120 and 0", f.Y, f.VY)
	}

	f = Fish{Body: Body{Y: 0, VY: 20, HalfHeight: 8}}
	ResolveFishBounds(&f, col, 0.5)
	if f.Y != 10 || f.VY != 20 {
		t.Errorf("Free motion: Y = %v, VY = %v, expected 10 and 20", f.Y, f.VY)
	}
	if !f.committed {
		t.Error("Resolver should commit the fish position")
	}
}

func TestIntegrateVelocity(t *testing.T) {
	free := Body{Y: 1, VY: 10}
	done := Body{Y: 1, VY: 10, committed: true}

	IntegrateVelocity(0.5, &free, &done)

	if free.Y != 6 {
		t.Errorf("Uncommitted body Y = %v, expected 6", free.Y)
	}
	if done.Y != 1 {
		t.Errorf("Committed body should not move, Y = %v", done.Y)
	}
}

func TestDetectOverlap(t *testing.T) {
	bar := Bar{Body: Body{Y: 0, HalfHeight: 32}}

	tests := []struct {
		name     string
		fishY    float64
		offset   float64
		expected bool
	}{
		{"inside", 10, 0, true},
		{"upper edge inclusive", 32, 0, true},
		{"lower edge inclusive", -32, 0, true},
		{"just above", 32.001, 0, false},
		{"just below", -32.001, 0, false},
		{"offset pushes out", 30, 5, false},
		{"offset pulls in", 40, -10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Fish{Body: Body{Y: tc.fishY}, CaptureOffset: tc.offset}
			if got := DetectOverlap(bar, f); got != tc.expected {
				t.Errorf("DetectOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAccrueProgressFill(t *testing.T) {
	p := AccrueProgress(0.5, true, 0.1, -0.05, 2.0)
	if math.Abs(p-0.7) > eps {
		t.Errorf("Progress = %v, expected 0.7", p)
	}

	p = AccrueProgress(0.95, true, 0.1, -0.05, 2.0)
	if p != 1 {
		t.Errorf("Progress = %v, expected clamp at 1", p)
	}
}

func TestAccrueProgressDrain(t *testing.T) {
	p := 0.3
	dt := 0.5
	for i := 1; i <= 20; i++ {
		p = AccrueProgress(p, false, 0.1, -0.05, dt)
		elapsed := float64(i) * dt

		if p < 0 || p > 1 {
			t.Fatalf("t=%v: progress %v out of range", elapsed, p)
		}
		if elapsed >= 6.0 && p > eps {
			t.Errorf("t=%v: progress = %v, expected 0", elapsed, p)
		}
		if elapsed > 6.0 && p != 0 {
			t.Errorf("t=%v: progress = %v, expected exactly 0", elapsed, p)
		}
	}
}
