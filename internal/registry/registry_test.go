package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/energy-guardian/internal/scene"
)

type fakeScene struct {
	name  scene.Name
	level int
}

func newTestRegistry() *Registry[fakeScene] {
	r := New[fakeScene]()
	r.Register(scene.Start, func(scene.Payload) (fakeScene, error) {
		return fakeScene{name: scene.Start}, nil
	})
	r.Register(scene.Game, func(p scene.Payload) (fakeScene, error) {
		if p.Level == 0 {
			return fakeScene{}, errors.New("no level")
		}
		return fakeScene{name: scene.Game, level: p.Level}, nil
	})
	return r
}

func TestCreate(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(scene.Transition{Target: scene.Game, Payload: scene.Payload{Level: 3}})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.name != scene.Game || s.level != 3 {
		t.Errorf("Create() = %+v, expected game scene for level 3", s)
	}
}

func TestCreateUnknown(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Create(scene.To(scene.Options))
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestCreateFactoryError(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Create(scene.To(scene.Game))
	if err == nil {
		t.Fatal("Expected factory error to be returned")
	}
	if errors.Is(err, ErrUnknownScene) {
		t.Error("Factory errors should not be reported as unknown scenes")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := newTestRegistry()

	defer func() {
		if recover() == nil {
			t.Error("Registering a scene twice should panic")
		}
	}()
	r.Register(scene.Start, func(scene.Payload) (fakeScene, error) { return fakeScene{}, nil })
}

func TestNamesAndExists(t *testing.T) {
	r := newTestRegistry()

	names := r.Names()
	if len(names) != 2 || names[0] != scene.Game || names[1] != scene.Start {
		t.Errorf("Names() = %v, expected [game start]", names)
	}
	if !r.Exists(scene.Start) {
		t.Error("Exists(start) should be true")
	}
	if r.Exists(scene.Scoreboard) {
		t.Error("Exists(scoreboard) should be false")
	}
}
