package source

import (
	"errors"
	"strings"
	"testing"
)

func TestNoneRegistered(t *testing.T) {
	if !Exists(NoneID) {
		t.Fatal("none source should be registered")
	}

	src, err := Create(NoneID, Options{})
	if err != nil {
		t.Fatalf("Create(none) error: %v", err)
	}
	defer src.Close()

	if src.ID() != NoneID {
		t.Errorf("ID() = %q, expected %q", src.ID(), NoneID)
	}
	if f := src.Frame(1.5); f != nil {
		t.Errorf("none produced a frame: %+v", f)
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("does-not-exist") {
		t.Fatal("unexpected source registered")
	}
	if _, err := Create("does-not-exist", Options{}); err == nil {
		t.Error("expected an error for an unknown source")
	}
}

func TestRegisterAndList(t *testing.T) {
	errBoom := errors.New("boom")
	Register(Info{ID: "zz-test-failing", Title: "Failing"}, func(Options) (Source, error) {
		return nil, errBoom
	})

	_, err := Create("zz-test-failing", Options{})
	if !errors.Is(err, errBoom) {
		t.Errorf("Create error = %v, expected to wrap %v", err, errBoom)
	}
	if err != nil && !strings.Contains(err.Error(), "zz-test-failing") {
		t.Errorf("error %q does not name the source", err)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz-test-failing" && info.Title == "Failing" {
			found = true
		}
	}
	if !found {
		t.Error("registered source missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: NoneID}, nil)
}
