package registry

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/parabola/internal/export"
)

type stubExporter struct{ id string }

func (s stubExporter) ID() string    { return s.id }
func (s stubExporter) Title() string { return strings.ToUpper(s.id) }
func (s stubExporter) Write(w io.Writer, r export.Report) error {
	_, err := fmt.Fprintf(w, "%s %.1f", s.id, r.Launch.V0)
	return err
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Exporter { return stubExporter{"stub-b"} })
	Register("stub-a", func() Exporter { return stubExporter{"stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered exporters should exist")
	}
	if Exists("stub-missing") {
		t.Error("unregistered exporter should not exist")
	}

	e, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	var sb strings.Builder
	if err := e.Write(&sb, export.Report{}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "stub-a 0.0" {
		t.Errorf("Write() = %q", sb.String())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create() of unknown format should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-list-z", func() Exporter { return stubExporter{"stub-list-z"} })
	Register("stub-list-y", func() Exporter { return stubExporter{"stub-list-y"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, info := range list {
		if info.ID == "stub-list-y" && info.Title != "STUB-LIST-Y" {
			t.Errorf("Title = %q, expected %q", info.Title, "STUB-LIST-Y")
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Exporter { return stubExporter{"stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Exporter { return stubExporter{"stub-dup"} })
}
