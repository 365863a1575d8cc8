package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/atomviz/internal/anim"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/program"
)

func testAnimator(t *testing.T) *anim.Animator {
	t.Helper()
	ins := program.NewBuilder().
		Atom("atom0", [2]float64{0, 0}).
		Atom("atom1", [2]float64{4, 4}).
		Add(program.TimeSpec{Absolute: true}, 0, program.TimedInstruction{Kind: program.OpRz, ID: "atom0"}).
		Build()
	return anim.New(config.DefaultMachine(), config.DefaultVisual(), ins)
}

func TestWriteCSV(t *testing.T) {
	a := testAnimator(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, a, 10); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	header := strings.Join(records[0], ",")
	if header != "time,atom,label,x,y,size,shuttle" {
		t.Errorf("header = %q", header)
	}

	// Default Rz takes 1 unit: 11 frames at 10 fps, 2 atoms each, plus header.
	want := 1 + 11*2
	if len(records) != want {
		t.Errorf("rows = %d, want %d", len(records), want)
	}
	if records[1][0] != "0.0000" || records[1][6] != "false" {
		t.Errorf("first row = %v", records[1])
	}
}

func TestWriteCSVRejectsBadFPS(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testAnimator(t), 0); err == nil {
		t.Error("expected an error for fps 0")
	}
}

func TestWriteJSON(t *testing.T) {
	a := testAnimator(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, a, 2); err != nil {
		t.Fatal(err)
	}

	var frames []struct {
		Time  float64 `json:"time"`
		Atoms []struct {
			Position geom.Position
			Shuttle  bool
		} `json:"atoms"`
	}
	if err := json.Unmarshal(buf.Bytes(), &frames); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(frames))
	}
	if frames[1].Time != 0.5 || len(frames[1].Atoms) != 2 {
		t.Errorf("frame 1 = %+v", frames[1])
	}
	if frames[0].Atoms[1].Position != (geom.Position{X: 4, Y: 4}) {
		t.Errorf("atom1 position = %v", frames[0].Atoms[1].Position)
	}
}
