package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/atomviz/internal/anim"
	"github.com/san-kum/atomviz/internal/scene"
)

// WriteCSV samples the animation at the passed frame rate and writes one
// row per (frame, atom) with position, size and shuttling state.
func WriteCSV(w io.Writer, a *anim.Animator, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %f", fps)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "atom", "label", "x", "y", "size", "shuttle"}); err != nil {
		return err
	}

	frames := int(a.Duration()*fps) + 1
	for i := 0; i < frames; i++ {
		t := float64(i) / fps
		st := a.State(t)
		for idx, atom := range st.Atoms {
			row := []string{
				strconv.FormatFloat(t, 'f', 4, 64),
				strconv.Itoa(idx),
				atom.Label,
				strconv.FormatFloat(atom.Position.X, 'f', 4, 64),
				strconv.FormatFloat(atom.Position.Y, 'f', 4, 64),
				strconv.FormatFloat(atom.Size, 'f', 4, 64),
				strconv.FormatBool(atom.Shuttle),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonFrame struct {
	Time  float64           `json:"time"`
	Atoms []scene.AtomState `json:"atoms"`
}

// WriteJSON dumps all sampled frames as a JSON array.
func WriteJSON(w io.Writer, a *anim.Animator, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %f", fps)
	}
	frames := int(a.Duration()*fps) + 1
	out := make([]jsonFrame, 0, frames)
	for i := 0; i < frames; i++ {
		t := float64(i) / fps
		out = append(out, jsonFrame{Time: t, Atoms: a.State(t).Atoms})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
