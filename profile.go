package cubestate

// MoveProfile summarizes how a move sequence uses the faces.
type MoveProfile struct {
	Total        int          `json:"total" yaml:"total"`
	Quarters     int          `json:"quarter_turns" yaml:"quarter_turns"`
	FaceCounts   map[Face]int `json:"face_counts" yaml:"face_counts"`
	TurnCounts   map[Turn]int `json:"turn_counts" yaml:"turn_counts"`
	MostUsedFace Face         `json:"most_used_face,omitempty" yaml:"most_used_face,omitempty"`
	Redundant    int          `json:"redundant" yaml:"redundant"`
}

// Profile counts faces and turns in moves. Quarters counts a half turn as
// two and a counter-clockwise turn as one. Redundant is the number of moves
// Simplify would remove.
func Profile(moves []Move) MoveProfile {
	p := MoveProfile{
		Total:      len(moves),
		FaceCounts: make(map[Face]int),
		TurnCounts: make(map[Turn]int),
	}

	for _, m := range moves {
		p.FaceCounts[m.Face]++
		p.TurnCounts[m.Turn]++
		if m.Turn == Double {
			p.Quarters += 2
		} else {
			p.Quarters++
		}
	}

	// Walk Faces so ties resolve the same way every time.
	best := 0
	for _, f := range Faces {
		if c := p.FaceCounts[f]; c > best {
			best = c
			p.MostUsedFace = f
		}
	}

	p.Redundant = len(moves) - len(Simplify(moves))
	return p
}
