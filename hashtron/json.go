package hashtron

import "encoding/json"

type jsonHashtron struct {
	Bits    byte        `json:"bits"`
	Program [][2]uint32 `json:"program"`
}

// MarshalJSON encodes the hashtron as {"bits":..,"program":[[s,max],..]}
func (h Hashtron) MarshalJSON() ([]byte, error) {
	var program = h.program
	if program == nil {
		program = [][2]uint32{}
	}
	return json.Marshal(jsonHashtron{Bits: h.bits, Program: program})
}

// UnmarshalJSON decodes a hashtron written by MarshalJSON
func (h *Hashtron) UnmarshalJSON(data []byte) error {
	var j jsonHashtron
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Program == nil {
		j.Program = [][2]uint32{}
	}
	n, err := New(j.Program, j.Bits)
	if err != nil {
		return err
	}
	*h = *n
	return nil
}
