package nn

import "fmt"

// StateDict returns a map of parameter labels to their current values.
//
// Labels are the ones assigned at construction (e.g., "l0.n1.w2",
// "l0.n1.b"), so a dict taken from one MLP loads into any MLP of the same
// shape, even one on a different graph. Labels must be unique within m:
// modules assembled by hand from several NewNeuron or NewLayer values share
// labels, and only the last parameter with a given label is kept. Use
// LoadStateDict to detect this.
func StateDict(m Module) map[string]float64 {
	params := m.Parameters()
	stateDict := make(map[string]float64, len(params))
	for _, p := range params {
		stateDict[p.Label()] = p.Data()
	}
	return stateDict
}

// LoadStateDict sets every parameter of m from stateDict.
//
// Keys not used by m are ignored. Nothing is modified if a parameter is
// missing or two parameters of m share a label.
func LoadStateDict(m Module, stateDict map[string]float64) error {
	params := m.Parameters()
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		label := p.Label()
		if _, dup := seen[label]; dup {
			return fmt.Errorf("duplicate parameter label %q", label)
		}
		seen[label] = struct{}{}
		if _, ok := stateDict[label]; !ok {
			return fmt.Errorf("missing parameter %q in state dict", label)
		}
	}
	for _, p := range params {
		p.SetData(stateDict[p.Label()])
	}
	return nil
}
