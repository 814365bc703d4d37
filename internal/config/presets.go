package config

// Presets pair a scenario with sensible solver settings.
var Presets = map[string]*Config{
	"figure-eight": {
		Force: "direct", Integrator: "pefrl", Scenario: "figure-eight",
		Dt: 0.001, Duration: 20.0, G: 1, Epsilon: 0, Theta: DefaultTheta, Sample: 10,
	},
	"binary": {
		Force: "direct", Integrator: "leapfrog", Scenario: "binary",
		Dt: 0.001, Duration: 30.0, G: 1, Epsilon: 0.01, Theta: DefaultTheta, Sample: 10,
	},
	"solar": {
		Force: "direct", Integrator: "pefrl", Scenario: "solar-system",
		Dt: 0.005, Duration: 200.0, G: 1, Epsilon: 0.001, Theta: DefaultTheta, Sample: 50,
	},
	"planetary": {
		Force: "barneshut", Integrator: "leapfrog", Scenario: "planetary",
		Dt: 0.01, Duration: 100.0, G: 1, Epsilon: 0.05, Theta: 0.5,
		Bodies: 200, Seed: 31415, Sample: 20,
	},
	"cluster": {
		Force: "barneshut", Integrator: "leapfrog", Scenario: "planetary",
		Dt: 0.005, Duration: 50.0, G: 1, Epsilon: 0.05, Theta: 0.7,
		Bodies: 1000, Seed: 1, Sample: 50,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
