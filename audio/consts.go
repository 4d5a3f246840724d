package audio

var AmbientConfig = Config{
	// Master settings
	MasterVolume: 0.02,
	FadeTime:     3,

	// Drone settings
	NoiseSeconds: 2,
	NoiseLeak:    0.02,
	NoiseGain:    3.5,
	FilterCutoff: 200,
	FilterQ:      0.7071,

	// Crackle settings
	CrackleInterval:  2000,
	CrackleChance:    0.3,
	CrackleMinFreq:   50,
	CrackleFreqRange: 100,
	CrackleGain:      0.001,
	CrackleDuration:  0.05,
}
