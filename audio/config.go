package audio

type Config struct {
	// Master settings
	MasterVolume float64 // Master gain when unmuted
	FadeTime     float64 // Mute/unmute ramp duration in seconds

	// Drone settings
	NoiseSeconds float64 // Length of the looped noise buffer
	NoiseLeak    float64 // Leaky integrator coefficient
	NoiseGain    float64 // Amplification after integration
	FilterCutoff float64 // Lowpass cutoff in Hz
	FilterQ      float64 // Lowpass resonance, used by the native filter

	// Crackle settings
	CrackleInterval  int     // Milliseconds between crackle rolls
	CrackleChance    float64 // Probability of a crackle per roll
	CrackleMinFreq   float64 // Lowest square-wave frequency in Hz
	CrackleFreqRange float64 // Frequency spread above CrackleMinFreq
	CrackleGain      float64 // Crackle voice gain
	CrackleDuration  float64 // Crackle length in seconds
}
