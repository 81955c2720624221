package lab

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Interaction zones are fractions of the current screen size and are
// recomputed every update, so the layout survives window resizes.
const (
	InteractionRadius = 45.0 // px, beaker and water zones
	MixDistance       = 60.0 // px, flame-to-flame mixing
	TransferDistance  = 50.0 // px, flame-to-chemical transfer

	BeakerRowOffset = 130 // px up from the bottom edge, beaker zone centres

	WaterXRatio = 0.50
	WaterYRatio = 0.12

	IgnitionXRatio = 0.05
	IgnitionYRatio = 0.30
	IgnitionWRatio = 0.10
	IgnitionHRatio = 0.20
)

// Flame intensity over time: decays from 1.0 toward a 0.5 floor over
// ~10 seconds, with a sinusoidal flicker on top.
const (
	FlameDecayRate    = 0.05 // intensity units per second
	FlameFloor        = 0.5
	FlickerAmplitude  = 0.1
	FlickerFrequency  = 10.0 // rad/s
	MixCooldown       = 1.0  // s between repeat mix reports for a pair
	MaxRecentMessages = 10
)

// Particles.
const (
	MaxParticles     = 150
	ParticleLifetime = 40 // ticks
	DropletLifetime  = 30 // ticks, water droplets expire faster
)

// Flame rendering.
const (
	FlameSize       = 120
	FlameHeight     = 100.0 // px at intensity 1.0
	FlameWidth      = 50.0  // px at intensity 1.0
	FlamePoints     = 16    // angular samples per silhouette
	FlameTimeScale  = 0.08  // frame counter to noise time index
	FlameNoiseAmpX  = 15.0
	FlameNoiseAmpY  = 8.0
	FlameGlowRadius = 60.0
	FlameCoreRadius = 15.0
)

// Beakers.
const (
	BeakerSize      = 90
	WaterBeakerSize = 63 // 70% of BeakerSize for the top placement
)

// Sidebar UI.
const (
	SidebarWidth = 320
)

// Audio format.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)
