package config

const (
	CanvasWidth  = 1080
	CanvasHeight = 1080

	// Window size; the canvas is scaled to fit
	WindowWidth  = 720
	WindowHeight = 720

	// Particle network
	ParticleCount     = 40
	ParticleMinRadius = 4
	ParticleMaxRadius = 16
	ParticleOutline   = 4
	LineMaxDistance   = 200
	LineMaxWidth      = 8

	// Glyph mosaic
	GlyphCellSize = 20
	GlyphText     = "A"
	GlyphFontRate = 1.2 // bitmap font size per bitmap column
	GlyphBigRatio = 0.1 // chance a tile is drawn at GlyphBigSize
	GlyphBigSize  = 4
	GlyphSmlSize  = 2

	// Grid margins: the grid covers this share of the canvas
	GridCoverage = 0.8
	GridSegment  = 0.8

	// Bounce chimes
	ChimeSampleRate = 44100
	ChimeBaseFreq   = 220
	ChimeStepFreq   = 40
	ChimeMaxFreq    = 880
	ChimeTapSize    = 4096
)
