package core

// Color is the palette index of a screen cell. Adapters map it to terminal
// colors; the core only names roles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen // Shooter origin
	ColorYellow
	ColorBlue
	ColorWhite      // Heads-up overlay
	ColorBrightRed  // Target
	ColorBrightBlue // Projectiles
	ColorGray       // Arena border
)
