package core

// Color is the role of a screen cell. The platform decides how each role
// looks, so games never deal with terminal colour codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorLava
	ColorCoin
	ColorMonster
	ColorPlayer
	ColorHUD
	ColorAlert // Overlay titles such as PAUSED
)
