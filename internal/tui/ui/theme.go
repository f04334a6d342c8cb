package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor          tcell.Color
	FgColor          tcell.Color
	BorderColor      tcell.Color
	BorderFocusColor tcell.Color
	SenderColor      tcell.Color
	CounterColor     tcell.Color
	TitleColor       tcell.Color
	TypingColor      tcell.Color
	FlashColor       tcell.Color
	EditBorderColor  tcell.Color
}

// DefaultTheme returns a k9s-inspired dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:          tcell.ColorBlack,
		FgColor:          tcell.ColorCadetBlue,
		BorderColor:      tcell.ColorDodgerBlue,
		BorderFocusColor: tcell.ColorLightSkyBlue,
		SenderColor:      tcell.ColorAqua,
		CounterColor:     tcell.ColorPapayaWhip,
		TitleColor:       tcell.ColorFuchsia,
		TypingColor:      tcell.ColorGray,
		FlashColor:       tcell.ColorNavajoWhite,
		EditBorderColor:  tcell.ColorOrange,
	}
}

// LightTheme returns a light variant for bright terminals.
func LightTheme() *Theme {
	return &Theme{
		BgColor:          tcell.ColorWhite,
		FgColor:          tcell.ColorDarkSlateGray,
		BorderColor:      tcell.ColorSteelBlue,
		BorderFocusColor: tcell.ColorRoyalBlue,
		SenderColor:      tcell.ColorDarkCyan,
		CounterColor:     tcell.ColorSaddleBrown,
		TitleColor:       tcell.ColorPurple,
		TypingColor:      tcell.ColorDarkGray,
		FlashColor:       tcell.ColorDarkGoldenrod,
		EditBorderColor:  tcell.ColorDarkOrange,
	}
}
