package main

import (
	"log"

	"LocalPaint/internal/surface"
	"LocalPaint/internal/ui"

	"fyne.io/fyne/v2"
)

const (
	WindowTitle  = "Paint"
	WindowWidth  = 400
	WindowHeight = 400
	ClearKey     = fyne.KeyC
	FrameRate    = 60
)

func main() {
	log.Println("Starting LocalPaint")
	paint := surface.New(WindowWidth, WindowHeight)
	ui.RunApp(ui.Config{
		Title:     WindowTitle,
		Width:     WindowWidth,
		Height:    WindowHeight,
		ClearKey:  ClearKey,
		FrameRate: FrameRate,
	}, paint)
	log.Println("LocalPaint closed")
}
