package core

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("function passed to Go did not run")
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	SetCrashScreen(screen)
	defer SetCrashScreen(nil)

	// A nil recover value must not finalize the screen or exit
	HandleCrash(nil)

	crashMu.Lock()
	registered := crashScreen
	crashMu.Unlock()
	if registered != screen {
		t.Error("HandleCrash(nil) cleared the registered screen")
	}
}
