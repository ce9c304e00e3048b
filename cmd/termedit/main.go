package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/termedit/audio"
	"github.com/lixenwraith/termedit/constants"
	"github.com/lixenwraith/termedit/core"
	"github.com/lixenwraith/termedit/editor"
	"github.com/lixenwraith/termedit/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n\n", constants.EditorName)
		fmt.Fprintln(os.Stderr, "Environment:")
		fmt.Fprintln(os.Stderr, "  TERMEDIT_TAB_STOP       tab width (default 8)")
		fmt.Fprintln(os.Stderr, "  TERMEDIT_DEBUG          write logs to TERMEDIT_LOG_DIR")
		fmt.Fprintln(os.Stderr, "  TERMEDIT_LOG_DIR        log directory (default ./logs)")
		fmt.Fprintln(os.Stderr, "  TERMEDIT_AUDIO_ENABLED  audible alert on failed save or search")
		fmt.Fprintln(os.Stderr, "  TERMEDIT_MASTER_VOLUME  alert volume 0-100")
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		return 1
	}

	debugLog, _ := strconv.ParseBool(os.Getenv("TERMEDIT_DEBUG"))
	if dir := os.Getenv("TERMEDIT_LOG_DIR"); dir != "" {
		logDir = dir
	}
	if logFile := setupLogging(debugLog); logFile != nil {
		defer logFile.Close()
	}

	// Panic Recovery: terminal must be usable again even if the editor crashes
	defer func() {
		core.HandleCrash(recover())
	}()

	term := terminal.New()
	if err := term.EnterRawMode(); err != nil {
		return fail(nil, err)
	}
	// Normal exit terminal cleanup
	defer term.ExitRawMode()

	ed, err := editor.New(term, editor.LoadConfig())
	if err != nil {
		return fail(term, err)
	}

	if flag.NArg() == 1 {
		if err := ed.Open(flag.Arg(0)); err != nil {
			return fail(term, err)
		}
	}

	// Alerts are optional; a missing player leaves the engine silent
	alerts := audio.NewAudioEngine(audio.LoadAudioConfig())
	if err := alerts.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without alerts)", err)
	} else {
		defer alerts.Stop()
		ed.SetAlerter(alerts)
	}

	ed.SetStatusMessage(constants.HelpMessage)

	if err := ed.Run(); err != nil {
		return fail(term, err)
	}
	log.Printf("session ended")
	return 0
}

// fail restores the terminal and reports a fatal error, returning the exit status
func fail(term *terminal.Session, err error) int {
	log.Printf("fatal: %v", err)
	if term != nil {
		term.Write([]byte(terminal.ClearScreen + terminal.CursorHome))
		term.ExitRawMode()
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", constants.EditorName, err)
	return 1
}
