package main

import (
	"fmt"
	"os"
)

type uiMode int

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

func parseUIMode(s string) (uiMode, error) {
	switch s {
	case "auto", "":
		return uiAuto, nil
	case "on":
		return uiOn, nil
	case "off":
		return uiOff, nil
	default:
		return uiAuto, fmt.Errorf("invalid --ui value %q (want auto|on|off)", s)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiOn:
		return true
	case uiOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
