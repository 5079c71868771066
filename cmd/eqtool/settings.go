package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// setting is one parsed --set assignment.
type setting struct {
	id    eq.ParamID
	value float64
}

func parseSettings(args []string) ([]setting, error) {
	out := make([]setting, 0, len(args))
	for _, arg := range args {
		s, err := parseSetting(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// parseSetting reads "id=value". Type parameters accept names, switches
// accept on/off.
func parseSetting(arg string) (setting, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return setting{}, fmt.Errorf("--set %q: want id=value", arg)
	}

	id, err := eq.ParseParamID(key)
	if err != nil {
		return setting{}, fmt.Errorf("--set %q: %w", arg, err)
	}

	raw = strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v, err = parseNamedValue(id.Role, raw)
	}
	if err != nil {
		return setting{}, fmt.Errorf("--set %q: %w", arg, err)
	}

	return setting{id: id, value: v}, nil
}

func parseNamedValue(r eq.Role, raw string) (float64, error) {
	switch r {
	case eq.RoleType:
		t, err := design.ParseType(raw)
		return float64(t), err
	case eq.RoleBypass, eq.RoleMasterBypass:
		switch strings.ToLower(raw) {
		case "on", "true", "yes":
			return 1, nil
		case "off", "false", "no":
			return 0, nil
		}
	}
	return 0, fmt.Errorf("invalid value %q", raw)
}

// applySettings publishes every setting. Clamped values are reported as
// warnings and kept.
func applySettings(e *eq.Engine, settings []setting, warn func(string)) error {
	for _, s := range settings {
		err := e.SetParameter(s.id, s.value)
		switch {
		case err == nil:
		case errors.Is(err, eq.ErrClamped):
			warn(err.Error())
		default:
			return err
		}
	}
	return nil
}
