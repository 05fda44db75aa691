package interactive

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/vhal-go/fakevhal/pkg/defaultconfig"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// target is a property and optional area parsed from "<prop>[@area]".
type target struct {
	prop    int32
	area    int32
	hasArea bool
}

func parseTarget(s string) (target, error) {
	name, areaStr, hasArea := strings.Cut(s, "@")
	prop, err := defaultconfig.ParsePropertyID(name)
	if err != nil {
		return target{}, err
	}
	t := target{prop: prop, hasArea: hasArea}
	if hasArea {
		area, err := strconv.ParseInt(areaStr, 0, 32)
		if err != nil {
			return target{}, fmt.Errorf("invalid area %q", areaStr)
		}
		t.area = int32(area)
	}
	return t, nil
}

// parseValue converts args to a payload of the property's value type.
func parseValue(propID int32, args []string) (vehicle.RawValues, error) {
	if len(args) == 0 {
		return vehicle.RawValues{}, fmt.Errorf("missing value")
	}

	switch t := vehicle.PropertyTypeOf(propID); t {
	case vehicle.PropertyTypeBoolean:
		if len(args) != 1 {
			return vehicle.RawValues{}, fmt.Errorf("BOOLEAN takes one value")
		}
		b, err := parseBool(args[0])
		if err != nil {
			return vehicle.RawValues{}, err
		}
		return vehicle.BoolValue(b), nil

	case vehicle.PropertyTypeInt32, vehicle.PropertyTypeInt32Vec:
		if t == vehicle.PropertyTypeInt32 && len(args) != 1 {
			return vehicle.RawValues{}, fmt.Errorf("INT32 takes one value")
		}
		values, err := parseEach(args, func(s string) (int32, error) {
			n, err := strconv.ParseInt(s, 0, 32)
			return int32(n), err
		})
		return vehicle.RawValues{Int32Values: values}, err

	case vehicle.PropertyTypeInt64, vehicle.PropertyTypeInt64Vec:
		if t == vehicle.PropertyTypeInt64 && len(args) != 1 {
			return vehicle.RawValues{}, fmt.Errorf("INT64 takes one value")
		}
		values, err := parseEach(args, func(s string) (int64, error) {
			return strconv.ParseInt(s, 0, 64)
		})
		return vehicle.RawValues{Int64Values: values}, err

	case vehicle.PropertyTypeFloat, vehicle.PropertyTypeFloatVec:
		if t == vehicle.PropertyTypeFloat && len(args) != 1 {
			return vehicle.RawValues{}, fmt.Errorf("FLOAT takes one value")
		}
		values, err := parseEach(args, func(s string) (float32, error) {
			f, err := strconv.ParseFloat(s, 32)
			return float32(f), err
		})
		return vehicle.RawValues{FloatValues: values}, err

	case vehicle.PropertyTypeString:
		return vehicle.StringValue(strings.Join(args, " ")), nil

	case vehicle.PropertyTypeBytes:
		b, err := hex.DecodeString(strings.Join(args, ""))
		if err != nil {
			return vehicle.RawValues{}, fmt.Errorf("BYTES must be hex: %w", err)
		}
		return vehicle.RawValues{ByteValues: b}, nil

	default:
		return vehicle.RawValues{}, fmt.Errorf("cannot parse values of type %s", t)
	}
}

func parseEach[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for _, a := range args {
		v, err := parse(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", a)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "on", "1", "yes":
		return true, nil
	case "false", "off", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

var statusNames = map[string]vehicle.StatusCode{
	"OK":             vehicle.StatusOK,
	"TRY_AGAIN":      vehicle.StatusTryAgain,
	"INVALID_ARG":    vehicle.StatusInvalidArg,
	"NOT_AVAILABLE":  vehicle.StatusNotAvailable,
	"ACCESS_DENIED":  vehicle.StatusAccessDenied,
	"INTERNAL_ERROR": vehicle.StatusInternalError,
}

func parseStatus(s string) (vehicle.StatusCode, error) {
	if code, ok := statusNames[strings.ToUpper(s)]; ok {
		return code, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown status %q", s)
	}
	return vehicle.StatusCode(n), nil
}

func (s *Shell) cmdList() {
	configs := s.client.GetAllPropertyConfig()
	fmt.Fprintf(s.out, "%d properties:\n", len(configs))
	for _, c := range configs {
		fmt.Fprintf(s.out, "  %-24s 0x%08x %-10s %-10s areas=%d\n",
			vehicle.PropertyName(c.Prop), uint32(c.Prop), c.Access, c.ChangeMode, len(c.AreaIDs()))
	}
}

func (s *Shell) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: get <prop>[@area]")
		return
	}
	t, err := parseTarget(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	areas := []int32{t.area}
	if !t.hasArea {
		config, ok := s.config(t.prop)
		if !ok {
			fmt.Fprintf(s.out, "Error: unknown property %s\n", vehicle.PropertyName(t.prop))
			return
		}
		areas = config.AreaIDs()
	}

	requests := make([]vehicle.GetValueRequest, len(areas))
	for i, area := range areas {
		requests[i] = vehicle.GetValueRequest{
			RequestID: int64(i + 1),
			Prop:      vehicle.PropertyValue{Prop: t.prop, AreaID: area},
		}
	}
	s.hw.GetValues(func(results []vehicle.GetValueResult) {
		for i, r := range results {
			if r.Status != vehicle.StatusOK {
				fmt.Fprintf(s.out, "%s area=0x%x: %s\n", vehicle.PropertyName(t.prop), uint32(areas[i]), r.Status)
				continue
			}
			fmt.Fprintf(s.out, "%s area=0x%x = %s (%s, t=%d)\n",
				vehicle.PropertyName(t.prop), uint32(r.Prop.AreaID), r.Prop.Value, r.Prop.Status, r.Prop.Timestamp)
		}
	}, requests)
}

// parseWrite parses "<prop>[@area] <value...>" for set and inject.
func (s *Shell) parseWrite(usage string, args []string) (vehicle.PropertyValue, bool) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, usage)
		return vehicle.PropertyValue{}, false
	}
	t, err := parseTarget(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return vehicle.PropertyValue{}, false
	}
	raw, err := parseValue(t.prop, args[1:])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return vehicle.PropertyValue{}, false
	}
	return vehicle.PropertyValue{
		Prop:   t.prop,
		AreaID: t.area,
		Status: vehicle.StatusAvailable,
		Value:  raw,
	}, true
}

func (s *Shell) cmdSet(args []string) {
	value, ok := s.parseWrite("Usage: set <prop>[@area] <value...>", args)
	if !ok {
		return
	}
	status := s.client.SetProperty(value)
	fmt.Fprintf(s.out, "set %s area=0x%x: %s\n", vehicle.PropertyName(value.Prop), uint32(value.AreaID), status)
}

func (s *Shell) cmdInject(args []string) {
	value, ok := s.parseWrite("Usage: inject <prop>[@area] <value...>", args)
	if !ok {
		return
	}
	if err := s.hw.InjectPropertyEvent(&value); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "injected %s area=0x%x = %s\n", vehicle.PropertyName(value.Prop), uint32(value.AreaID), value.Value)
}

func (s *Shell) cmdSetError(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: seterr <prop>[@area] <status>")
		return
	}
	t, err := parseTarget(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	code, err := parseStatus(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	event := vehicle.SetValueErrorEvent{ErrorCode: code, PropID: t.prop, AreaID: t.area}
	if err := s.hw.InjectSetError(event); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "reported %s for %s area=0x%x\n", code, vehicle.PropertyName(t.prop), uint32(t.area))
}

func (s *Shell) cmdWatch(args []string) {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "on":
			s.watch.Store(true)
		case "off":
			s.watch.Store(false)
		default:
			fmt.Fprintln(s.out, "Usage: watch [on|off]")
			return
		}
	}
	state := "off"
	if s.watch.Load() {
		state = "on"
	}
	fmt.Fprintf(s.out, "watch: %s\n", state)
}

func (s *Shell) cmdSim(ctx context.Context, args []string) {
	if s.sim == nil {
		fmt.Fprintln(s.out, "Simulation not available")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: sim start|stop|status")
		return
	}
	switch strings.ToLower(args[0]) {
	case "start":
		s.sim.Start(ctx)
	case "stop":
		s.sim.Stop()
	case "status":
	default:
		fmt.Fprintln(s.out, "Usage: sim start|stop|status")
		return
	}
	fmt.Fprintf(s.out, "simulation running: %t\n", s.sim.Running())
}

func (s *Shell) cmdSave() {
	if s.state == nil {
		fmt.Fprintln(s.out, "No state file configured (use -state)")
		return
	}
	snapshot := s.hw.Snapshot()
	if err := s.state.Save(snapshot); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "saved %d values to %s\n", len(snapshot.Values), s.state.Path())
}

func (s *Shell) config(propID int32) (vehicle.PropertyConfig, bool) {
	for _, c := range s.client.GetAllPropertyConfig() {
		if c.Prop == propID {
			return c, true
		}
	}
	return vehicle.PropertyConfig{}, false
}
