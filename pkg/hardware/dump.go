package hardware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vhal-go/fakevhal/pkg/defaultconfig"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

const dumpHelp = `Fake vehicle hardware dump options:
  (no option)              dump all property configs and values
  --help                   print this help
  --list                   list all registered property IDs
  --get <prop> [area]      print the value of one property, optionally one area
                           <prop> is a name (PERF_VEHICLE_SPEED) or an ID (0x11600207)
`

// Dump returns a textual report of the adapter's state. It never modifies
// the store.
func (h *FakeHardware) Dump(args []string) vehicle.DumpResult {
	if len(args) == 0 {
		return vehicle.DumpResult{CallerShouldDumpState: true, Buffer: h.dumpAll()}
	}

	switch args[0] {
	case "--help":
		return vehicle.DumpResult{Buffer: dumpHelp}
	case "--list":
		return vehicle.DumpResult{Buffer: h.dumpList()}
	case "--get":
		return vehicle.DumpResult{Buffer: h.dumpGet(args[1:])}
	default:
		return vehicle.DumpResult{Buffer: fmt.Sprintf("Invalid option: %s\n%s", args[0], dumpHelp)}
	}
}

func (h *FakeHardware) dumpAll() string {
	var b strings.Builder

	configs := h.store.GetAllConfigs()
	values := h.store.ReadAllValues()
	stats := h.pool.Stats()

	fmt.Fprintf(&b, "Fake vehicle hardware %s\n", h.sessionID)
	fmt.Fprintf(&b, "closed: %t\n", h.closed.Load())
	fmt.Fprintf(&b, "pool: obtained=%d reused=%d recycled=%d free=%d refs=%d\n",
		stats.Obtained, stats.Reused, stats.Recycled, stats.Free, stats.Refs)
	fmt.Fprintf(&b, "%d properties, %d values\n", len(configs), len(values))

	byProp := make(map[int32][]*vehicle.PropertyValue, len(configs))
	for _, v := range values {
		byProp[v.Prop] = append(byProp[v.Prop], v)
	}
	for i := range configs {
		c := &configs[i]
		fmt.Fprintf(&b, "\n%s (0x%x) access=%s changeMode=%s areas=%s\n",
			vehicle.PropertyName(c.Prop), uint32(c.Prop), c.Access, c.ChangeMode, formatAreas(c.AreaIDs()))
		if len(byProp[c.Prop]) == 0 {
			b.WriteString("  no value\n")
		}
		for _, v := range byProp[c.Prop] {
			writeValue(&b, v)
		}
	}
	return b.String()
}

func (h *FakeHardware) dumpList() string {
	var b strings.Builder
	configs := h.store.GetAllConfigs()
	fmt.Fprintf(&b, "listing %d properties\n", len(configs))
	for _, c := range configs {
		fmt.Fprintf(&b, "0x%x: %s\n", uint32(c.Prop), vehicle.PropertyName(c.Prop))
	}
	return b.String()
}

func (h *FakeHardware) dumpGet(args []string) string {
	if len(args) == 0 || len(args) > 2 {
		return "--get requires <prop> [area]\n" + dumpHelp
	}

	propID, err := defaultconfig.ParsePropertyID(args[0])
	if err != nil {
		return fmt.Sprintf("invalid property %q: %v\n", args[0], err)
	}

	var values []*vehicle.PropertyValue
	if len(args) == 2 {
		areaID, err := strconv.ParseInt(args[1], 0, 32)
		if err != nil {
			return fmt.Sprintf("invalid area %q: %v\n", args[1], err)
		}
		v, err := h.store.ReadValue(propID, int32(areaID))
		if err != nil {
			return fmt.Sprintf("%v\n", err)
		}
		values = append(values, v)
	} else {
		values, err = h.store.ReadValuesForProperty(propID)
		if err != nil {
			return fmt.Sprintf("%v\n", err)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (0x%x):\n", vehicle.PropertyName(propID), uint32(propID))
	if len(values) == 0 {
		b.WriteString("  no value\n")
	}
	for _, v := range values {
		writeValue(&b, v)
	}
	return b.String()
}

func writeValue(b *strings.Builder, v *vehicle.PropertyValue) {
	fmt.Fprintf(b, "  area=0x%x status=%s timestamp=%d value=%s\n",
		uint32(v.AreaID), v.Status, v.Timestamp, v.Value)
}

func formatAreas(ids []int32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("0x%x", uint32(id))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
