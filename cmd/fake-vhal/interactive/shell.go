// Package interactive provides the interactive command-line interface
// for the fake vehicle hardware.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/vhal-go/fakevhal/pkg/connector"
	"github.com/vhal-go/fakevhal/pkg/hardware"
	"github.com/vhal-go/fakevhal/pkg/persistence"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Simulation is the background simulation the shell can start and stop.
type Simulation interface {
	Start(ctx context.Context)
	Stop()
	Running() bool
}

// Shell handles interactive mode for fake-vhal. It plays the HAL client:
// sets go through the connector, and values from the car are printed while
// watching is on.
type Shell struct {
	hw     *hardware.FakeHardware
	client connector.Client
	sim    Simulation
	state  *persistence.SnapshotStore

	rl  *readline.Instance
	out io.Writer

	watch atomic.Bool
}

// New creates a shell on the terminal. sim and state may be nil.
func New(hw *hardware.FakeHardware, client connector.Client, sim Simulation, state *persistence.SnapshotStore) (*Shell, error) {
	s := &Shell{hw: hw, client: client, sim: sim, state: state}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vhal> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

// Stdout returns a writer that coordinates with the readline prompt.
// Use this for log output to avoid interfering with the command line.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that coordinates with the readline prompt.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// OnPropertyValue prints values from the car while watching is enabled.
func (s *Shell) OnPropertyValue(value vehicle.PropertyValue) {
	if !s.watch.Load() {
		return
	}
	fmt.Fprintf(s.out, "[car] %s area=0x%x %s\n",
		vehicle.PropertyName(value.Prop), uint32(value.AreaID), value.Value)
}

// Run reads and executes commands until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if s.Execute(ctx, line) {
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns true when the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls":
		s.cmdList()

	case "get", "g":
		s.cmdGet(args)

	case "set", "s":
		s.cmdSet(args)

	case "inject", "inj":
		s.cmdInject(args)

	case "seterr":
		s.cmdSetError(args)

	case "dump":
		fmt.Fprint(s.out, s.hw.Dump(args).Buffer)

	case "health":
		fmt.Fprintf(s.out, "health: %s\n", s.hw.CheckHealth())

	case "watch":
		s.cmdWatch(args)

	case "sim":
		s.cmdSim(ctx, args)

	case "save":
		s.cmdSave()

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Fake Vehicle HAL Commands:
  Properties:
    list                       - List registered properties
    get <prop>[@area]          - Read a value (all areas if none given)
    set <prop>[@area] <val..>  - Write a value as the HAL client
    inject <prop>[@area] <val..> - Report a value from the car
    seterr <prop>[@area] <code> - Report an asynchronous set failure

  Diagnostics:
    dump [--help|--list|--get <prop> [area]] - Hardware dump
    health                     - Run the hardware health check
    watch [on|off]             - Print values delivered to the HAL

  Simulation:
    sim start|stop|status      - Control driving simulation
    save                       - Save a state snapshot now

  Other:
    help                       - Show this help
    quit                       - Exit

  <prop> is a name (HVAC_FAN_SPEED) or an ID (0x15400500).
  <area> is an area ID (0x31). Booleans accept true/false/on/off.`)
}

func (s *Shell) completer() *readline.PrefixCompleter {
	props := readline.PcItemDynamic(func(string) []string {
		configs := s.hw.GetAllPropertyConfigs()
		names := make([]string, 0, len(configs))
		for _, c := range configs {
			names = append(names, vehicle.PropertyName(c.Prop))
		}
		return names
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("list"),
		readline.PcItem("get", props),
		readline.PcItem("set", props),
		readline.PcItem("inject", props),
		readline.PcItem("seterr", props),
		readline.PcItem("dump",
			readline.PcItem("--help"),
			readline.PcItem("--list"),
			readline.PcItem("--get", props),
		),
		readline.PcItem("health"),
		readline.PcItem("watch", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("sim", readline.PcItem("start"), readline.PcItem("stop"), readline.PcItem("status")),
		readline.PcItem("save"),
		readline.PcItem("quit"),
	)
}
