package defaultconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// LoadError describes a failure to load declarations.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// declarationFile is the YAML layout of a declarations file.
//
//	properties:
//	  - prop: HVAC_FAN_SPEED        # well-known name or numeric ID (0x15400500)
//	    access: READ_WRITE
//	    changeMode: ON_CHANGE
//	    areas:
//	      - areaId: 0x31
//	        minInt32Value: 1
//	        maxInt32Value: 7
//	    initialAreaValues:
//	      0x31: {int32Values: [3]}
type declarationFile struct {
	Properties []declarationYAML `yaml:"properties"`
}

type declarationYAML struct {
	Prop              string                      `yaml:"prop"`
	Access            string                      `yaml:"access"`
	ChangeMode        string                      `yaml:"changeMode"`
	Areas             []vehicle.AreaConfig        `yaml:"areas"`
	ConfigArray       []int32                     `yaml:"configArray"`
	ConfigString      string                      `yaml:"configString"`
	MinSampleRate     float32                     `yaml:"minSampleRate"`
	MaxSampleRate     float32                     `yaml:"maxSampleRate"`
	InitialValue      vehicle.RawValues           `yaml:"initialValue"`
	InitialAreaValues map[int32]vehicle.RawValues `yaml:"initialAreaValues"`
}

// Parse parses declarations from YAML bytes.
func Parse(data []byte) ([]ConfigDeclaration, error) {
	var file declarationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	decls := make([]ConfigDeclaration, 0, len(file.Properties))
	seen := make(map[int32]bool, len(file.Properties))
	for i, p := range file.Properties {
		decl, err := p.toDeclaration()
		if err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("property %d", i), Cause: err}
		}
		if seen[decl.Config.Prop] {
			return nil, &LoadError{Message: fmt.Sprintf("property %d: duplicate property %s", i, vehicle.PropertyName(decl.Config.Prop))}
		}
		seen[decl.Config.Prop] = true
		decls = append(decls, decl)
	}
	return decls, nil
}

// LoadFile loads declarations from a YAML file.
func LoadFile(path string) ([]ConfigDeclaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	decls, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return decls, nil
}

// Merge returns base with each overlay declaration replacing the base entry
// for the same property, or appended when the property is new.
func Merge(base, overlay []ConfigDeclaration) []ConfigDeclaration {
	out := make([]ConfigDeclaration, len(base))
	copy(out, base)

	index := make(map[int32]int, len(out))
	for i, d := range out {
		index[d.Config.Prop] = i
	}
	for _, d := range overlay {
		if i, ok := index[d.Config.Prop]; ok {
			out[i] = d
			continue
		}
		index[d.Config.Prop] = len(out)
		out = append(out, d)
	}
	return out
}

func (p declarationYAML) toDeclaration() (ConfigDeclaration, error) {
	prop, err := ParsePropertyID(p.Prop)
	if err != nil {
		return ConfigDeclaration{}, err
	}
	access, err := parseAccess(p.Access)
	if err != nil {
		return ConfigDeclaration{}, err
	}
	changeMode, err := parseChangeMode(p.ChangeMode)
	if err != nil {
		return ConfigDeclaration{}, err
	}

	return ConfigDeclaration{
		Config: vehicle.PropertyConfig{
			Prop:          prop,
			Access:        access,
			ChangeMode:    changeMode,
			AreaConfigs:   p.Areas,
			ConfigArray:   p.ConfigArray,
			ConfigString:  p.ConfigString,
			MinSampleRate: p.MinSampleRate,
			MaxSampleRate: p.MaxSampleRate,
		},
		InitialValue:      p.InitialValue,
		InitialAreaValues: p.InitialAreaValues,
	}, nil
}

// ParsePropertyID accepts a well-known property name or a numeric ID in any
// base strconv understands (e.g. "0x15400500").
func ParsePropertyID(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("property ID is required")
	}
	if id, ok := vehicle.PropertyByName(strings.ToUpper(s)); ok {
		return id, nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid property ID %q", s)
	}
	return int32(uint32(n)), nil
}

func parseAccess(s string) (vehicle.Access, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "READ":
		return vehicle.AccessRead, nil
	case "WRITE":
		return vehicle.AccessWrite, nil
	case "READ_WRITE":
		return vehicle.AccessReadWrite, nil
	case "NONE":
		return vehicle.AccessNone, nil
	default:
		return 0, fmt.Errorf("invalid access %q", s)
	}
}

func parseChangeMode(s string) (vehicle.ChangeMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ON_CHANGE":
		return vehicle.ChangeModeOnChange, nil
	case "STATIC":
		return vehicle.ChangeModeStatic, nil
	case "CONTINUOUS":
		return vehicle.ChangeModeContinuous, nil
	default:
		return 0, fmt.Errorf("invalid change mode %q", s)
	}
}
