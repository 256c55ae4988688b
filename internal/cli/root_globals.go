package cli

import (
	"errors"
	"strings"
)

// ParseGlobalFlags extracts global flags from CLI args.
//
// It always consumes global flags in the prefix, then attempts to consume
// additional global flags after the command path while preserving values of
// command-local flags that require arguments (for example: `generate --url`).
func ParseGlobalFlags(args []string) (GlobalFlags, []string, error) {
	var gf GlobalFlags

	i := 0
	for i < len(args) {
		consumed, next, err := parseGlobalFlagAt(args, i, &gf)
		if err != nil {
			return gf, nil, err
		}
		if !consumed {
			break
		}
		i = next
	}

	rest := append([]string(nil), args[i:]...)
	if len(rest) == 0 {
		return gf, nil, nil
	}

	localValueFlags := localFlagsRequiringValue(commandPath(rest))
	filtered := make([]string, 0, len(rest))

	expectLocalValue := false
	for j := 0; j < len(rest); j++ {
		arg := rest[j]

		if expectLocalValue {
			filtered = append(filtered, arg)
			expectLocalValue = false
			continue
		}

		if localFlagRequiresValue(localValueFlags, arg) {
			filtered = append(filtered, arg)
			if !strings.Contains(arg, "=") {
				expectLocalValue = true
			}
			continue
		}

		consumed, next, err := parseGlobalFlagAt(rest, j, &gf)
		if err != nil {
			return gf, nil, err
		}
		if consumed {
			j = next - 1
			continue
		}

		filtered = append(filtered, arg)
	}

	if len(filtered) == 0 {
		return gf, nil, nil
	}
	return gf, filtered, nil
}

func parseGlobalFlagAt(args []string, i int, gf *GlobalFlags) (bool, int, error) {
	if i < 0 || i >= len(args) {
		return false, i, nil
	}
	arg := args[i]
	switch arg {
	case "--json":
		if gf != nil {
			gf.JSON = true
		}
		return true, i + 1, nil
	case "--no-color":
		if gf != nil {
			gf.NoColor = true
		}
		return true, i + 1, nil
	case "--quiet", "-q":
		if gf != nil {
			gf.Quiet = true
		}
		return true, i + 1, nil
	case "--request-id":
		if i+1 >= len(args) {
			return true, i + 1, errors.New("--request-id requires a value")
		}
		if gf != nil {
			gf.RequestID = strings.TrimSpace(args[i+1])
		}
		return true, i + 2, nil
	default:
		if strings.HasPrefix(arg, "--request-id=") {
			if gf != nil {
				gf.RequestID = strings.TrimSpace(strings.TrimPrefix(arg, "--request-id="))
			}
			return true, i + 1, nil
		}
	}
	return false, i + 1, nil
}

// commandPath returns the one- or two-token command path for flag parsing
// rules ("logs tail" is the only two-token command).
func commandPath(args []string) string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return ""
	}
	if args[0] == "logs" && len(args) >= 2 && !strings.HasPrefix(args[1], "-") {
		return args[0] + " " + args[1]
	}
	return args[0]
}

func localFlagsRequiringValue(pathKey string) map[string]struct{} {
	switch pathKey {
	case "generate":
		return map[string]struct{}{
			"--url":    {},
			"--width":  {},
			"--height": {},
			"--theme":  {},
			"--format": {},
		}
	case "serve":
		return map[string]struct{}{"--addr": {}}
	case "logs tail":
		return map[string]struct{}{"--lines": {}}
	default:
		return nil
	}
}

func localFlagRequiresValue(localValueFlags map[string]struct{}, arg string) bool {
	if len(localValueFlags) == 0 || !strings.HasPrefix(arg, "-") {
		return false
	}

	name := arg
	if idx := strings.Index(name, "="); idx >= 0 {
		name = name[:idx]
	}
	_, ok := localValueFlags[name]
	return ok
}
