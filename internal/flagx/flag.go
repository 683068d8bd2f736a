// Package flagx pre-filters command-line arguments so that several
// independent flag sets can read the same argv without tripping over each
// other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// flagName strips the leading dashes and any "=value" part from arg.
// It returns "" when arg is not a flag.
func flagName(arg string) string {
	if len(arg) < 2 || arg[0] != '-' {
		return ""
	}
	name := strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}

// FilterArgs returns the arguments that belong to allowedFlags, keeping
// their order. Flags are matched by name, so "-c" in allowedFlags also
// matches "--c" and "-c=value".
//
// A separate value ("-c conf.json") is kept when the next argument does not
// look like a flag. Flags listed in boolFlags never consume the next
// argument, so "-once import.csv" keeps only "-once".
func FilterArgs(args []string, allowedFlags []string, boolFlags ...string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[strings.TrimLeft(f, "-")] = struct{}{}
	}
	bools := make(map[string]struct{}, len(boolFlags))
	for _, f := range boolFlags {
		bools[strings.TrimLeft(f, "-")] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := flagName(arg)
		if name == "" {
			continue
		}
		if _, ok := allowed[name]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if _, ok := bools[name]; ok {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigPath extracts the config file named with -c or -config from args.
// The last occurrence wins; "" means no file was given.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
