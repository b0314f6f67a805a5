// Package flagx lets independent flag sets share os.Args: each consumer picks
// only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Pick returns the subset of args that belong to the named flags, keeping
// their values. Names are given without dashes; both "-n" and "--n" spellings
// are recognised, as are "-n=v" and "-n v". A token following a flag counts as
// its value unless it starts with "-".
func Pick(args []string, names ...string) []string {
	own := make(map[string]bool, len(names))
	for _, n := range names {
		own[n] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		name, _, hasValue := split(args[i])
		if name == "" || !own[name] {
			continue
		}
		out = append(out, args[i])
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// split breaks a flag token into its name and inline value. name is empty
// for positional arguments.
func split(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", "", false
	}
	name = strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], name[i+1:], true
	}
	return name, "", false
}

// ConfigPath extracts the JSON config file path from -c / -config, or "" when
// neither is given.
func ConfigPath() string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Pick(os.Args[1:], "c", "config"))

	return path
}
